package emitter

// StyleKind is the closed set of consumer styles. Exactly one is active
// per generation run.
type StyleKind string

const (
	// StyleStandalone emits free callables taking a single options
	// object and calling the transport client directly.
	StyleStandalone StyleKind = "standalone"
	// StyleLegacy emits callables over the shared low-level request
	// helper; UseOptions selects field-keyed vs positional binding.
	StyleLegacy StyleKind = "legacy"
	// StyleInjected emits service classes around an injected transport
	// handle.
	StyleInjected StyleKind = "injected"
	// StyleReactive emits injectable service classes returning streams.
	StyleReactive StyleKind = "reactive"
)

// Config is the immutable per-run emitter configuration. Every
// component receives it explicitly; nothing here is mutated during a
// run.
type Config struct {
	Style        StyleKind
	UseOptions   bool   // single data object keyed by field name (legacy, injected, reactive)
	AsClass      bool   // aggregate operations into one class per service
	FullResponse bool   // wrap results in the ApiResult envelope
	ClientClass  string // injected transport handle class
	Postfix      string // service class and file postfix
}

// Aggregate reports whether operations become methods of a service
// class. Injected and reactive styles always do; the transport handle
// lives on the instance.
func (c Config) Aggregate() bool {
	return c.AsClass || c.Style == StyleInjected || c.Style == StyleReactive
}

func (c Config) clientClass() string {
	if c.ClientClass != "" {
		return c.ClientClass
	}
	return "BaseHttpRequest"
}

func (c Config) postfix() string {
	if c.Postfix != "" {
		return c.Postfix
	}
	return "Service"
}
