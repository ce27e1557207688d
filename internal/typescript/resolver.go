package typescript

import "fmt"

// Suffix distinguishes the per-operation companion types.
type Suffix string

const (
	SuffixData     Suffix = "Data"
	SuffixResponse Suffix = "Response"
	SuffixError    Suffix = "Error"
)

// Resolver assigns collision-free TypeScript type names to spec
// references. A (reference, suffix) pair resolves to at most one name;
// references that were never registered resolve to the empty string,
// which callers treat as "no import needed".
type Resolver struct {
	names map[key]string
	taken map[string]key
}

type key struct {
	meta   string
	suffix Suffix
}

func NewResolver() *Resolver {
	return &Resolver{
		names: make(map[key]string),
		taken: make(map[string]key),
	}
}

// Register assigns a name derived from base plus suffix to the given
// reference and returns it. Registering the same pair twice returns the
// already-assigned name. Colliding names are disambiguated with a
// numeric counter, so registration order determines who keeps the bare
// name.
func (r *Resolver) Register(meta string, suffix Suffix, base string) string {
	return r.claim(key{meta: meta, suffix: suffix}, PascalCase(base)+string(suffix))
}

// Reserve claims a model's display name up front, so later
// registrations can never shadow a schema that legitimately carries a
// companion-looking name.
func (r *Resolver) Reserve(meta, name string) string {
	return r.claim(key{meta: meta}, name)
}

func (r *Resolver) claim(k key, candidate string) string {
	if name, ok := r.names[k]; ok {
		return name
	}

	name := candidate
	for n := 2; ; n++ {
		owner, exists := r.taken[name]
		if !exists || owner == k {
			break
		}
		name = fmt.Sprintf("%s%d", candidate, n)
	}

	r.names[k] = name
	r.taken[name] = k
	return name
}

// Resolve returns the registered name for the pair, or "" when the
// reference was never registered under that suffix.
func (r *Resolver) Resolve(meta string, suffix Suffix) string {
	return r.names[key{meta: meta, suffix: suffix}]
}
