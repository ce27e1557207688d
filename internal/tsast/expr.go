package tsast

import "strings"

// Expr is a renderable TypeScript expression.
type Expr interface {
	write(b *strings.Builder, indent string)
}

// Raw is an already-rendered expression fragment.
type Raw string

func (r Raw) write(b *strings.Builder, _ string) {
	b.WriteString(string(r))
}

// Str renders as a single-quoted string literal.
type Str string

func (s Str) write(b *strings.Builder, _ string) {
	b.WriteString("'")
	b.WriteString(strings.ReplaceAll(string(s), "'", "\\'"))
	b.WriteString("'")
}

// Entry is one member of an object literal: either a key/value pair or a
// spread of another expression.
type Entry struct {
	Key    string // rendered key, pre-quoted by the caller when needed
	Value  Expr
	Spread bool // renders "...Value"; Key is ignored
}

// Object is an object literal with a fixed member order.
type Object struct {
	Entries []Entry
}

func (o Object) write(b *strings.Builder, indent string) {
	if len(o.Entries) == 0 {
		b.WriteString("{}")
		return
	}
	inner := indent + "    "
	b.WriteString("{\n")
	for _, e := range o.Entries {
		b.WriteString(inner)
		if e.Spread {
			b.WriteString("...")
			e.Value.write(b, inner)
		} else {
			b.WriteString(e.Key)
			b.WriteString(": ")
			e.Value.write(b, inner)
		}
		b.WriteString(",\n")
	}
	b.WriteString(indent)
	b.WriteString("}")
}

// Call is a call expression with optional explicit type arguments.
type Call struct {
	Callee   string
	TypeArgs []string
	Args     []Expr
}

func (c Call) write(b *strings.Builder, indent string) {
	b.WriteString(c.Callee)
	if len(c.TypeArgs) > 0 {
		b.WriteString("<")
		b.WriteString(strings.Join(c.TypeArgs, ", "))
		b.WriteString(">")
	}
	b.WriteString("(")
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.write(b, indent)
	}
	b.WriteString(")")
}

// RenderExpr renders an expression at the given indentation.
func RenderExpr(e Expr, indent string) string {
	var b strings.Builder
	e.write(&b, indent)
	return b.String()
}
