package tsast

import "strings"

// Decl is a renderable top-level declaration.
type Decl interface {
	write(b *strings.Builder, indent string)
}

// Stmt is a renderable statement inside a function body.
type Stmt interface {
	write(b *strings.Builder, indent string)
}

// Return renders "return <expr>;".
type Return struct {
	Value Expr
}

func (r Return) write(b *strings.Builder, indent string) {
	b.WriteString(indent)
	b.WriteString("return ")
	r.Value.write(b, indent)
	b.WriteString(";\n")
}

// RenderStmt renders a single statement at the given indentation.
func RenderStmt(s Stmt, indent string) string {
	var b strings.Builder
	s.write(&b, indent)
	return b.String()
}

// Param is a function, method, or constructor parameter.
type Param struct {
	Modifier string // constructor property modifier, e.g. "public readonly"
	Name     string
	Type     string // empty leaves the parameter untyped
	Optional bool
	Default  string // rendered literal, empty when absent
}

func (p Param) render() string {
	var b strings.Builder
	if p.Modifier != "" {
		b.WriteString(p.Modifier)
		b.WriteString(" ")
	}
	b.WriteString(p.Name)
	if p.Optional && p.Default == "" {
		b.WriteString("?")
	}
	if p.Type != "" {
		b.WriteString(": ")
		b.WriteString(p.Type)
	}
	if p.Default != "" {
		b.WriteString(" = ")
		b.WriteString(p.Default)
	}
	return b.String()
}

func writeParams(b *strings.Builder, params []Param) {
	b.WriteString("(")
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.render())
	}
	b.WriteString(")")
}

func writeComment(b *strings.Builder, indent string, lines []string) {
	if len(lines) == 0 {
		return
	}
	b.WriteString(indent)
	b.WriteString("/**\n")
	for _, line := range lines {
		b.WriteString(indent)
		b.WriteString(" *")
		if line != "" {
			b.WriteString(" ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString(" */\n")
}

// Function is a free-standing callable.
type Function struct {
	Comment    []string
	Export     bool
	Name       string
	Params     []Param
	ReturnType string // empty leaves the return type inferred
	Body       []Stmt
}

func (f Function) write(b *strings.Builder, indent string) {
	writeComment(b, indent, f.Comment)
	b.WriteString(indent)
	if f.Export {
		b.WriteString("export ")
	}
	b.WriteString("const ")
	b.WriteString(f.Name)
	b.WriteString(" = ")
	writeParams(b, f.Params)
	if f.ReturnType != "" {
		b.WriteString(": ")
		b.WriteString(f.ReturnType)
	}
	b.WriteString(" => {\n")
	for _, s := range f.Body {
		s.write(b, indent+"    ")
	}
	b.WriteString(indent)
	b.WriteString("};\n")
}

// Method is a class method.
type Method struct {
	Comment    []string
	Name       string
	Params     []Param
	ReturnType string
	Body       []Stmt
}

func (m Method) write(b *strings.Builder, indent string) {
	writeComment(b, indent, m.Comment)
	b.WriteString(indent)
	b.WriteString("public ")
	b.WriteString(m.Name)
	writeParams(b, m.Params)
	if m.ReturnType != "" {
		b.WriteString(": ")
		b.WriteString(m.ReturnType)
	}
	b.WriteString(" {\n")
	for _, s := range m.Body {
		s.write(b, indent+"    ")
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}

// Class is an exported class declaration. A non-empty CtorParams emits a
// constructor whose parameters carry their property modifiers.
type Class struct {
	Comment    []string
	Decorators []string
	Name       string
	CtorParams []Param
	Methods    []Method
}

func (c Class) write(b *strings.Builder, indent string) {
	writeComment(b, indent, c.Comment)
	for _, d := range c.Decorators {
		b.WriteString(indent)
		b.WriteString(d)
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString("export class ")
	b.WriteString(c.Name)
	b.WriteString(" {\n")
	inner := indent + "    "
	if len(c.CtorParams) > 0 {
		b.WriteString(inner)
		b.WriteString("constructor")
		writeParams(b, c.CtorParams)
		b.WriteString(" {}\n")
	}
	for i, m := range c.Methods {
		if i > 0 || len(c.CtorParams) > 0 {
			b.WriteString("\n")
		}
		m.write(b, inner)
	}
	b.WriteString(indent)
	b.WriteString("}\n")
}
