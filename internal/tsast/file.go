package tsast

import "strings"

// Import is one import line. Names are raw specifiers, so aliases like
// "request as __request" pass through untouched.
type Import struct {
	From     string
	TypeOnly bool
	Names    []string
}

// File is an append-only sink for one generated source file. Imports and
// declarations render in the order they were added; duplicate import
// names collapse onto their first occurrence.
type File struct {
	Header  []string
	imports []*Import
	decls   []Decl
}

// Add appends a declaration to the file.
func (f *File) Add(d Decl) {
	f.decls = append(f.decls, d)
}

// AddImport records names imported from one source module. Repeated
// calls for the same (source, type-only) pair merge into a single line,
// keeping first-occurrence order and dropping duplicates.
func (f *File) AddImport(from string, typeOnly bool, names ...string) {
	var imp *Import
	for _, existing := range f.imports {
		if existing.From == from && existing.TypeOnly == typeOnly {
			imp = existing
			break
		}
	}
	if imp == nil {
		imp = &Import{From: from, TypeOnly: typeOnly}
		f.imports = append(f.imports, imp)
	}
	for _, name := range names {
		seen := false
		for _, n := range imp.Names {
			if n == name {
				seen = true
				break
			}
		}
		if !seen {
			imp.Names = append(imp.Names, name)
		}
	}
}

// Render produces the file text: header comment, import block, then
// declarations separated by blank lines.
func (f *File) Render() string {
	var b strings.Builder

	for _, line := range f.Header {
		b.WriteString("/* ")
		b.WriteString(line)
		b.WriteString(" */\n")
	}

	wroteImports := false
	for _, imp := range f.imports {
		if len(imp.Names) == 0 {
			continue
		}
		b.WriteString("import ")
		if imp.TypeOnly {
			b.WriteString("type ")
		}
		b.WriteString("{ ")
		b.WriteString(strings.Join(imp.Names, ", "))
		b.WriteString(" } from '")
		b.WriteString(imp.From)
		b.WriteString("';\n")
		wroteImports = true
	}

	if len(f.Header) > 0 || wroteImports {
		b.WriteString("\n")
	}

	for i, d := range f.decls {
		if i > 0 {
			b.WriteString("\n")
		}
		d.write(&b, "")
	}

	return b.String()
}
