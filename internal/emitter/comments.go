package emitter

import (
	"github.com/quillgen/quill/internal/model"
	"github.com/quillgen/quill/internal/typescript"
)

// operationComment builds the JSDoc lines for one operation. Standalone
// callables document only themselves; the other styles additionally
// document parameters, results, and the error contract.
func operationComment(op *model.Operation, cfg Config) []string {
	var lines []string

	if op.Deprecated {
		lines = append(lines, "@deprecated")
	}
	if op.Summary != "" {
		lines = append(lines, typescript.EscapeComment(op.Summary))
	}
	if op.Description != "" {
		lines = append(lines, typescript.EscapeComment(op.Description))
	}

	if cfg.Style == StyleStandalone {
		return lines
	}

	for _, p := range op.Parameters {
		name := p.Name
		if cfg.UseOptions {
			name = "data." + name
		}
		line := "@param " + name
		if p.Description != "" {
			line += " " + typescript.EscapeComment(p.Description)
		}
		lines = append(lines, line)
	}

	for _, r := range op.Results {
		line := "@returns " + r.Type
		if r.Description != "" {
			line += " " + typescript.EscapeComment(r.Description)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "@throws ApiError")
	return lines
}
