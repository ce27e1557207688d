package emitter

import (
	"strings"

	"github.com/quillgen/quill/internal/model"
	"github.com/quillgen/quill/internal/tsast"
)

// statement builds the callable's single body statement: a return of
// the transport call appropriate to the active style.
func statement(op *model.Operation, cfg Config, opts requestOptions, responseType, errorType string) tsast.Stmt {
	switch cfg.Style {
	case StyleStandalone:
		return tsast.Return{Value: tsast.Call{
			Callee:   "(options?.client ?? client)." + strings.ToLower(string(op.Method)),
			TypeArgs: standaloneTypeArgs(responseType, errorType),
			Args:     []tsast.Expr{opts.object},
		}}

	case StyleInjected:
		return tsast.Return{Value: tsast.Call{
			Callee: "this.httpRequest.request",
			Args:   []tsast.Expr{opts.object},
		}}

	case StyleReactive:
		return tsast.Return{Value: tsast.Call{
			Callee: "__request",
			Args:   []tsast.Expr{tsast.Raw("OpenAPI"), tsast.Raw("this.http"), opts.object},
		}}

	default:
		return tsast.Return{Value: tsast.Call{
			Callee: "__request",
			Args:   []tsast.Expr{tsast.Raw("OpenAPI"), opts.object},
		}}
	}
}

// standaloneTypeArgs is the explicit type-argument matrix of the direct
// client call: [response, error], [unknown, error], [response], or
// none.
func standaloneTypeArgs(responseType, errorType string) []string {
	switch {
	case responseType != "" && errorType != "":
		return []string{responseType, errorType}
	case errorType != "":
		return []string{"unknown", errorType}
	case responseType != "":
		return []string{responseType}
	default:
		return nil
	}
}
