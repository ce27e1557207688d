package emitter

import "github.com/quillgen/quill/internal/model"

// returnType composes the declared return type. Layering order is
// fixed: result union, then the optional full-response envelope, then
// the style's async wrapper. Standalone callables declare none; the
// statement's type arguments carry the information instead.
func returnType(op *model.Operation, cfg Config, responseType string) string {
	if cfg.Style == StyleStandalone {
		return ""
	}

	inner := "void"
	if len(op.Results) > 0 && responseType != "" {
		inner = responseType
	}

	// The envelope wraps declared results only; a void operation stays
	// a plain async void even under full-response fidelity.
	if cfg.FullResponse && len(op.Results) > 0 {
		inner = "ApiResult<" + inner + ">"
	}

	if cfg.Style == StyleReactive {
		return "Observable<" + inner + ">"
	}
	return "CancelablePromise<" + inner + ">"
}
