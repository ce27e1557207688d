package emitter

import (
	"github.com/quillgen/quill/internal/model"
	"github.com/quillgen/quill/internal/tsast"
	"github.com/quillgen/quill/internal/typescript"
)

// serviceOutput is everything one service contributes to its file: the
// declarations in operation order, the type names the declarations
// reference, and whether the multipart serializer helper is needed.
type serviceOutput struct {
	decls               []tsast.Decl
	typeImports         []string
	needsFormSerializer bool
}

// operationMeta is the name-resolution key for an operation's companion
// types. Operations are not models, so they get their own reference
// namespace.
func operationMeta(op *model.Operation) string {
	return "#/operations/" + op.Name
}

// processService emits every operation of one service, as free
// callables or as methods of a single class. Type names are registered
// up front; only names the resolver actually returns are forwarded for
// import.
func processService(svc *model.Service, cfg Config, resolver *typescript.Resolver) serviceOutput {
	var out serviceOutput
	seen := map[string]bool{}
	forward := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			out.typeImports = append(out.typeImports, name)
		}
	}

	var methods []tsast.Method

	for i := range svc.Operations {
		op := &svc.Operations[i]
		meta := operationMeta(op)

		var dataType, errorType, responseType string
		if len(op.Parameters) > 0 {
			dataType = resolver.Register(meta, typescript.SuffixData, op.Name)
		}
		if cfg.Style == StyleStandalone {
			errorType = resolver.Register(meta, typescript.SuffixError, op.Name)
		}
		if len(op.Results) > 0 {
			responseType = resolver.Register(meta, typescript.SuffixResponse, op.Name)
		}
		forward(dataType)
		forward(errorType)
		forward(responseType)

		comment := operationComment(op, cfg)
		params := bindParameters(op, cfg, dataType)
		opts := buildRequestOptions(op, cfg)
		ret := returnType(op, cfg, responseType)
		body := statement(op, cfg, opts, responseType, errorType)
		if opts.needsFormSerializer {
			out.needsFormSerializer = true
		}

		if cfg.Aggregate() {
			methods = append(methods, tsast.Method{
				Comment:    comment,
				Name:       op.Name,
				Params:     params,
				ReturnType: ret,
				Body:       []tsast.Stmt{body},
			})
		} else {
			out.decls = append(out.decls, tsast.Function{
				Comment:    comment,
				Export:     true,
				Name:       op.Name,
				Params:     params,
				ReturnType: ret,
				Body:       []tsast.Stmt{body},
			})
		}
	}

	if cfg.Aggregate() {
		out.decls = append(out.decls, tsast.Class{
			Decorators: classDecorators(cfg),
			Name:       ClassName(svc, cfg),
			CtorParams: ctorParams(cfg),
			Methods:    methods,
		})
	}

	return out
}

// ClassName is the service's aggregate (and file) name.
func ClassName(svc *model.Service, cfg Config) string {
	return typescript.PascalCase(svc.Name) + cfg.postfix()
}

func classDecorators(cfg Config) []string {
	if cfg.Style == StyleReactive {
		return []string{"@Injectable({ providedIn: 'root' })"}
	}
	return nil
}

// ctorParams is the single injected constructor parameter, when the
// style carries one.
func ctorParams(cfg Config) []tsast.Param {
	switch cfg.Style {
	case StyleInjected:
		return []tsast.Param{{Modifier: "public readonly", Name: "httpRequest", Type: cfg.clientClass()}}
	case StyleReactive:
		return []tsast.Param{{Modifier: "public readonly", Name: "http", Type: "HttpClient"}}
	default:
		return nil
	}
}
