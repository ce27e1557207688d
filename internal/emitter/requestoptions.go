package emitter

import (
	"github.com/quillgen/quill/internal/model"
	"github.com/quillgen/quill/internal/tsast"
	"github.com/quillgen/quill/internal/typescript"
)

// requestOptions is the descriptor object handed to the transport call,
// plus the signal that the multipart body serializer helper must be
// imported.
type requestOptions struct {
	object              tsast.Object
	needsFormSerializer bool
}

// optionsFields accumulates the descriptor fields. Field order is the
// contract: method, url, path, cookies, headers, query, formData, body,
// mediaType, responseHeader, errors. Empty fields are omitted entirely,
// never rendered empty.
type optionsFields struct {
	method         tsast.Expr
	url            tsast.Expr
	path           []tsast.Entry
	cookies        []tsast.Entry
	headers        []tsast.Entry
	query          []tsast.Entry
	formData       []tsast.Entry
	body           tsast.Expr
	mediaType      tsast.Expr
	responseHeader tsast.Expr
	errors         []tsast.Entry
}

func (f *optionsFields) build() tsast.Object {
	var obj tsast.Object
	add := func(key string, value tsast.Expr) {
		if value != nil {
			obj.Entries = append(obj.Entries, tsast.Entry{Key: key, Value: value})
		}
	}
	addGroup := func(key string, entries []tsast.Entry) {
		if len(entries) > 0 {
			obj.Entries = append(obj.Entries, tsast.Entry{Key: key, Value: tsast.Object{Entries: entries}})
		}
	}

	add("method", f.method)
	add("url", f.url)
	addGroup("path", f.path)
	addGroup("cookies", f.cookies)
	addGroup("headers", f.headers)
	addGroup("query", f.query)
	addGroup("formData", f.formData)
	add("body", f.body)
	add("mediaType", f.mediaType)
	add("responseHeader", f.responseHeader)
	addGroup("errors", f.errors)
	return obj
}

// buildRequestOptions assembles the descriptor for one operation.
func buildRequestOptions(op *model.Operation, cfg Config) requestOptions {
	if cfg.Style == StyleStandalone {
		return buildStandaloneOptions(op)
	}

	fields := optionsFields{
		method: tsast.Str(string(op.Method)),
		url:    tsast.Str(op.Path),
	}

	body := op.BodyParameter()

	for i := range op.Parameters {
		p := &op.Parameters[i]
		if p == body {
			continue
		}
		entry := tsast.Entry{
			Key:   typescript.QuoteKey(p.Prop),
			Value: paramRef(p, cfg),
		}
		switch p.In {
		case model.LocationPath:
			fields.path = append(fields.path, entry)
		case model.LocationCookie:
			fields.cookies = append(fields.cookies, entry)
		case model.LocationHeader:
			fields.headers = append(fields.headers, entry)
		case model.LocationQuery:
			fields.query = append(fields.query, entry)
		case model.LocationForm:
			fields.formData = append(fields.formData, entry)
		}
	}

	if body != nil {
		ref := paramRef(body, cfg)
		if body.In == model.LocationForm {
			fields.formData = append(fields.formData, tsast.Entry{
				Key:   typescript.QuoteKey(body.Prop),
				Value: ref,
			})
		} else {
			fields.body = ref
		}
		if body.MediaType != "" {
			fields.mediaType = tsast.Str(body.MediaType)
		}
	}

	if op.ResponseHeader != "" {
		fields.responseHeader = tsast.Str(op.ResponseHeader)
	}

	for _, e := range op.Errors {
		fields.errors = append(fields.errors, tsast.Entry{
			Key:   errorKey(e.Code),
			Value: tsast.Str(e.Description),
		})
	}

	return requestOptions{object: fields.build()}
}

// buildStandaloneOptions spreads the caller's options object, optionally
// the multipart body serializer, and pins the URL last.
func buildStandaloneOptions(op *model.Operation) requestOptions {
	var obj tsast.Object
	obj.Entries = append(obj.Entries, tsast.Entry{Spread: true, Value: tsast.Raw("options")})

	needsSerializer := usesMultipartOnly(op)
	if needsSerializer {
		obj.Entries = append(obj.Entries, tsast.Entry{Spread: true, Value: tsast.Raw("formDataBodySerializer")})
	}

	obj.Entries = append(obj.Entries, tsast.Entry{Key: "url", Value: tsast.Str(op.Path)})
	return requestOptions{object: obj, needsFormSerializer: needsSerializer}
}

// usesMultipartOnly reports whether every body and form parameter shares
// exactly one media type and that media type is multipart/form-data.
func usesMultipartOnly(op *model.Operation) bool {
	seen := map[string]bool{}
	for _, p := range op.Parameters {
		if p.In != model.LocationBody && p.In != model.LocationForm {
			continue
		}
		seen[p.MediaType] = true
	}
	return len(seen) == 1 && seen["multipart/form-data"]
}

// errorKey renders a status code as an object key. Numeric codes stay
// bare; wildcard codes like 4XX must be quoted.
func errorKey(code string) string {
	for _, r := range code {
		if r < '0' || r > '9' {
			return typescript.QuoteKey(code)
		}
	}
	return code
}

// paramRef is the expression that reads a parameter at the call site:
// the data object's field under options binding, the bare parameter
// otherwise.
func paramRef(p *model.Parameter, cfg Config) tsast.Expr {
	if cfg.UseOptions {
		return tsast.Raw("data." + p.Name)
	}
	return tsast.Raw(p.Name)
}
