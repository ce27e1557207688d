package model

type Operation struct {
	Name           string
	Method         Method
	Path           string
	Summary        string
	Description    string
	Deprecated     bool
	Parameters     []Parameter
	Results        []Result
	Errors         []ErrorDesc
	ResponseHeader string // header name to unwrap from the response, empty when unset
}

// HasRequired reports whether at least one parameter is required.
func (o *Operation) HasRequired() bool {
	for _, p := range o.Parameters {
		if p.Required {
			return true
		}
	}
	return false
}

// BodyParameter returns the single body or form-data parameter.
// Returns nil when the operation carries none.
func (o *Operation) BodyParameter() *Parameter {
	for i := range o.Parameters {
		if o.Parameters[i].In == LocationBody || o.Parameters[i].In == LocationForm {
			return &o.Parameters[i]
		}
	}
	return nil
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

type ParameterLocation string

const (
	LocationPath   ParameterLocation = "path"
	LocationQuery  ParameterLocation = "query"
	LocationHeader ParameterLocation = "header"
	LocationCookie ParameterLocation = "cookie"
	LocationForm   ParameterLocation = "formData"
	LocationBody   ParameterLocation = "body"
)

type Parameter struct {
	Name        string
	Prop        string // wire name as sent in the request
	In          ParameterLocation
	Description string
	Required    bool
	Default     string // rendered literal, empty when absent
	MediaType   string // body and form parameters only
}

type Result struct {
	Code        string
	Type        string
	Description string
}

type ErrorDesc struct {
	Code        string
	Description string
}

// Content is one media-type entry of a request or response body. Entries
// keep the declaration order of the source document.
type Content struct {
	MediaType string
	Schema    *SchemaRef
}

// SchemaRef is the minimal view of a schema the emitter needs: the
// reference string used as the name-resolution key.
type SchemaRef struct {
	Ref string
}
