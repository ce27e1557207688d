package loader

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/pb33f/libopenapi/orderedmap"
	"github.com/quillgen/quill/internal/emitter"
	"github.com/quillgen/quill/internal/model"
	"github.com/quillgen/quill/internal/typescript"
	"go.yaml.in/yaml/v4"
)

// Transform lowers a parsed OpenAPI document into the generator's
// records: top-level models plus operations grouped into services by
// their first tag. Input order is preserved throughout.
func Transform(result *Result) (*model.Spec, error) {
	doc := result.Document.Model

	spec := &model.Spec{
		Info: transformInfo(doc.Info),
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name := range doc.Components.Schemas.FromOldest() {
			spec.Models = append(spec.Models, model.Model{
				Name: typescript.PascalCase(name),
				Meta: "#/components/schemas/" + name,
			})
		}
	}

	services := map[string]int{}
	appendOperation := func(serviceName string, op model.Operation) {
		idx, ok := services[serviceName]
		if !ok {
			idx = len(spec.Services)
			services[serviceName] = idx
			spec.Services = append(spec.Services, model.Service{Name: serviceName})
		}
		spec.Services[idx].Operations = append(spec.Services[idx].Operations, op)
	}

	if doc.Paths != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			methods := []struct {
				method model.Method
				op     *v3.Operation
			}{
				{model.MethodGet, pathItem.Get},
				{model.MethodPost, pathItem.Post},
				{model.MethodPut, pathItem.Put},
				{model.MethodDelete, pathItem.Delete},
				{model.MethodPatch, pathItem.Patch},
				{model.MethodHead, pathItem.Head},
				{model.MethodOptions, pathItem.Options},
			}
			for _, m := range methods {
				if m.op == nil {
					continue
				}
				operation := transformOperation(m.method, pathStr, m.op)
				appendOperation(serviceFor(m.op), operation)
			}
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

// serviceFor picks the operation's service: the x-quill-service
// extension, the first tag, or the default bucket.
func serviceFor(op *v3.Operation) string {
	if name := stringExtension(op.Extensions, "x-quill-service"); name != "" {
		return name
	}
	if len(op.Tags) > 0 {
		return op.Tags[0]
	}
	return "Default"
}

func transformOperation(method model.Method, path string, op *v3.Operation) model.Operation {
	operation := model.Operation{
		Name:        operationName(method, path, op),
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Deprecated:  boolPtr(op.Deprecated),
	}

	for _, p := range op.Parameters {
		if param, ok := transformParameter(p); ok {
			operation.Parameters = append(operation.Parameters, param)
		}
	}

	if op.RequestBody != nil {
		if param := transformRequestBody(op.RequestBody); param != nil {
			operation.Parameters = append(operation.Parameters, *param)
		}
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			transformResponse(&operation, code, resp)
		}
	}

	return operation
}

// operationName prefers the explicit x-quill-name override, then the
// operationId, then a name derived from the method and path.
func operationName(method model.Method, path string, op *v3.Operation) string {
	if name := stringExtension(op.Extensions, "x-quill-name"); name != "" {
		return typescript.ToIdentifier(name)
	}
	if op.OperationId != "" {
		return typescript.ToIdentifier(op.OperationId)
	}
	return deriveName(method, path)
}

// deriveName builds an identifier like getUsersById from "GET
// /users/{id}".
func deriveName(method model.Method, path string) string {
	parts := []string{strings.ToLower(string(method))}
	for _, segment := range strings.Split(path, "/") {
		segment = strings.Trim(segment, "{}")
		if segment == "" {
			continue
		}
		if strings.Contains(path, "{"+segment+"}") {
			parts = append(parts, "by", segment)
		} else {
			parts = append(parts, segment)
		}
	}
	return typescript.ToIdentifier(strings.Join(parts, " "))
}

func transformParameter(p *v3.Parameter) (model.Parameter, bool) {
	location := model.ParameterLocation(strings.ToLower(p.In))
	switch location {
	case model.LocationPath, model.LocationQuery, model.LocationHeader, model.LocationCookie:
	default:
		return model.Parameter{}, false
	}

	param := model.Parameter{
		Name:        typescript.ToIdentifier(p.Name),
		Prop:        p.Name,
		In:          location,
		Description: p.Description,
		Required:    boolPtr(p.Required),
	}

	if p.Schema != nil {
		if schema := p.Schema.Schema(); schema != nil && schema.Default != nil {
			param.Default = renderLiteral(schema.Default)
		}
	}

	return param, true
}

// transformRequestBody lowers the request body into the single body (or
// form-data) parameter, choosing one media type by the selector's
// priority order. A body with no schema-bearing content contributes
// nothing.
func transformRequestBody(rb *v3.RequestBody) *model.Parameter {
	if rb.Content == nil {
		return nil
	}

	var contents []model.Content
	for mediaType, content := range rb.Content.FromOldest() {
		entry := model.Content{MediaType: mediaType}
		if content.Schema != nil {
			entry.Schema = &model.SchemaRef{Ref: content.Schema.GetReference()}
		}
		contents = append(contents, entry)
	}

	selected := emitter.SelectContent(contents)
	if selected == nil {
		return nil
	}

	location := model.LocationBody
	if selected.MediaType == "multipart/form-data" || selected.MediaType == "application/x-www-form-urlencoded" {
		location = model.LocationForm
	}

	return &model.Parameter{
		Name:        "requestBody",
		Prop:        "requestBody",
		In:          location,
		Description: rb.Description,
		Required:    boolPtr(rb.Required),
		MediaType:   selected.MediaType,
	}
}

// transformResponse files a response under results or the declared
// error map. Success responses also carry the response-header name when
// they declare headers.
func transformResponse(operation *model.Operation, code string, resp *v3.Response) {
	if !strings.HasPrefix(code, "2") {
		if code != "default" {
			operation.Errors = append(operation.Errors, model.ErrorDesc{
				Code:        code,
				Description: resp.Description,
			})
		}
		return
	}

	result := model.Result{
		Code:        code,
		Type:        "void",
		Description: resp.Description,
	}

	if resp.Content != nil {
		var contents []model.Content
		var schemas []*base.SchemaProxy
		for mediaType, content := range resp.Content.FromOldest() {
			entry := model.Content{MediaType: mediaType}
			if content.Schema != nil {
				entry.Schema = &model.SchemaRef{Ref: content.Schema.GetReference()}
			}
			contents = append(contents, entry)
			schemas = append(schemas, content.Schema)
		}
		if selected := emitter.SelectContent(contents); selected != nil {
			for i := range contents {
				if &contents[i] == selected {
					result.Type = tsType(schemas[i])
					break
				}
			}
		}
	}

	operation.Results = append(operation.Results, result)

	if operation.ResponseHeader == "" && resp.Headers != nil {
		for name := range resp.Headers.FromOldest() {
			operation.ResponseHeader = name
			break
		}
	}
}

// tsType maps a schema to the TypeScript type name used in
// documentation lines. Referenced schemas use their model name; inline
// schemas fall back to scalar mappings.
func tsType(proxy *base.SchemaProxy) string {
	if proxy == nil {
		return "unknown"
	}
	if ref := proxy.GetReference(); ref != "" {
		parts := strings.Split(ref, "/")
		return typescript.PascalCase(parts[len(parts)-1])
	}

	schema := proxy.Schema()
	if schema == nil || len(schema.Type) == 0 {
		return "unknown"
	}
	switch schema.Type[0] {
	case "string":
		return "string"
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		if schema.Items != nil && schema.Items.A != nil {
			return tsType(schema.Items.A) + "[]"
		}
		return "unknown[]"
	default:
		return "unknown"
	}
}

// renderLiteral turns a schema default node into a TypeScript literal.
func renderLiteral(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}
	if node.Tag == "!!str" {
		return "'" + strings.ReplaceAll(node.Value, "'", "\\'") + "'"
	}
	return node.Value
}

func stringExtension(extensions *orderedmap.Map[string, *yaml.Node], key string) string {
	if extensions == nil {
		return ""
	}
	for pair := extensions.First(); pair != nil; pair = pair.Next() {
		if pair.Key() != key {
			continue
		}
		if node := pair.Value(); node != nil && node.Kind == yaml.ScalarNode {
			return node.Value
		}
	}
	return ""
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
