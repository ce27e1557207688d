package loader

import (
	"testing"

	"github.com/quillgen/quill/internal/model"
	"github.com/stretchr/testify/require"
)

const petstoreYAML = `
openapi: 3.1.0
info:
  title: Petstore
  version: 1.0.0
paths:
  /users:
    get:
      tags: [users]
      operationId: listUsers
      summary: List users
      responses:
        '200':
          description: user list
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/User'
    post:
      tags: [users]
      operationId: createUser
      requestBody:
        required: true
        content:
          application/x-www-form-urlencoded:
            schema:
              $ref: '#/components/schemas/User'
          application/json:
            schema:
              $ref: '#/components/schemas/User'
      responses:
        '201':
          description: created
          headers:
            X-Request-Id:
              schema:
                type: string
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/User'
        '400':
          description: invalid payload
        default:
          description: unexpected error
  /users/{id}:
    get:
      tags: [users]
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
        - name: X-Trace-Id
          in: header
          schema:
            type: string
      responses:
        '204':
          description: no content
  /files:
    post:
      x-quill-service: uploads
      x-quill-name: upload file
      requestBody:
        content:
          multipart/form-data:
            schema:
              type: object
      responses:
        '204':
          description: uploaded
components:
  schemas:
    User:
      type: object
      properties:
        id:
          type: string
`

func loadSpec(t *testing.T, data string) *model.Spec {
	t.Helper()
	result, err := Load([]byte(data))
	require.NoError(t, err)
	spec, err := Transform(result)
	require.NoError(t, err)
	return spec
}

func TestTransformGroupsServices(t *testing.T) {
	spec := loadSpec(t, petstoreYAML)

	require.Equal(t, "Petstore", spec.Info.Title)
	require.Equal(t, "1.0.0", spec.Info.Version)

	require.Len(t, spec.Models, 1)
	require.Equal(t, "User", spec.Models[0].Name)
	require.Equal(t, "#/components/schemas/User", spec.Models[0].Meta)

	require.Len(t, spec.Services, 2)
	require.Equal(t, "users", spec.Services[0].Name)
	require.Equal(t, "uploads", spec.Services[1].Name)

	var names []string
	for _, op := range spec.Services[0].Operations {
		names = append(names, op.Name)
	}
	require.Equal(t, []string{"listUsers", "createUser", "getUsersById"}, names)
}

func TestTransformOperationNaming(t *testing.T) {
	spec := loadSpec(t, petstoreYAML)

	uploads := spec.ServiceByName("uploads")
	require.NotNil(t, uploads)
	require.Len(t, uploads.Operations, 1)
	require.Equal(t, "uploadFile", uploads.Operations[0].Name)

	users := spec.ServiceByName("users")
	require.NotNil(t, users)
	derived := users.Operations[2]
	require.Equal(t, "getUsersById", derived.Name)
	require.Equal(t, model.MethodGet, derived.Method)
	require.Equal(t, "/users/{id}", derived.Path)
}

func TestTransformParameters(t *testing.T) {
	spec := loadSpec(t, petstoreYAML)

	op := spec.ServiceByName("users").Operations[2]
	require.Len(t, op.Parameters, 2)

	id := op.Parameters[0]
	require.Equal(t, "id", id.Name)
	require.Equal(t, "id", id.Prop)
	require.Equal(t, model.LocationPath, id.In)
	require.True(t, id.Required)

	trace := op.Parameters[1]
	require.Equal(t, "xTraceId", trace.Name)
	require.Equal(t, "X-Trace-Id", trace.Prop)
	require.Equal(t, model.LocationHeader, trace.In)
	require.False(t, trace.Required)
}

func TestTransformRequestBodyPrefersJSON(t *testing.T) {
	spec := loadSpec(t, petstoreYAML)

	op := spec.ServiceByName("users").Operations[1]
	body := op.BodyParameter()
	require.NotNil(t, body)
	require.Equal(t, "requestBody", body.Name)
	require.Equal(t, model.LocationBody, body.In)
	require.Equal(t, "application/json", body.MediaType)
	require.True(t, body.Required)
}

func TestTransformMultipartBecomesForm(t *testing.T) {
	spec := loadSpec(t, petstoreYAML)

	op := spec.ServiceByName("uploads").Operations[0]
	body := op.BodyParameter()
	require.NotNil(t, body)
	require.Equal(t, model.LocationForm, body.In)
	require.Equal(t, "multipart/form-data", body.MediaType)
	require.False(t, body.Required)
}

func TestTransformResponses(t *testing.T) {
	spec := loadSpec(t, petstoreYAML)
	users := spec.ServiceByName("users")

	list := users.Operations[0]
	require.Len(t, list.Results, 1)
	require.Equal(t, "200", list.Results[0].Code)
	require.Equal(t, "User[]", list.Results[0].Type)
	require.Equal(t, "user list", list.Results[0].Description)

	create := users.Operations[1]
	require.Len(t, create.Results, 1)
	require.Equal(t, "User", create.Results[0].Type)
	require.Equal(t, "X-Request-Id", create.ResponseHeader)

	// The default response contributes neither a result nor an error.
	require.Len(t, create.Errors, 1)
	require.Equal(t, "400", create.Errors[0].Code)
	require.Equal(t, "invalid payload", create.Errors[0].Description)

	empty := users.Operations[2]
	require.Len(t, empty.Results, 1)
	require.Equal(t, "void", empty.Results[0].Type)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	_, err := Load([]byte(`
swagger: "2.0"
info:
  title: Old
  version: 1.0.0
paths: {}
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported OpenAPI version")
}

func TestLoadWarnsOnThreeZero(t *testing.T) {
	result, err := Load([]byte(`
openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths: {}
`))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	require.Contains(t, result.Warnings[0], "3.0.x")
}
