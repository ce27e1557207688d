package emitter

import (
	"testing"

	"github.com/quillgen/quill/internal/model"
	"github.com/stretchr/testify/require"
)

func opWithParams(params ...model.Parameter) *model.Operation {
	return &model.Operation{
		Name:       "getUser",
		Method:     model.MethodGet,
		Path:       "/users/{id}",
		Parameters: params,
	}
}

func TestBindParametersStandalone(t *testing.T) {
	op := opWithParams(model.Parameter{Name: "id", Prop: "id", In: model.LocationPath, Required: true})
	cfg := Config{Style: StyleStandalone}

	params := bindParameters(op, cfg, "GetUserData")
	require.Len(t, params, 1)
	require.Equal(t, "options", params[0].Name)
	require.Equal(t, "Options<GetUserData>", params[0].Type)
	require.False(t, params[0].Optional)
}

func TestBindParametersStandaloneNoRequired(t *testing.T) {
	op := opWithParams(model.Parameter{Name: "limit", Prop: "limit", In: model.LocationQuery})
	cfg := Config{Style: StyleStandalone}

	params := bindParameters(op, cfg, "ListUsersData")
	require.Len(t, params, 1)
	require.True(t, params[0].Optional)
}

func TestBindParametersStandaloneNoBody(t *testing.T) {
	op := opWithParams()
	cfg := Config{Style: StyleStandalone}

	params := bindParameters(op, cfg, "")
	require.Len(t, params, 1)
	require.Equal(t, "Options", params[0].Type)
	require.True(t, params[0].Optional)
}

func TestBindParametersOptions(t *testing.T) {
	op := opWithParams(model.Parameter{Name: "id", Prop: "id", In: model.LocationPath, Required: true})
	cfg := Config{Style: StyleLegacy, UseOptions: true}

	params := bindParameters(op, cfg, "GetUserData")
	require.Len(t, params, 1)
	require.Equal(t, "data", params[0].Name)
	require.Equal(t, "GetUserData", params[0].Type)
	require.Empty(t, params[0].Default)
}

func TestBindParametersOptionsDefaultsToEmptyObject(t *testing.T) {
	op := opWithParams(model.Parameter{Name: "limit", Prop: "limit", In: model.LocationQuery})
	cfg := Config{Style: StyleLegacy, UseOptions: true}

	params := bindParameters(op, cfg, "ListUsersData")
	require.Len(t, params, 1)
	require.Equal(t, "{}", params[0].Default)
}

func TestBindParametersOptionsNoParameters(t *testing.T) {
	op := opWithParams()
	cfg := Config{Style: StyleLegacy, UseOptions: true}

	require.Empty(t, bindParameters(op, cfg, ""))
}

func TestBindParametersPositionalPreservesOrder(t *testing.T) {
	op := opWithParams(
		model.Parameter{Name: "id", Prop: "id", In: model.LocationPath, Required: true},
		model.Parameter{Name: "limit", Prop: "limit", In: model.LocationQuery, Default: "10"},
		model.Parameter{Name: "verbose", Prop: "verbose", In: model.LocationQuery},
	)
	cfg := Config{Style: StyleLegacy}

	params := bindParameters(op, cfg, "GetUserData")
	require.Len(t, params, 3)

	require.Equal(t, "id", params[0].Name)
	require.Equal(t, "GetUserData['id']", params[0].Type)
	require.False(t, params[0].Optional)

	require.Equal(t, "limit", params[1].Name)
	require.Equal(t, "10", params[1].Default)
	require.True(t, params[1].Optional)

	require.Equal(t, "verbose", params[2].Name)
	require.True(t, params[2].Optional)
}

func TestBindParametersInjectedFollowsOptionsFlag(t *testing.T) {
	op := opWithParams(model.Parameter{Name: "id", Prop: "id", In: model.LocationPath, Required: true})

	positional := bindParameters(op, Config{Style: StyleInjected}, "GetUserData")
	require.Len(t, positional, 1)
	require.Equal(t, "id", positional[0].Name)

	options := bindParameters(op, Config{Style: StyleReactive, UseOptions: true}, "GetUserData")
	require.Len(t, options, 1)
	require.Equal(t, "data", options[0].Name)
}
