package emitter

import (
	"github.com/quillgen/quill/internal/model"
	"github.com/quillgen/quill/internal/tsast"
)

// bindParameters builds the parameter list of the emitted callable.
// dataType is the resolved request-data type name, empty when the
// operation has no parameters.
func bindParameters(op *model.Operation, cfg Config, dataType string) []tsast.Param {
	switch {
	case cfg.Style == StyleStandalone:
		optionsType := "Options"
		if dataType != "" {
			optionsType = "Options<" + dataType + ">"
		}
		return []tsast.Param{{
			Name:     "options",
			Type:     optionsType,
			Optional: !op.HasRequired(),
		}}

	case cfg.UseOptions:
		if dataType == "" {
			return nil
		}
		p := tsast.Param{Name: "data", Type: dataType}
		if !op.HasRequired() {
			p.Default = "{}"
		}
		return []tsast.Param{p}

	default:
		params := make([]tsast.Param, 0, len(op.Parameters))
		for _, param := range op.Parameters {
			params = append(params, tsast.Param{
				Name:     param.Name,
				Type:     dataType + "['" + param.Name + "']",
				Optional: !param.Required,
				Default:  param.Default,
			})
		}
		return params
	}
}
