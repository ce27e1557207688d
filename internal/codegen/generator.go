package codegen

import (
	"path"

	"github.com/quillgen/quill/internal/config"
	"github.com/quillgen/quill/internal/emitter"
	"github.com/quillgen/quill/internal/model"
	"github.com/quillgen/quill/internal/typescript"
)

type Generator struct {
	config *config.Config
}

type Output struct {
	Filename string
	Content  string
}

func New(cfg *config.Config) *Generator {
	return &Generator{config: cfg}
}

// Generate emits one services file per service. A fresh resolver per
// call keeps reruns deterministic; model names are reserved first so
// operation companion types disambiguate around them.
func (g *Generator) Generate(spec *model.Spec) ([]Output, error) {
	resolver := typescript.NewResolver()
	for _, m := range spec.Models {
		resolver.Reserve(m.Meta, m.Name)
	}

	files := emitter.Emit(spec, g.config.Emitter(), resolver)

	outputs := make([]Output, 0, len(files))
	for _, f := range files {
		outputs = append(outputs, Output{
			Filename: path.Join("services", f.Name+".ts"),
			Content:  f.File.Render(),
		})
	}

	return outputs, nil
}
