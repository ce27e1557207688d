package emitter

import (
	"github.com/quillgen/quill/internal/model"
	"github.com/quillgen/quill/internal/tsast"
	"github.com/quillgen/quill/internal/typescript"
)

// ServiceFile is one emitted service source file.
type ServiceFile struct {
	Name string // file basename without extension
	File *tsast.File
}

var fileHeader = []string{
	"generated by quill - do not edit",
	"eslint-disable",
}

// Emit runs the service processor over every service in input order and
// assembles one file per service: header, infrastructure imports for
// the active style, one type import per distinct forwarded name, then
// the declarations. Re-running on identical input reproduces the files
// byte for byte.
func Emit(spec *model.Spec, cfg Config, resolver *typescript.Resolver) []ServiceFile {
	files := make([]ServiceFile, 0, len(spec.Services))

	for i := range spec.Services {
		svc := &spec.Services[i]
		out := processService(svc, cfg, resolver)

		file := &tsast.File{Header: fileHeader}
		addInfrastructureImports(file, cfg, out)
		if len(out.typeImports) > 0 {
			file.AddImport("../models", true, out.typeImports...)
		}
		for _, d := range out.decls {
			file.Add(d)
		}

		files = append(files, ServiceFile{Name: ClassName(svc, cfg), File: file})
	}

	return files
}

func addInfrastructureImports(file *tsast.File, cfg Config, out serviceOutput) {
	switch cfg.Style {
	case StyleStandalone:
		file.AddImport("../core/client", false, "client")
		if out.needsFormSerializer {
			file.AddImport("../core/client", false, "formDataBodySerializer")
		}
		file.AddImport("../core/client", true, "Options")

	case StyleReactive:
		file.AddImport("@angular/core", false, "Injectable")
		file.AddImport("@angular/common/http", false, "HttpClient")
		file.AddImport("rxjs", true, "Observable")
		if cfg.FullResponse {
			file.AddImport("../core/ApiResult", true, "ApiResult")
		}
		file.AddImport("../core/OpenAPI", false, "OpenAPI")
		file.AddImport("../core/request", false, "request as __request")

	case StyleInjected:
		file.AddImport("../core/CancelablePromise", true, "CancelablePromise")
		if cfg.FullResponse {
			file.AddImport("../core/ApiResult", true, "ApiResult")
		}
		file.AddImport("../core/"+cfg.clientClass(), true, cfg.clientClass())

	default:
		file.AddImport("../core/CancelablePromise", true, "CancelablePromise")
		if cfg.FullResponse {
			file.AddImport("../core/ApiResult", true, "ApiResult")
		}
		file.AddImport("../core/OpenAPI", false, "OpenAPI")
		file.AddImport("../core/request", false, "request as __request")
	}
}
