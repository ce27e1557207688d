package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/quillgen/quill/internal/codegen"
	"github.com/quillgen/quill/internal/config"
	"github.com/quillgen/quill/internal/loader"
	"github.com/spf13/cobra"
)

func NewTsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ts",
		Short: "Generate TypeScript client bindings from OpenAPI spec",
		RunE:  runTsGenerate,
	}

	flags := cmd.Flags()
	flags.StringP("output-dir", "o", "", "Output directory for generated TypeScript code")
	flags.String("style", "", "Consumer style: standalone, legacy, injected, reactive")
	flags.Bool("use-options", false, "Bind parameters through a single data object")
	flags.Bool("as-class", false, "Emit one service class per service")
	flags.Bool("full-response", false, "Wrap results in the ApiResult envelope")
	flags.String("client-class", "", "Injected transport handle class (default BaseHttpRequest)")
	flags.String("postfix", "", "Service class and file postfix (default Service)")

	return cmd
}

func runTsGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	if err := generateOnce(cmd, cfg); err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}
	return watchSpec(cmd, cfg)
}

func generateOnce(cmd *cobra.Command, cfg *config.Config) error {
	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	if cfg.TS.Validate {
		if err := loader.Validate(result); err != nil {
			return fmt.Errorf("validating spec: %w", err)
		}
	}

	spec, err := loader.Transform(result)
	if err != nil {
		return fmt.Errorf("transforming spec: %w", err)
	}

	cmd.PrintErrf("Loaded OpenAPI %s: %s v%s\n", result.Version, spec.Info.Title, spec.Info.Version)
	cmd.PrintErrf("  Models: %d\n", len(spec.Models))
	cmd.PrintErrf("  Services: %d\n", len(spec.Services))

	outputs, err := codegen.New(cfg).Generate(spec)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		for _, out := range outputs {
			cmd.Printf("// %s\n%s\n", out.Filename, out.Content)
		}
		return nil
	}

	for _, out := range outputs {
		path := filepath.Join(cfg.TS.OutputDir, out.Filename)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		cmd.PrintErrf("Written: %s\n", path)
	}

	return nil
}

// watchSpec blocks, regenerating whenever the spec file changes.
// Editors often replace the file instead of writing in place, so the
// parent directory is watched and events are filtered by name.
func watchSpec(cmd *cobra.Command, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	specPath, err := filepath.Abs(cfg.Spec)
	if err != nil {
		return fmt.Errorf("resolving spec path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(specPath)); err != nil {
		return fmt.Errorf("watching spec directory: %w", err)
	}

	cmd.PrintErrf("Watching %s\n", cfg.Spec)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != specPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cmd.PrintErrf("Spec changed, regenerating\n")
			if err := generateOnce(cmd, cfg); err != nil {
				cmd.PrintErrf("Error: %s\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("Watch error: %s\n", err)
		}
	}
}
