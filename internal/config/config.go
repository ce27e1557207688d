package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/quillgen/quill/internal/emitter"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec string   `koanf:"spec"`
	TS   TSConfig `koanf:"ts"`
}

type TSConfig struct {
	OutputDir    string `koanf:"output-dir"`
	Style        string `koanf:"style"`
	UseOptions   bool   `koanf:"use-options"`
	AsClass      bool   `koanf:"as-class"`
	FullResponse bool   `koanf:"full-response"`
	ClientClass  string `koanf:"client-class"`
	Postfix      string `koanf:"postfix"`
	Validate     bool   `koanf:"validate"`
}

// BindCommonFlags binds language-agnostic flags to the generate command
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: quill.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path")
	flags.Bool("validate", false, "Validate the document before generating")
	flags.Bool("dry-run", false, "Print output without writing files")
	flags.Bool("watch", false, "Regenerate whenever the spec file changes")
}

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("quill.yaml"); err == nil {
			configFile = "quill.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.TS.Style == "" {
		cfg.TS.Style = string(emitter.StyleLegacy)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
		if v, err := cmd.PersistentFlags().GetBool(name); err == nil {
			return v
		}
		return false
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("output-dir"); v != "" {
		m["ts.output-dir"] = v
	}
	if v := getString("style"); v != "" {
		m["ts.style"] = v
	}
	if v := getString("client-class"); v != "" {
		m["ts.client-class"] = v
	}
	if v := getString("postfix"); v != "" {
		m["ts.postfix"] = v
	}
	if flagChanged("use-options") {
		m["ts.use-options"] = getBool("use-options")
	}
	if flagChanged("as-class") {
		m["ts.as-class"] = getBool("as-class")
	}
	if flagChanged("full-response") {
		m["ts.full-response"] = getBool("full-response")
	}
	if flagChanged("validate") {
		m["ts.validate"] = getBool("validate")
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.TS.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}

	validStyles := map[string]bool{
		string(emitter.StyleStandalone): true,
		string(emitter.StyleLegacy):     true,
		string(emitter.StyleInjected):   true,
		string(emitter.StyleReactive):   true,
	}
	if !validStyles[c.TS.Style] {
		return fmt.Errorf("invalid style: %s (valid: standalone, legacy, injected, reactive)", c.TS.Style)
	}

	if c.TS.Style == string(emitter.StyleStandalone) && c.TS.UseOptions {
		return fmt.Errorf("use-options does not apply to the standalone style")
	}
	if c.TS.ClientClass != "" && c.TS.Style != string(emitter.StyleInjected) {
		return fmt.Errorf("client-class requires the injected style")
	}

	return nil
}

// Emitter lowers the loaded configuration into the emitter's immutable
// per-run value.
func (c *Config) Emitter() emitter.Config {
	return emitter.Config{
		Style:        emitter.StyleKind(c.TS.Style),
		UseOptions:   c.TS.UseOptions,
		AsClass:      c.TS.AsClass,
		FullResponse: c.TS.FullResponse,
		ClientClass:  c.TS.ClientClass,
		Postfix:      c.TS.Postfix,
	}
}
