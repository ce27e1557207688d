package cli

import (
	"github.com/quillgen/quill/internal/config"
	"github.com/spf13/cobra"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client bindings from OpenAPI specification",
	}

	config.BindCommonFlags(cmd)
	cmd.AddCommand(NewTsCmd())

	return cmd
}
