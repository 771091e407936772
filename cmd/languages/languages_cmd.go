package languages

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/depmap/depgraph/registry"
	"github.com/spf13/cobra"
)

// Cmd represents the languages command.
var Cmd = NewCommand()

// NewCommand returns a new languages command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List all supported languages and file extensions",
		Long: `List all supported language families and their mapped file extensions.
Files with any other extension appear in the graph without dependencies.

Examples:
  depmap languages`,
		Args: cobra.NoArgs,
		RunE: runLanguages,
	}

	return cmd
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	languages := registry.SupportedLanguages()

	for _, language := range languages {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", language.Name, strings.Join(language.Extensions, ", ")); err != nil {
			return err
		}
	}

	return nil
}
