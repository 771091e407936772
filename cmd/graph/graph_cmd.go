package graph

import (
	"fmt"

	"github.com/LegacyCodeHQ/depmap/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/depmap/cmd/graph/formatters/dot"
	"github.com/LegacyCodeHQ/depmap/internal/config"
	"github.com/LegacyCodeHQ/depmap/internal/logging"
	"github.com/spf13/cobra"
)

type graphOptions struct {
	outputFormat string
	commitID     string
	includes     []string
	summary      bool
	generateURL  bool
}

// Cmd represents the graph command.
var Cmd = NewCommand()

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph [path]",
		Short: "Generate a file-level dependency graph.",
		Long: `Generate a file-level dependency graph.

Walks the directory (default: current directory) and reports which files
import which other files of the same tree. Imports of external packages and
imports that resolve to no file are left out.

Examples:
  depmap graph                         # current directory
  depmap graph ./web -f mermaid        # another directory as Mermaid
  depmap graph -c HEAD~3               # repository at a commit
  depmap graph -i src/app,src/lib      # only imports of these files/directories
  depmap graph --summary -f dot -u     # GraphvizOnline URL plus a summary table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", config.DefaultOutputFormat,
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().StringVarP(&opts.commitID, "commit", "c", "", "Git commit to analyze instead of the working tree")
	cmd.Flags().StringSliceVarP(&opts.includes, "input", "i", nil, "Only analyze these files and/or directories (comma-separated)")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print a per-language summary table to stderr")
	cmd.Flags().BoolVarP(&opts.generateURL, "url", "u", false, "Print a GraphvizOnline URL instead of DOT output")

	return cmd
}

func runGraph(cmd *cobra.Command, args []string, opts *graphOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := logging.FromContext(cmd.Context())

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = opts.outputFormat
	}
	formatter, err := NewFormatter(format)
	if err != nil {
		return err
	}

	analyzer, err := NewAnalyzer(cfg, logger)
	if err != nil {
		return err
	}
	analysis, err := analyzer.Analyze(path, opts.commitID, opts.includes)
	if err != nil {
		return err
	}

	output, err := formatter.Format(analysis.Result, formatters.FormatOptions{Label: analysis.Source.Label})
	if err != nil {
		return fmt.Errorf("failed to format graph: %w", err)
	}

	if opts.generateURL {
		dotFormatter, ok := formatter.(*dot.Formatter)
		if !ok {
			return fmt.Errorf("--url requires the %s format", formatters.OutputFormatDOT)
		}
		output = dotFormatter.GenerateURL(output) + "\n"
	}

	if _, err := fmt.Fprint(cmd.OutOrStdout(), output); err != nil {
		return err
	}

	writeDiagnostics(cmd.ErrOrStderr(), analysis.Result.Diagnostics)
	if opts.summary {
		writeSummary(cmd.ErrOrStderr(), analysis)
	}

	return nil
}
