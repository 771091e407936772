package watch

import (
	"fmt"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"syscall"
	"time"

	"github.com/LegacyCodeHQ/depmap/cmd/graph"
	"github.com/LegacyCodeHQ/depmap/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/depmap/depgraph/alias"
	"github.com/LegacyCodeHQ/depmap/depgraph/registry"
	"github.com/LegacyCodeHQ/depmap/internal/config"
	"github.com/LegacyCodeHQ/depmap/internal/logging"
	"github.com/LegacyCodeHQ/depmap/vcs"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	outputFormat string
	includes     []string
	debounce     time.Duration
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Watch for file changes and re-render the dependency graph",
		Long: `Watch a directory for changes to source files or alias configs and print
the rebuilt dependency graph after each burst of changes.

Examples:
  depmap watch
  depmap watch ./web -f mermaid`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", config.DefaultOutputFormat,
		fmt.Sprintf("Output format (%s)", formatters.SupportedFormats()))
	cmd.Flags().StringSliceVarP(&opts.includes, "input", "i", nil, "Only analyze these files and/or directories (comma-separated)")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", defaultDebounceInterval, "Quiet period before rebuilding")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, opts *watchOptions) error {
	cfg := config.FromContext(cmd.Context())
	logger := logging.FromContext(cmd.Context())

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", root, err)
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = opts.outputFormat
	}
	formatter, err := graph.NewFormatter(format)
	if err != nil {
		return err
	}

	analyzer, err := graph.NewAnalyzer(cfg, logger)
	if err != nil {
		return err
	}

	render := func() error {
		analysis, err := analyzer.Analyze(absRoot, "", opts.includes)
		if err != nil {
			return err
		}
		output, err := formatter.Format(analysis.Result, formatters.FormatOptions{Label: analysis.Source.Label})
		if err != nil {
			return fmt.Errorf("failed to format graph: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	if err := render(); err != nil {
		return fmt.Errorf("initial graph build failed: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", absRoot)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rebuild := func() {
		if err := render(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "graph rebuild error: %v\n", err)
		}
	}

	return watchAndRebuild(ctx, absRoot, skippedDirs(cfg), opts.debounce,
		relevantPath(cfg.Analysis.AliasConfig), rebuild, cmd.ErrOrStderr())
}

func skippedDirs(cfg *config.Config) map[string]bool {
	skipped := make(map[string]bool)
	for _, dir := range vcs.DefaultSkipDirs {
		skipped[dir] = true
	}
	for _, dir := range cfg.Analysis.SkipDirs {
		skipped[dir] = true
	}
	return skipped
}

// relevantPath accepts supported source files and alias config files.
func relevantPath(aliasConfig string) func(string) bool {
	configNames := make(map[string]bool)
	for _, name := range alias.ConfigCandidates {
		configNames[name] = true
	}
	if aliasConfig != "" {
		configNames[path.Base(filepath.ToSlash(aliasConfig))] = true
	}

	return func(filePath string) bool {
		return registry.IsSupportedFile(filePath) || configNames[filepath.Base(filePath)]
	}
}
