package cmd

import (
	"os"

	"github.com/LegacyCodeHQ/depmap/cmd/graph"
	"github.com/LegacyCodeHQ/depmap/cmd/languages"
	"github.com/LegacyCodeHQ/depmap/cmd/watch"
	"github.com/LegacyCodeHQ/depmap/internal/config"
	"github.com/LegacyCodeHQ/depmap/internal/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

type rootOptions struct {
	configPath string
	logLevel   string
	noColor    bool
}

var rootCmd = newRootCommand()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "depmap",
		Short: "Extract file-level dependency graphs from source trees",
		Long: `depmap reads a source tree and reports which project files import which
other project files. It understands JavaScript/TypeScript, Python, Java and
PHP, resolves tsconfig/jsconfig path aliases, and drops external packages.

Use 'depmap --help' to see all available commands, or 'depmap <command> --help'
for detailed information about a specific command.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupContext(cmd, opts)
		},
	}

	cmd.AddCommand(graph.Cmd)
	cmd.AddCommand(languages.Cmd)
	cmd.AddCommand(watch.Cmd)

	cmd.Annotations = map[string]string{
		"buildDate": buildDate,
		"commit":    commit,
	}

	// Customize version template to show additional build info
	cmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default is .depmap.yaml in the working or home directory)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	return cmd
}

// setupContext loads configuration and stores it, along with the logger, on
// the command context for subcommands.
func setupContext(cmd *cobra.Command, opts *rootOptions) error {
	if opts.noColor {
		color.NoColor = true
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	levelName := cfg.Log.Level
	if opts.logLevel != "" {
		levelName = opts.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	cfg.Log.Level = level.String()

	logger := logging.New(cmd.ErrOrStderr(), level)

	ctx := config.NewContext(cmd.Context(), cfg)
	ctx = logging.NewContext(ctx, logger)
	cmd.SetContext(ctx)

	return nil
}
