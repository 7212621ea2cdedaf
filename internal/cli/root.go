package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/featurekit/vue-feature/internal/branding"
	"github.com/featurekit/vue-feature/internal/config"
	"github.com/featurekit/vue-feature/internal/logging"
	"github.com/spf13/cobra"
)

// BuildInfo is the version metadata injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app carries per-invocation state shared by the subcommands.
type app struct {
	info      BuildInfo
	logger    *slog.Logger
	verbose   bool
	logFormat string
}

// NewRootCmd builds the full command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	a := &app{info: info, logger: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` generates feature-based Vue.js code: a page, table and form
components, a composable or Pinia store, an API service and TypeScript types.`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			return a.setupLogger(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(generateCmd(a))
	rootCmd.AddCommand(templatesCmd(a))
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd(a))

	return rootCmd
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	settings := config.Current()
	cfg := logging.Config{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: cmd.ErrOrStderr(),
	}
	if a.verbose {
		cfg.Level = "debug"
	}
	if a.logFormat != "" {
		cfg.Format = a.logFormat
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded", "file", config.FilePath(), "output_dir", settings.OutputDir)
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	return execute(NewRootCmd(BuildInfo{Version: version, Commit: commit, Date: date}), os.Stderr)
}

func execute(rootCmd *cobra.Command, stderr io.Writer) error {
	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(stderr, "\n❌ Error: %v\n\n", err)
	}
	return err
}
