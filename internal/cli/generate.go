package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/featurekit/vue-feature/internal/config"
	"github.com/featurekit/vue-feature/internal/platform"
	"github.com/featurekit/vue-feature/internal/scaffold"
	"github.com/featurekit/vue-feature/internal/templates"
	"github.com/spf13/cobra"
)

func generateCmd(a *app) *cobra.Command {
	var (
		outputDir    string
		noTable      bool
		noForm       bool
		withStore    bool
		dryRun       bool
		templatesDir string
	)

	cmd := &cobra.Command{
		Use:     "generate <feature-name>",
		Aliases: []string{"g"},
		Short:   "Generate a new feature with Vue components, composables, and services",
		Long: `Generate a feature directory under the output directory containing:

  Index.vue                         always
  components/<Pascal>Table.vue      unless --no-table
  components/<Pascal>Form.vue       unless --no-form
  stores/use<Pascal>Store.ts        with --store
  composables/use<Pascal>.ts        without --store
  services/<camel>Api.ts            always
  types.ts                          always

The feature directory is named after the camelCase form of the feature name
and must not exist yet.

Examples:
  vue-feature generate user-profile
  vue-feature generate invoice --store --no-form -d resources/js`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			settings := config.Current()

			opts := scaffold.Options{
				OutputDir:    settings.OutputDir,
				IncludeTable: settings.Table,
				IncludeForm:  settings.Form,
				IncludeStore: settings.Store,
				DryRun:       dryRun,
			}
			flags := cmd.Flags()
			if flags.Changed("dir") {
				opts.OutputDir = outputDir
			}
			if flags.Changed("no-table") {
				opts.IncludeTable = !noTable
			}
			if flags.Changed("no-form") {
				opts.IncludeForm = !noForm
			}
			if flags.Changed("store") {
				opts.IncludeStore = withStore
			}
			if !flags.Changed("templates") {
				templatesDir = settings.TemplatesDir
			}

			store, err := openStore(templatesDir, a.info.Version)
			if err != nil {
				return err
			}

			fsys, err := platform.NewOS("")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgBlue).Fprintf(out, "\n🚀 Generating feature: %s\n\n", name)

			gen := scaffold.New(fsys, store,
				scaffold.WithReporter(&consoleReporter{w: cmd.ErrOrStderr(), verbose: a.verbose}),
				scaffold.WithLogger(a.logger.With("feature", name)),
			)
			result, err := gen.Generate(name, opts)
			if err != nil {
				return err
			}

			printResult(out, fsys.WorkDir(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "dir", "d", scaffold.DefaultOutputDir, "Output directory")
	cmd.Flags().BoolVar(&noTable, "no-table", false, "Skip table component generation")
	cmd.Flags().BoolVar(&noForm, "no-form", false, "Skip form component generation")
	cmd.Flags().BoolVar(&withStore, "store", false, "Add a Pinia store instead of a composable")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the files that would be generated without writing them")
	cmd.Flags().StringVar(&templatesDir, "templates", "", "Directory with a custom template set (default: built-in)")

	return cmd
}

// openStore returns the on-disk template set at dir, or the embedded one
// when dir is empty.
func openStore(dir, version string) (*templates.Store, error) {
	if dir == "" {
		return templates.Embedded(version)
	}
	return templates.OpenDir(dir, version)
}

func printResult(w io.Writer, workDir string, result *scaffold.Result) {
	dir := result.FeatureDir
	if rel, err := filepath.Rel(workDir, dir); err == nil {
		dir = rel
	}

	if result.DryRun {
		fmt.Fprintf(w, "\nWould create feature at %s/\n", filepath.ToSlash(dir))
	} else {
		fmt.Fprintf(w, "\nCreated feature at %s/\n", filepath.ToSlash(dir))
	}
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}

	if result.DryRun {
		fmt.Fprintln(w, "\nNo files were written (dry run).")
		return
	}
	color.New(color.FgGreen).Fprintf(w, "\n✨ Feature %q generated successfully!\n\n", result.Feature.Original)
}
