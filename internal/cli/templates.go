package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/featurekit/vue-feature/internal/config"
	"github.com/featurekit/vue-feature/internal/placeholder"
	"github.com/featurekit/vue-feature/internal/templates"
	"github.com/spf13/cobra"
)

func templatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Inspect template sets",
		Long:  `List the active template set or validate a custom one before using it with --templates.`,
	}

	cmd.AddCommand(templatesListCmd(a))
	cmd.AddCommand(templatesValidateCmd(a))
	return cmd
}

func templatesListCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the templates in the active set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("templates") {
				dir = config.Current().TemplatesDir
			}
			store, err := openStore(dir, a.info.Version)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			m := store.Manifest()
			fmt.Fprintf(out, "Template set: %s (%s)\n", m.Name, store.Source())
			if m.Description != "" {
				fmt.Fprintf(out, "%s\n", m.Description)
			}
			fmt.Fprintln(out)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFILE\tDESCRIPTION")
			for _, e := range store.Templates() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.File, e.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "templates", "", "Directory with a custom template set (default: built-in)")
	return cmd
}

func templatesValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir>",
		Short: "Validate a custom template set",
		Long: `Check a template directory: the manifest must match the schema, every listed
file must exist, and the set must accept this CLI version. Placeholders other
than the standard FEATURE_* keys are reported as warnings because they are
left untouched in generated files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := templates.OpenDir(args[0], a.info.Version)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			warnings := unknownPlaceholders(store)
			for _, w := range warnings {
				color.New(color.FgYellow).Fprintf(out, "! %s\n", w)
			}

			summary := fmt.Sprintf("%d templates", len(store.Templates()))
			if len(warnings) > 0 {
				summary += fmt.Sprintf(", %d warnings", len(warnings))
			}
			color.New(color.FgGreen).Fprintf(out, "✓ Template set %q is valid (%s)\n", store.Manifest().Name, summary)
			return nil
		},
	}
}

// unknownPlaceholders lists placeholders that generation will not replace.
func unknownPlaceholders(store *templates.Store) []string {
	known := make(map[string]bool, len(placeholder.StandardKeys))
	for _, k := range placeholder.StandardKeys {
		known[k] = true
	}

	var warnings []string
	for _, e := range store.Templates() {
		body, err := store.Read(e.ID)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		var unknown []string
		for _, k := range placeholder.Keys(body) {
			if !known[k] {
				unknown = append(unknown, placeholder.Token(k))
			}
		}
		if len(unknown) > 0 {
			warnings = append(warnings, fmt.Sprintf("%s (%s): unknown placeholders %s", e.ID, e.File, strings.Join(unknown, ", ")))
		}
	}
	return warnings
}
