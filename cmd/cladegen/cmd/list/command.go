// Package list provides the command that shows the clade entries built
// from the curated source table.
package list

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tolkit/cladegen/internal/appcontext"
	"github.com/tolkit/cladegen/internal/cmd/output"
	"github.com/tolkit/cladegen/pkg/errors"
	"github.com/tolkit/cladegen/pkg/telomere"
)

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:     "list [clade]",
		GroupID: "core",
		Short:   "List clades and their repeat units",
		Long: `List shows every clade that would appear in the generated table,
together with its distinct informative repeat units.

Given a clade name, only that clade is shown.`,
		Example: `  cladegen list                   # All clades as a table
  cladegen list Hymenoptera       # A single clade
  cladegen list --format yaml     # All clades as YAML`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := app.Settings()
			obs, err := app.ReadSource(cmd.Context(), input)
			if err != nil {
				return err
			}
			entries := telomere.Build(cmd.Context(), obs, telomere.AggregateOptions{SortClades: settings.SortClades})

			if len(args) == 1 {
				return showClade(cmd, app, entries, args[0])
			}
			return listClades(cmd, app, entries)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "curated source table (default from config)")

	return cmd
}

// listClades prints all entries.
func listClades(cmd *cobra.Command, app appcontext.Interface, entries []telomere.CladeEntry) error {
	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)

	var data any = entries
	if format == output.FormatTable {
		data = toTableData(entries)
	}

	app.Logger().Debug().Msgf("Found %d clades", len(entries))

	return formatter.Format(cmd.OutOrStdout(), data)
}

// showClade prints the entry named clade.
func showClade(cmd *cobra.Command, app appcontext.Interface, entries []telomere.CladeEntry, clade string) error {
	entry, ok := telomere.Find(entries, clade)
	if !ok {
		return errors.NewNotFoundError("clade", clade)
	}

	formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
	return formatter.Format(cmd.OutOrStdout(), entry)
}

// toTableData converts entries to table rows.
func toTableData(entries []telomere.CladeEntry) output.Data {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Label, strings.Join(e.Motifs, ", "), strconv.Itoa(e.Length)})
	}
	return output.Data{
		Headers: []string{"Clade", "Repeat units", "Count"},
		Rows:    rows,
	}
}
