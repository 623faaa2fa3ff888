// Package table provides the command that prints the compiled-in clade table.
package table

import (
	"github.com/spf13/cobra"

	"github.com/tolkit/cladegen/pkg/clades"
)

// NewCommand creates the table command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "table",
		GroupID: "inspect",
		Short:   "Print the clade table compiled into this binary",
		Long: `Table prints the lookup table this binary was built with. Run generate
and rebuild to pick up changes to the curated source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return clades.PrintTable(cmd.OutOrStdout())
		},
	}
}
