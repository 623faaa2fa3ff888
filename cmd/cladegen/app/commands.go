package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tolkit/cladegen/cmd/cladegen/cmd/classify"
	"github.com/tolkit/cladegen/cmd/cladegen/cmd/docs"
	"github.com/tolkit/cladegen/cmd/cladegen/cmd/generate"
	"github.com/tolkit/cladegen/cmd/cladegen/cmd/list"
	"github.com/tolkit/cladegen/cmd/cladegen/cmd/table"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(generate.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))

	// Inspection commands
	rootCmd.AddCommand(classify.NewCommand(a))
	rootCmd.AddCommand(docs.NewCommand(a))
	rootCmd.AddCommand(table.NewCommand())

	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cladegen %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(w, "  commit:   %s\n", a.commit)
				fmt.Fprintf(w, "  built:    %s\n", a.date)
				fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
			}
		},
	}
}
