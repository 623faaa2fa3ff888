// Package docs provides the command that writes a markdown reference of the
// curated clades.
package docs

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tolkit/cladegen/internal/appcontext"
	"github.com/tolkit/cladegen/internal/docs"
	"github.com/tolkit/cladegen/pkg/errors"
	"github.com/tolkit/cladegen/pkg/telomere"
)

// NewCommand creates the docs command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		input string
		out   string
		title string
	)

	cmd := &cobra.Command{
		Use:     "docs",
		GroupID: "inspect",
		Short:   "Write a markdown reference of the curated clades",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := app.Settings()
			if input == "" {
				input = settings.Input
			}

			obs, err := app.ReadSource(cmd.Context(), input)
			if err != nil {
				return err
			}

			page := docs.NewPage(filepath.Base(input), obs, telomere.AggregateOptions{SortClades: settings.SortClades})
			if title != "" {
				page.Title = title
			}

			if out == "" {
				return page.Write(cmd.OutOrStdout())
			}

			f, err := os.Create(out)
			if err != nil {
				return errors.WrapIO("create", out, err)
			}
			if err := page.Write(f); err != nil {
				_ = f.Close()
				return errors.WrapIO("write", out, err)
			}
			if err := f.Close(); err != nil {
				return errors.WrapIO("close", out, err)
			}

			app.Logger().Info().Str("file", out).Msg("Wrote clade reference")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "curated source table (default from config)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write markdown here instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "page title")

	return cmd
}
