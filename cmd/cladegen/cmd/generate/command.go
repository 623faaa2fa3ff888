// Package generate provides the command that compiles the curated source
// table into a Go lookup table.
package generate

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tolkit/cladegen/internal/appcontext"
	"github.com/tolkit/cladegen/pkg/emitter"
	"github.com/tolkit/cladegen/pkg/errors"
	"github.com/tolkit/cladegen/pkg/logging"
	"github.com/tolkit/cladegen/pkg/telomere"
)

// filePermissions is used for files written by generate.
const filePermissions = 0o644

// Flags holds the generate command flags.
type Flags struct {
	Input      string
	Output     string
	Splice     string
	Package    string
	Standalone bool
	SortClades bool
}

// NewCommand creates the generate command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "core",
		Short:   "Generate the clade lookup table",
		Long: `Generate reads the curated source table, keeps the informative repeat
units of every clade and writes a gofmt-formatted Go file with the clade
name list and a Lookup function.

By default the file is written to stdout. With --splice the generated
declarations replace the region between the "// automated input start"
and "// automated input end" comments of an existing file.`,
		Example: `  cladegen generate --input curated.csv --output pkg/clades/table.go
  cladegen generate --standalone --package telomeres > telomeres.go
  cladegen generate --splice src/lib.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolve(cmd, app.Settings(), flags)
			return run(cmd, app, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.Input, "input", "i", "", "curated source table (default from config, ./curated.csv)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "write the generated file here instead of stdout")
	cmd.Flags().StringVar(&flags.Splice, "splice", "", "rewrite the marked region of this file in place")
	cmd.Flags().StringVar(&flags.Package, "package", "", "package clause of the generated file (default from config, clades)")
	cmd.Flags().BoolVar(&flags.Standalone, "standalone", false, "also emit the runtime types so the file compiles on its own")
	cmd.Flags().BoolVar(&flags.SortClades, "sort-clades", false, "order clades by name instead of first appearance")

	cmd.MarkFlagsMutuallyExclusive("output", "splice")
	cmd.MarkFlagsMutuallyExclusive("standalone", "splice")

	return cmd
}

// resolve fills unset flags from the configured settings.
func resolve(cmd *cobra.Command, settings appcontext.Settings, flags *Flags) {
	if flags.Input == "" {
		flags.Input = settings.Input
	}
	if flags.Package == "" {
		flags.Package = settings.Package
	}
	if !cmd.Flags().Changed("sort-clades") {
		flags.SortClades = settings.SortClades
	}
}

func run(cmd *cobra.Command, app appcontext.Interface, flags *Flags) error {
	ctx := logging.WithOperation(logging.WithSource(cmd.Context(), flags.Input), "generate")
	logger := logging.FromContext(ctx)

	obs, err := app.ReadSource(ctx, flags.Input)
	if err != nil {
		return err
	}

	entries := telomere.Build(ctx, obs, telomere.AggregateOptions{SortClades: flags.SortClades})

	em, err := emitter.New(emitter.Options{
		Package:    flags.Package,
		Source:     filepath.Base(flags.Input),
		Standalone: flags.Standalone,
		BodyOnly:   flags.Splice != "",
	})
	if err != nil {
		return err
	}

	out, err := em.Render(entries)
	if err != nil {
		return errors.WrapResource("emit", "table", flags.Input, err)
	}

	switch {
	case flags.Splice != "":
		if err := splice(flags.Splice, out); err != nil {
			return err
		}
		logger.Info().
			Str("file", flags.Splice).
			Int("clades", len(entries)).
			Msg("Spliced clade table")

	case flags.Output != "":
		if err := os.WriteFile(flags.Output, out, filePermissions); err != nil {
			return errors.WrapIO("write", flags.Output, err)
		}
		logger.Info().
			Str("file", flags.Output).
			Int("clades", len(entries)).
			Msg("Wrote clade table")

	default:
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return errors.WrapIO("write", "stdout", err)
		}
	}

	return nil
}

// splice rewrites the marked region of path with body.
func splice(path string, body []byte) error {
	dst, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}

	out, err := emitter.Splice(path, dst, body)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.WrapIO("stat", path, err)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
