// Package classify provides the command that explains how individual
// repeat strings are classified.
package classify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tolkit/cladegen/internal/appcontext"
	"github.com/tolkit/cladegen/internal/cmd/output"
	"github.com/tolkit/cladegen/pkg/telomere"
)

// Result is the classification of one repeat.
type Result struct {
	Clade   string `json:"clade,omitempty" yaml:"clade,omitempty"`
	Repeat  string `json:"repeat" yaml:"repeat"`
	Verdict string `json:"verdict" yaml:"verdict"`
	Period  string `json:"period,omitempty" yaml:"period,omitempty"`
	Keep    bool   `json:"keep" yaml:"keep"`
}

// NewResult classifies repeat.
func NewResult(clade, repeat string) Result {
	v := telomere.Classify(repeat)
	period, _ := telomere.PrincipalPeriod(repeat)
	if period == repeat {
		period = ""
	}
	return Result{
		Clade:   clade,
		Repeat:  repeat,
		Verdict: v.String(),
		Period:  period,
		Keep:    v.Keep(),
	}
}

// NewCommand creates the classify command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		fromSource bool
		input      string
	)

	cmd := &cobra.Command{
		Use:     "classify [repeat...]",
		GroupID: "inspect",
		Short:   "Classify telomeric repeat strings",
		Long: `Classify reports whether each repeat would be kept in the lookup table.

A repeat is kept when it is primitive (not a whole-number tiling of a
shorter unit) and not a run of a single base. With --source every
repeat of the curated table is classified instead.`,
		Example: `  cladegen classify TTAGG TTAGGTTAGG TTTT
  cladegen classify --source --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []Result
			if fromSource {
				obs, err := app.ReadSource(cmd.Context(), input)
				if err != nil {
					return err
				}
				for _, o := range obs {
					if o.Present {
						results = append(results, NewResult(o.Clade, o.Repeat))
					}
				}
			} else {
				if len(args) == 0 {
					return cmd.Help()
				}
				for _, r := range args {
					results = append(results, NewResult("", r))
				}
			}

			format := output.DetectFormat(app.OutputFormat())
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), results)
			}
			return printResults(cmd.OutOrStdout(), results, app.NoColor())
		},
	}

	cmd.Flags().BoolVar(&fromSource, "source", false, "classify every repeat of the curated source table")
	cmd.Flags().StringVarP(&input, "input", "i", "", "curated source table used with --source (default from config)")

	return cmd
}

// printResults writes one line per result, colored green when kept and red otherwise.
func printResults(w io.Writer, results []Result, noColor bool) error {
	keep := color.New(color.FgGreen, color.Bold)
	drop := color.New(color.FgRed)
	if noColor {
		keep.DisableColor()
		drop.DisableColor()
	}

	for _, r := range results {
		mark := keep.Sprint("keep")
		if !r.Keep {
			mark = drop.Sprint("drop")
		}

		line := r.Repeat
		if r.Clade != "" {
			line = r.Clade + "\t" + line
		}
		line += "\t" + r.Verdict
		if r.Period != "" {
			line += " of " + r.Period
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\n", mark, line); err != nil {
			return err
		}
	}
	return nil
}
