package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ConvergentsOptions holds flags for the convergents command.
type ConvergentsOptions struct {
	*RootOptions
}

// Convergent is one entry of the convergents listing.
type Convergent struct {
	Depth    int64  `json:"depth"`
	Fraction string `json:"fraction"`
}

// ConvergentsResult holds the convergents output.
type ConvergentsResult struct {
	Fraction    string       `json:"fraction"`
	Convergents []Convergent `json:"convergents"`
}

// NewConvergentsCommand creates the convergents command.
func NewConvergentsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvergentsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convergents P/Q",
		Short: "Convergents of P/Q, one per depth",
		Long: `List the convergents of an irreducible fraction from depth 0 up to
the fraction itself. Each convergent is the best rational
approximation among fractions of at most its depth.

Examples:
  sbt convergents 8/5
  sbt convergents 355/113 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvergents(opts, cmd, args[0])
		},
	}

	return cmd
}

func runConvergents(opts *ConvergentsOptions, cmd *cobra.Command, arg string) error {
	f, err := parseFraction(arg)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad fraction", err)
	}

	result := ConvergentsResult{Fraction: f.String()}
	for i := int64(0); i <= f.K(); i++ {
		result.Convergents = append(result.Convergents, Convergent{
			Depth:    i,
			Fraction: f.Partial(i).String(),
		})
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.SuccessJSON(result)
	}

	for _, c := range result.Convergents {
		fmt.Fprintf(out.Writer, "%d: %s\n", c.Depth, c.Fraction)
	}
	return nil
}
