package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SplitOptions holds flags for the split command.
type SplitOptions struct {
	*RootOptions
	Berstel bool
}

// SplitPart is one side of a split.
type SplitPart struct {
	Fraction     string `json:"fraction"`
	Multiplicity int64  `json:"multiplicity"`
}

// SplitResult holds the split output.
type SplitResult struct {
	Fraction string    `json:"fraction"`
	Berstel  bool      `json:"berstel"`
	Lower    SplitPart `json:"lower"`
	Upper    SplitPart `json:"upper"`
}

// NewSplitCommand creates the split command.
func NewSplitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SplitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "split P/Q",
		Short: "Split P/Q into its bracketing pair",
		Long: `Split an irreducible fraction into the adjacent pair f1 < P/Q < f2
whose mediant it is. With --berstel the pair is the Berstel
decomposition instead: two convergents with multiplicities whose
weighted mediant is P/Q.

The roots 0/1 and 1/0 cannot be split.

Examples:
  sbt split 5/3
  sbt split 5/3 --berstel --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(opts, cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.Berstel, "berstel", false, "use the Berstel decomposition")

	return cmd
}

func runSplit(opts *SplitOptions, cmd *cobra.Command, arg string) error {
	f, err := parseFraction(arg)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad fraction", err)
	}
	if f.Equals(bigInt(0), bigInt(1)) || f.Equals(bigInt(1), bigInt(0)) {
		return WrapExitError(ExitCommandError, "cannot split a root", fmt.Errorf("%s has no ascendant pair", f))
	}

	result := SplitResult{Fraction: f.String(), Berstel: opts.Berstel}
	if opts.Berstel {
		f1, nb1, f2, nb2 := f.SplitBerstel()
		result.Lower = SplitPart{Fraction: f1.String(), Multiplicity: nb1}
		result.Upper = SplitPart{Fraction: f2.String(), Multiplicity: nb2}
	} else {
		f1, f2 := f.Split()
		result.Lower = SplitPart{Fraction: f1.String(), Multiplicity: 1}
		result.Upper = SplitPart{Fraction: f2.String(), Multiplicity: 1}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.SuccessJSON(result)
	}

	fmt.Fprintf(out.Writer, "%s = %dx%s + %dx%s\n",
		result.Fraction,
		result.Lower.Multiplicity, result.Lower.Fraction,
		result.Upper.Multiplicity, result.Upper.Fraction)
	return nil
}
