package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InverseOptions holds flags for the inverse command.
type InverseOptions struct {
	*RootOptions
}

// InverseResult holds the inverse output.
type InverseResult struct {
	Fraction string `json:"fraction"`
	Inverse  string `json:"inverse"`
	Depth    int64  `json:"depth"`
}

// NewInverseCommand creates the inverse command.
func NewInverseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InverseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "inverse P/Q",
		Short: "Multiplicative inverse Q/P",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInverse(opts, cmd, args[0])
		},
	}

	return cmd
}

func runInverse(opts *InverseOptions, cmd *cobra.Command, arg string) error {
	f, err := parseFraction(arg)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad fraction", err)
	}

	inv := f.Inverse()
	result := InverseResult{
		Fraction: f.String(),
		Inverse:  inv.String(),
		Depth:    inv.K(),
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.SuccessJSON(result)
	}

	fmt.Fprintf(out.Writer, "%s\n", result.Inverse)
	return nil
}
