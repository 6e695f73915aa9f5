package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// CFracOptions holds flags for the cfrac command.
type CFracOptions struct {
	*RootOptions
}

// CFracResult holds the cfrac output.
type CFracResult struct {
	Fraction     string  `json:"fraction"`
	Depth        int64   `json:"depth"`
	Coefficients []int64 `json:"coefficients,omitempty"`
}

// NewCFracCommand creates the cfrac command.
func NewCFracCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CFracOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cfrac P/Q",
		Short: "Continued fraction expansion of P/Q",
		Long: `Print the continued fraction expansion of an irreducible fraction.

The expansion is canonical: the last coefficient is at least 2 except
for integers and 1/1. The infinite fraction 1/0 has no expansion.

Examples:
  sbt cfrac 5/3
  sbt cfrac 355/113 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCFrac(opts, cmd, args[0])
		},
	}

	return cmd
}

func runCFrac(opts *CFracOptions, cmd *cobra.Command, arg string) error {
	f, err := parseFraction(arg)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad fraction", err)
	}
	slog.Debug("resolved fraction", "fraction", f.String(), "depth", f.K())

	result := CFracResult{
		Fraction:     f.String(),
		Depth:        f.K(),
		Coefficients: f.CFrac(),
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.SuccessJSON(result)
	}

	fmt.Fprintf(out.Writer, "%s = %s\n", result.Fraction, formatCFrac(result.Coefficients))
	return nil
}

// formatCFrac renders coefficients in the usual [u0;u1,...,uk] notation.
func formatCFrac(us []int64) string {
	if us == nil {
		return "<infinite>"
	}
	var sb strings.Builder
	for i, u := range us {
		switch i {
		case 0:
			fmt.Fprintf(&sb, "[%d", u)
		case 1:
			fmt.Fprintf(&sb, ";%d", u)
		default:
			fmt.Fprintf(&sb, ",%d", u)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
