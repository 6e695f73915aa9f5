package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-sternbrocot/sternbrocot"
)

// TreeOptions holds flags for the tree command.
type TreeOptions struct {
	*RootOptions
	Root  string
	Depth int
}

// TreeResult holds the tree output.
type TreeResult struct {
	Root  string   `json:"root"`
	Depth int      `json:"depth"`
	Lines []string `json:"lines"`
}

// NewTreeCommand creates the tree command.
func NewTreeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TreeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw a subtree of mediants",
		Long: `Draw the subtree of fractions below a root, each child the mediant of
its parent and one ascendant.

Examples:
  sbt tree --depth 3
  sbt tree --root 5/3 --depth 2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", "1/1", "fraction to draw from")
	cmd.Flags().IntVar(&opts.Depth, "depth", 3, "levels to draw below the root")

	return cmd
}

func runTree(opts *TreeOptions, cmd *cobra.Command) error {
	f, err := parseFraction(opts.Root)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad fraction", err)
	}
	if opts.Depth < 0 {
		return WrapExitError(ExitCommandError, "bad depth", fmt.Errorf("depth %d is negative", opts.Depth))
	}
	if opts.Depth > 0 && (f.Equals(bigInt(0), bigInt(1)) || f.Equals(bigInt(1), bigInt(0))) {
		return WrapExitError(ExitCommandError, "cannot draw below a root of the whole tree", fmt.Errorf("%s has a single child", f))
	}

	var sb strings.Builder
	if err := sternbrocot.DrawTree(&sb, f, opts.Depth); err != nil {
		return WrapExitError(ExitFailure, "draw failed", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
		return out.SuccessJSON(TreeResult{Root: f.String(), Depth: opts.Depth, Lines: lines})
	}

	fmt.Fprint(out.Writer, sb.String())
	return nil
}
