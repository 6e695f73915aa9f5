package sternbrocot

import (
	"fmt"
	"io"
	"strings"
)

// String renders the value of f as "p/q", or "<null>" for the null
// fraction.
func (f Fraction[T]) String() string {
	if f.n == nil {
		return "<null>"
	}
	r := f.tree.ring
	return r.String(f.n.p) + "/" + r.String(f.n.q)
}

// SelfDisplay writes a one line description of f: its value, depth and
// continued fraction expansion.
func (f Fraction[T]) SelfDisplay(w io.Writer) error {
	if f.n == nil {
		_, err := fmt.Fprint(w, "<null>")
		return err
	}
	us := f.CFrac()
	if us == nil {
		_, err := fmt.Fprintf(w, "%s k=%d", f.String(), f.n.k)
		return err
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
	_, err := fmt.Fprintf(w, "%s k=%d %s", f.String(), f.n.k, sb.String())
	return err
}

// DrawTree writes the subtree rooted at f, down to maxDepth levels below
// it, one node per line with two space indentation per level. Children are
// materialized as needed, so drawing grows the tree.
func DrawTree[T any](w io.Writer, f Fraction[T], maxDepth int) error {
	return drawNode(w, f, 0, maxDepth)
}

func drawNode[T any](w io.Writer, f Fraction[T], depth, maxDepth int) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), f.String()); err != nil {
		return err
	}
	if depth == maxDepth {
		return nil
	}
	if err := drawNode(w, f.Left(), depth+1, maxDepth); err != nil {
		return err
	}
	return drawNode(w, f.Right(), depth+1, maxDepth)
}
