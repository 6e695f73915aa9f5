package cli

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/forestrie/go-sternbrocot/sternbrocot"
)

var (
	// ErrBadFraction is returned for arguments that do not parse as P/Q.
	ErrBadFraction = errors.New("fraction must be P/Q with integer parts")

	// ErrNotIrreducible is returned when P/Q has a common factor.
	ErrNotIrreducible = errors.New("fraction is not irreducible")
)

func bigInt(v int64) *big.Int { return big.NewInt(v) }

// parseFraction resolves an argument of the form "P/Q" to its node in the
// shared tree. The parts must be non negative integers with no common
// factor; 1/0 is accepted.
func parseFraction(arg string) (sternbrocot.Fraction[*big.Int], error) {
	var null sternbrocot.Fraction[*big.Int]

	num, den, ok := strings.Cut(arg, "/")
	if !ok {
		return null, fmt.Errorf("%w: %q", ErrBadFraction, arg)
	}
	p, ok := new(big.Int).SetString(num, 10)
	if !ok || p.Sign() < 0 {
		return null, fmt.Errorf("%w: %q", ErrBadFraction, arg)
	}
	q, ok := new(big.Int).SetString(den, 10)
	if !ok || q.Sign() < 0 {
		return null, fmt.Errorf("%w: %q", ErrBadFraction, arg)
	}
	if p.Sign() == 0 && q.Sign() == 0 {
		return null, fmt.Errorf("%w: %q", ErrBadFraction, arg)
	}
	one := big.NewInt(1)
	switch {
	case p.Sign() == 0:
		if q.Cmp(one) != 0 {
			return null, fmt.Errorf("%w: %q", ErrNotIrreducible, arg)
		}
	case q.Sign() == 0:
		if p.Cmp(one) != 0 {
			return null, fmt.Errorf("%w: %q", ErrNotIrreducible, arg)
		}
	default:
		if g := new(big.Int).GCD(nil, nil, p, q); g.Cmp(one) != 0 {
			return null, fmt.Errorf("%w: %q has factor %s", ErrNotIrreducible, arg, g)
		}
	}
	return sternbrocot.Default().Fraction(p, q), nil
}
