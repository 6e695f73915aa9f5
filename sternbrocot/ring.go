package sternbrocot

import (
	"math/big"
	"strconv"
)

// Ring supplies the integer arithmetic the tree performs on numerators and
// denominators. The embedding system fixes the integer type when it creates
// a Tree; the tree itself never assumes a width. Implementations must treat
// received values as immutable and return fresh values from the arithmetic
// methods.
type Ring[T any] interface {
	// FromInt64 converts a small constant. Only 0 and 1 are required by the
	// tree itself; the cli and tests use it for inputs.
	FromInt64(v int64) T

	// Int64 narrows a value known to be small (a partial quotient). The
	// result is unspecified if the value does not fit.
	Int64(a T) int64

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T

	// Quo is truncated integer division. The tree only divides exactly.
	Quo(a, b T) T

	Cmp(a, b T) int
	Sign(a T) int
	GCD(a, b T) T
	String(a T) string
}

// BigRing is the arbitrary-precision instantiation over *math/big.Int. This
// is the ring the shared Default tree uses.
type BigRing struct{}

func (BigRing) FromInt64(v int64) *big.Int   { return big.NewInt(v) }
func (BigRing) Int64(a *big.Int) int64       { return a.Int64() }
func (BigRing) Add(a, b *big.Int) *big.Int   { return new(big.Int).Add(a, b) }
func (BigRing) Sub(a, b *big.Int) *big.Int   { return new(big.Int).Sub(a, b) }
func (BigRing) Mul(a, b *big.Int) *big.Int   { return new(big.Int).Mul(a, b) }
func (BigRing) Quo(a, b *big.Int) *big.Int   { return new(big.Int).Quo(a, b) }
func (BigRing) Cmp(a, b *big.Int) int        { return a.Cmp(b) }
func (BigRing) Sign(a *big.Int) int          { return a.Sign() }
func (BigRing) GCD(a, b *big.Int) *big.Int   { return new(big.Int).GCD(nil, nil, a, b) }
func (BigRing) String(a *big.Int) string     { return a.String() }

// Int64Ring is a fixed-width instantiation for embedders whose inputs are
// known to be bounded. Overflow is the caller's problem, exactly as it is
// for any int64 arithmetic.
type Int64Ring struct{}

func (Int64Ring) FromInt64(v int64) int64 { return v }
func (Int64Ring) Int64(a int64) int64     { return a }
func (Int64Ring) Add(a, b int64) int64    { return a + b }
func (Int64Ring) Sub(a, b int64) int64    { return a - b }
func (Int64Ring) Mul(a, b int64) int64    { return a * b }
func (Int64Ring) Quo(a, b int64) int64    { return a / b }
func (Int64Ring) Sign(a int64) int {
	if a > 0 {
		return 1
	}
	if a < 0 {
		return -1
	}
	return 0
}

func (Int64Ring) Cmp(a, b int64) int {
	if a > b {
		return 1
	}
	if a < b {
		return -1
	}
	return 0
}

func (r Int64Ring) GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (Int64Ring) String(a int64) string {
	return strconv.FormatInt(a, 10)
}
