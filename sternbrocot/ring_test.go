package sternbrocot

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt64RingGCD(t *testing.T) {
	r := Int64Ring{}
	tests := []struct {
		name string
		a, b int64
		want int64
	}{
		{"coprime", 8, 5, 1},
		{"common factor", 12, 18, 6},
		{"zero left", 0, 7, 7},
		{"zero right", 7, 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.GCD(tt.a, tt.b); got != tt.want {
				t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestBigRing(t *testing.T) {
	r := BigRing{}

	a := r.FromInt64(355)
	b := r.FromInt64(113)
	assert.Equal(t, 0, r.Cmp(r.GCD(a, b), r.FromInt64(1)))

	assert.Equal(t, "468", r.String(r.Add(a, b)))
	assert.Equal(t, "242", r.String(r.Sub(a, b)))
	assert.Equal(t, int64(3), r.Int64(r.Quo(a, b)))
	assert.Equal(t, 1, r.Cmp(a, b))
	assert.Equal(t, -1, r.Sign(r.FromInt64(-4)))

	// Operations return fresh values and leave their operands alone.
	_ = r.Add(a, b)
	assert.Equal(t, big.NewInt(355), a)
}
