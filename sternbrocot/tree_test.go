package sternbrocot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInt64Tree() *Tree[int64] {
	return NewTree[int64](Int64Ring{})
}

func TestNewTreeSeeds(t *testing.T) {
	tr := newInt64Tree()

	assert.Equal(t, int64(4), tr.NbFractions())

	z := tr.ZeroOverOne()
	assert.True(t, z.Equals(0, 1))
	assert.Equal(t, int64(0), z.K())

	o := tr.OneOverZero()
	assert.True(t, o.Equals(1, 0))
	assert.Equal(t, int64(0), o.K())

	one := tr.OneOverOne()
	assert.True(t, one.Equals(1, 1))
	assert.Equal(t, int64(1), one.K())
	assert.Equal(t, int64(1), one.U())

	assert.True(t, tr.NullFraction().Null())
	assert.False(t, one.Null())

	assert.True(t, tr.IsValid())
	tr.Fraction(5, 3)
	assert.True(t, tr.IsValid())
}

func TestFraction(t *testing.T) {
	type want struct {
		u, k int64
	}
	tests := []struct {
		name string
		p, q int64
		want want
	}{
		{"2/1 is [2]", 2, 1, want{2, 0}},
		{"3/1 is [3]", 3, 1, want{3, 0}},
		{"1/2 is [0;2]", 1, 2, want{2, 1}},
		{"1/3 is [0;3]", 1, 3, want{3, 1}},
		{"3/2 is [1;2]", 3, 2, want{2, 1}},
		{"2/3 is [0;1,2]", 2, 3, want{2, 2}},
		{"3/4 is [0;1,3]", 3, 4, want{3, 2}},
		{"5/3 is [1;1,2]", 5, 3, want{2, 2}},
		{"8/5 is [1;1,1,2]", 8, 5, want{2, 3}},
		{"3/5 is [0;1,1,2]", 3, 5, want{2, 3}},
		{"13/8 is [1;1,1,1,2]", 13, 8, want{2, 4}},
		{"7/2 is [3;2]", 7, 2, want{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newInt64Tree()
			f := tr.Fraction(tt.p, tt.q)
			if !f.Equals(tt.p, tt.q) {
				t.Errorf("Fraction() = %v, want %d/%d", f, tt.p, tt.q)
			}
			if f.U() != tt.want.u || f.K() != tt.want.k {
				t.Errorf("Fraction() u,k = %d,%d, want %d,%d", f.U(), f.K(), tt.want.u, tt.want.k)
			}
		})
	}
}

func TestFractionPanics(t *testing.T) {
	tests := []struct {
		name string
		p, q int64
	}{
		{"not irreducible", 4, 2},
		{"negative numerator", -1, 2},
		{"negative denominator", 1, -2},
		{"zero over zero", 0, 0},
		{"reducible zero", 0, 5},
		{"reducible infinity", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newInt64Tree()
			assert.Panics(t, func() { tr.Fraction(tt.p, tt.q) })
		})
	}
}

func TestFractionIdempotent(t *testing.T) {
	tr := newInt64Tree()

	f := tr.Fraction(13, 8)
	nb := tr.NbFractions()
	g := tr.Fraction(13, 8)

	assert.True(t, f.Equal(g))
	assert.Equal(t, nb, tr.NbFractions())
}

func TestFractionNodeCount(t *testing.T) {
	tr := newInt64Tree()

	// The descent to 5/3 passes 2/1 and 3/2 on top of the four seeds.
	tr.Fraction(5, 3)
	assert.Equal(t, int64(7), tr.NbFractions())

	// 8/5 is the left child of 5/3, one more node.
	tr.Fraction(8, 5)
	assert.Equal(t, int64(8), tr.NbFractions())
}

func TestFractionWithAncestor(t *testing.T) {
	tr := newInt64Tree()
	f53 := tr.Fraction(5, 3)

	g := tr.Fraction(8, 5, f53)
	require.True(t, g.Equals(8, 5))
	assert.True(t, g.Father().Equal(f53))

	// The ancestor itself is a valid starting point for its own value.
	assert.True(t, tr.Fraction(5, 3, f53).Equal(f53))

	// 2/1 is above 5/3, not below it.
	assert.Panics(t, func() { tr.Fraction(2, 1, f53) })
}

func TestDefaultTree(t *testing.T) {
	tr := Default()
	require.Same(t, tr, Default())

	r := tr.Ring()
	f := tr.Fraction(r.FromInt64(5), r.FromInt64(3))
	assert.Equal(t, "5/3", f.String())
	assert.Equal(t, int64(2), f.K())
}

// Concurrent descents must agree on node identity and never double count.
func TestConcurrentConstruction(t *testing.T) {
	type pq struct{ p, q int64 }
	var targets []pq
	for p := int64(1); p <= 20; p++ {
		for q := int64(1); q <= 20; q++ {
			if (Int64Ring{}).GCD(p, q) == 1 {
				targets = append(targets, pq{p, q})
			}
		}
	}

	serial := newInt64Tree()
	for _, v := range targets {
		serial.Fraction(v.p, v.q)
	}

	tr := newInt64Tree()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, v := range targets {
				f := tr.Fraction(v.p, v.q)
				if !f.Equals(v.p, v.q) {
					t.Errorf("Fraction() = %v, want %d/%d", f, v.p, v.q)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, serial.NbFractions(), tr.NbFractions())

	for _, v := range targets {
		f := tr.Fraction(v.p, v.q)
		if !f.Equal(tr.Fraction(v.p, v.q)) {
			t.Fatalf("distinct nodes for %d/%d", v.p, v.q)
		}
	}
}
