package sternbrocot

import (
	"math/big"
	"sync"
	"sync/atomic"
)

// Tree is a shared store of Stern-Brocot nodes over the integer type T.
// Nodes are created on demand and never discarded, so every fraction has
// exactly one node for the lifetime of the tree and handles obtained from
// different call sites compare by pointer identity.
//
// All construction is serialized by a single mutex; reads of already
// materialized structure are lock free.
type Tree[T any] struct {
	ring Ring[T]

	mu sync.Mutex
	nb atomic.Int64

	// virtual is the 0/1-valued ancestor with k == -1 that seeds the
	// descent; it is not reachable through navigation.
	virtual     *node[T]
	zeroOverOne *node[T]
	oneOverZero *node[T]
	oneOverOne  *node[T]
}

// NewTree creates an empty tree seeded with 0/1, 1/0 and 1/1 plus the
// virtual ancestor. The seeds carry their conventional expansions: 0/1 and
// 1/0 store [0] and 1/1 stores [0;1], so K of 1/1 is 1.
func NewTree[T any](ring Ring[T]) *Tree[T] {
	t := &Tree[T]{ring: ring}

	t.virtual = &node[T]{p: ring.FromInt64(0), q: ring.FromInt64(1), u: 0, k: -1}
	t.zeroOverOne = &node[T]{p: ring.FromInt64(0), q: ring.FromInt64(1), u: 0, k: 0}
	t.oneOverZero = &node[T]{p: ring.FromInt64(1), q: ring.FromInt64(0), u: 0, k: 0}
	t.oneOverOne = &node[T]{p: ring.FromInt64(1), q: ring.FromInt64(1), u: 1, k: 1}

	t.zeroOverOne.ascendantLeft = t.virtual
	t.zeroOverOne.ascendantRight = t.oneOverZero
	t.oneOverZero.ascendantLeft = t.zeroOverOne
	t.oneOverZero.ascendantRight = t.virtual
	t.oneOverOne.ascendantLeft = t.zeroOverOne
	t.oneOverOne.ascendantRight = t.oneOverZero

	t.zeroOverOne.descendantRight.Store(t.oneOverOne)
	t.oneOverZero.descendantLeft.Store(t.oneOverOne)

	t.zeroOverOne.inverse.Store(t.oneOverZero)
	t.oneOverZero.inverse.Store(t.zeroOverOne)
	t.oneOverOne.inverse.Store(t.oneOverOne)
	t.virtual.inverse.Store(t.oneOverZero)

	t.nb.Store(4)
	return t
}

var (
	defaultOnce sync.Once
	defaultTree *Tree[*big.Int]
)

// Default returns the process wide tree over *big.Int. Nodes accumulate in
// it for the lifetime of the process.
func Default() *Tree[*big.Int] {
	defaultOnce.Do(func() {
		defaultTree = NewTree[*big.Int](BigRing{})
	})
	return defaultTree
}

// Ring returns the integer operations the tree was created with.
func (t *Tree[T]) Ring() Ring[T] { return t.ring }

// NbFractions reports how many nodes the tree holds, the virtual ancestor
// included. The count only ever grows.
func (t *Tree[T]) NbFractions() int64 { return t.nb.Load() }

// IsValid checks the seed wiring: root values, the depth conventions of the
// virtual ancestor and of 1/1, the bracketing of 1/1 by the roots and the
// closure of the seed inverse links. A cheap diagnostic for embedders.
func (t *Tree[T]) IsValid() bool {
	r := t.ring
	one := r.FromInt64(1)
	switch {
	case t.virtual.k != -1:
		return false
	case r.Sign(t.zeroOverOne.p) != 0 || r.Cmp(t.zeroOverOne.q, one) != 0:
		return false
	case r.Cmp(t.oneOverZero.p, one) != 0 || r.Sign(t.oneOverZero.q) != 0:
		return false
	case t.oneOverOne.u != 1 || t.oneOverOne.k != 1:
		return false
	case t.oneOverOne.ascendantLeft != t.zeroOverOne || t.oneOverOne.ascendantRight != t.oneOverZero:
		return false
	case t.zeroOverOne.inverse.Load() != t.oneOverZero || t.oneOverZero.inverse.Load() != t.zeroOverOne:
		return false
	case t.oneOverOne.inverse.Load() != t.oneOverOne:
		return false
	case t.nb.Load() < 4:
		return false
	}
	return true
}

// ZeroOverOne returns the handle for 0/1.
func (t *Tree[T]) ZeroOverOne() Fraction[T] { return Fraction[T]{tree: t, n: t.zeroOverOne} }

// OneOverZero returns the handle for 1/0, the right root of the tree.
func (t *Tree[T]) OneOverZero() Fraction[T] { return Fraction[T]{tree: t, n: t.oneOverZero} }

// OneOverOne returns the handle for 1/1.
func (t *Tree[T]) OneOverOne() Fraction[T] { return Fraction[T]{tree: t, n: t.oneOverOne} }

// NullFraction returns the invalid handle. It is the result of taking the
// father of a root and the zero value of Fraction.
func (t *Tree[T]) NullFraction() Fraction[T] { return Fraction[T]{} }

// Fraction returns the handle for p/q, materializing the path to it if
// needed. p and q must be non negative and coprime, and not both zero, or
// Fraction panics: the burden of reducing is on the caller.
//
// An optional ancestor starts the descent below that node instead of at the
// roots. The ancestor must actually be an ancestor of p/q in the tree, which
// Fraction checks in O(1) before descending; a non-ancestor panics.
func (t *Tree[T]) Fraction(p, q T, ancestor ...Fraction[T]) Fraction[T] {
	r := t.ring
	if r.Sign(p) < 0 || r.Sign(q) < 0 {
		panic("sternbrocot: negative numerator or denominator")
	}
	if r.Sign(p) == 0 && r.Sign(q) == 0 {
		panic("sternbrocot: 0/0 is not a fraction")
	}
	if r.Sign(p) != 0 && r.Sign(q) != 0 {
		if g := r.GCD(p, q); r.Cmp(g, r.FromInt64(1)) != 0 {
			panic("sternbrocot: fraction is not irreducible")
		}
	}

	one := r.FromInt64(1)
	if r.Sign(p) == 0 {
		if r.Cmp(q, one) != 0 {
			panic("sternbrocot: fraction is not irreducible")
		}
		return t.ZeroOverOne()
	}
	if r.Sign(q) == 0 {
		if r.Cmp(p, one) != 0 {
			panic("sternbrocot: fraction is not irreducible")
		}
		return t.OneOverZero()
	}
	if r.Cmp(p, q) == 0 {
		return t.OneOverOne()
	}

	start := t.oneOverOne
	if len(ancestor) > 0 && ancestor[0].n != nil {
		a := ancestor[0].n
		if !t.strictlyInside(p, q, a) {
			panic("sternbrocot: given fraction is not an ancestor")
		}
		start = a
	}

	z := start
	for {
		c := t.cmpValue(p, q, z)
		switch {
		case c == 0:
			return Fraction[T]{tree: t, n: z}
		case c < 0:
			z = t.leftChild(z)
		default:
			z = t.rightChild(z)
		}
	}
}

// strictlyInside reports whether p/q lies strictly between a's ascendants,
// i.e. whether a is an ancestor of p/q (a itself included via its own
// mediant position). Virtual bounds are open ended on their side.
func (t *Tree[T]) strictlyInside(p, q T, a *node[T]) bool {
	if a == t.virtual {
		return true
	}
	if l := a.ascendantLeft; l != t.virtual {
		// p/q > l.p/l.q  <=>  p*l.q - q*l.p > 0
		if t.cmpValue(p, q, l) <= 0 {
			return false
		}
	}
	if rn := a.ascendantRight; rn != t.virtual {
		if t.cmpValue(p, q, rn) >= 0 {
			return false
		}
	}
	return true
}

// cmpValue compares p/q against the value of z by cross multiplication.
func (t *Tree[T]) cmpValue(p, q T, z *node[T]) int {
	r := t.ring
	return r.Sign(r.Sub(r.Mul(p, z.q), r.Mul(q, z.p)))
}

// previousPartialNode returns the ascendant that is the (k-1)-convergent of
// z: the one with the smaller p+q. At 1/1 both sums tie and the left
// ascendant 0/1 is the convergent.
func (t *Tree[T]) previousPartialNode(z *node[T]) *node[T] {
	r := t.ring
	sl := r.Add(z.ascendantLeft.p, z.ascendantLeft.q)
	sr := r.Add(z.ascendantRight.p, z.ascendantRight.q)
	if r.Cmp(sl, sr) <= 0 {
		return z.ascendantLeft
	}
	return z.ascendantRight
}

// fatherNode returns the construction parent of z: the ascendant with the
// larger p+q. For the roots 0/1 and 1/0 it returns nil.
func (t *Tree[T]) fatherNode(z *node[T]) *node[T] {
	if z == t.zeroOverOne || z == t.oneOverZero {
		return nil
	}
	r := t.ring
	sl := r.Add(z.ascendantLeft.p, z.ascendantLeft.q)
	sr := r.Add(z.ascendantRight.p, z.ascendantRight.q)
	if r.Cmp(sl, sr) >= 0 {
		return z.ascendantLeft
	}
	return z.ascendantRight
}

// leftChild returns the left descendant of z, constructing it under the
// lock if this is the first visit.
func (t *Tree[T]) leftChild(z *node[T]) *node[T] {
	if c := z.descendantLeft.Load(); c != nil {
		return c
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.leftChildLocked(z)
}

// rightChild is the right hand twin of leftChild.
func (t *Tree[T]) rightChild(z *node[T]) *node[T] {
	if c := z.descendantRight.Load(); c != nil {
		return c
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rightChildLocked(z)
}

func (t *Tree[T]) leftChildLocked(z *node[T]) *node[T] {
	if c := z.descendantLeft.Load(); c != nil {
		return c
	}
	if z.ascendantLeft == t.virtual {
		panic("sternbrocot: 0/1 has no left child")
	}
	c := t.newChild(z, z.ascendantLeft)
	c.ascendantLeft = z.ascendantLeft
	c.ascendantRight = z
	z.descendantLeft.Store(c)
	return c
}

func (t *Tree[T]) rightChildLocked(z *node[T]) *node[T] {
	if c := z.descendantRight.Load(); c != nil {
		return c
	}
	if z.ascendantRight == t.virtual {
		panic("sternbrocot: 1/0 has no right child")
	}
	c := t.newChild(z, z.ascendantRight)
	c.ascendantLeft = z
	c.ascendantRight = z.ascendantRight
	z.descendantRight.Store(c)
	return c
}

// newChild allocates the mediant of z and the ascendant a (the ascendant
// the child keeps, i.e. the one on the side we descend towards).
//
// The child's expansion follows from which ascendant we combine with: if a
// is the (k-1)-convergent of z the child continues z's last run and stores
// (u+1, k); otherwise the path switches direction and a fresh coefficient 2
// at depth k+1 is stored. The single exception is the right child of 1/1,
// 2/1, whose expansion [2] restarts at depth 0.
func (t *Tree[T]) newChild(z, a *node[T]) *node[T] {
	r := t.ring
	c := &node[T]{
		p: r.Add(z.p, a.p),
		q: r.Add(z.q, a.q),
	}
	switch {
	case z == t.oneOverOne && a == t.oneOverZero:
		c.u, c.k = 2, 0
	case a == t.previousPartialNode(z):
		c.u, c.k = z.u+1, z.k
	default:
		c.u, c.k = 2, z.k+1
	}
	t.nb.Add(1)
	return c
}

// inverseLocked returns q/p for the node with value p/q, constructing the
// path to it if needed and wiring the inverse links both ways. Must hold
// t.mu.
func (t *Tree[T]) inverseLocked(z *node[T]) *node[T] {
	if inv := z.inverse.Load(); inv != nil {
		return inv
	}
	// The inverse of a node is the mirrored child of its father's
	// inverse. Seeds all carry their inverse from construction, so the
	// recursion bottoms out.
	parent := t.fatherNode(z)
	pinv := t.inverseLocked(parent)
	var inv *node[T]
	if parent.descendantLeft.Load() == z {
		inv = t.rightChildLocked(pinv)
	} else {
		inv = t.leftChildLocked(pinv)
	}
	z.inverse.Store(inv)
	inv.inverse.Store(z)
	return inv
}
