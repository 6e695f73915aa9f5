package sternbrocot

// Fraction is a handle on a node of a Tree. The zero value is the null
// fraction; every other handle is obtained from a Tree and stays valid for
// the lifetime of that tree. Handles are tiny and copied by value.
type Fraction[T any] struct {
	tree *Tree[T]
	n    *node[T]
}

// Null reports whether f is the invalid fraction.
func (f Fraction[T]) Null() bool { return f.n == nil }

// P returns the numerator. The returned value is shared with the tree and
// must not be mutated by the caller.
func (f Fraction[T]) P() T { return f.n.p }

// Q returns the denominator. Same sharing caveat as P.
func (f Fraction[T]) Q() T { return f.n.q }

// U returns the last coefficient of the stored continued fraction
// expansion of f.
func (f Fraction[T]) U() int64 { return f.n.u }

// K returns the depth of the expansion: the expansion of f has K()+1
// coefficients.
func (f Fraction[T]) K() int64 { return f.n.k }

// Even reports whether the depth K is even.
func (f Fraction[T]) Even() bool { return f.n.k%2 == 0 }

// Odd reports whether the depth K is odd.
func (f Fraction[T]) Odd() bool { return f.n.k%2 != 0 }

// Equal reports whether f and g designate the same node. Fractions are
// unique in a tree, so this is value equality for handles of one tree.
func (f Fraction[T]) Equal(g Fraction[T]) bool { return f.n == g.n }

// Equals reports whether f has the value p/q.
func (f Fraction[T]) Equals(p, q T) bool {
	r := f.tree.ring
	return r.Cmp(f.n.p, p) == 0 && r.Cmp(f.n.q, q) == 0
}

// LessThan reports whether f < p/q.
func (f Fraction[T]) LessThan(p, q T) bool {
	return f.tree.cmpValue(p, q, f.n) > 0
}

// MoreThan reports whether f > p/q.
func (f Fraction[T]) MoreThan(p, q T) bool {
	return f.tree.cmpValue(p, q, f.n) < 0
}

// Cmp orders f against g: -1 when f < g, 0 when equal, 1 when f > g.
func (f Fraction[T]) Cmp(g Fraction[T]) int {
	if f.n == g.n {
		return 0
	}
	return f.tree.cmpValue(f.n.p, f.n.q, g.n)
}

// Left returns the left child of f, the mediant of f and its left
// ascendant. The child is constructed on first use. The left root 0/1 has
// no left child and panics.
func (f Fraction[T]) Left() Fraction[T] {
	return Fraction[T]{tree: f.tree, n: f.tree.leftChild(f.n)}
}

// Right returns the right child of f. The right root 1/0 has no right
// child and panics.
func (f Fraction[T]) Right() Fraction[T] {
	return Fraction[T]{tree: f.tree, n: f.tree.rightChild(f.n)}
}

// Father returns the node f was constructed from: the ascendant with the
// larger sum p+q. The roots 0/1 and 1/0 have no father and yield the null
// fraction.
func (f Fraction[T]) Father() Fraction[T] {
	p := f.tree.fatherNode(f.n)
	if p == nil {
		return Fraction[T]{}
	}
	return Fraction[T]{tree: f.tree, n: p}
}

// FatherAt returns the ancestor whose expansion is that of f with the last
// coefficient lowered to m, 1 <= m <= U(). It walks U()-m fathers, so the
// cost is linear in the coefficient gap.
func (f Fraction[T]) FatherAt(m int64) Fraction[T] {
	if m < 1 || m > f.n.u {
		panic("sternbrocot: coefficient out of range")
	}
	g := f
	for i := f.n.u; i > m; i-- {
		g = g.Father()
	}
	return g
}

// PreviousPartial returns the convergent of f at depth K()-1: the ascendant
// with the smaller sum p+q.
func (f Fraction[T]) PreviousPartial() Fraction[T] {
	return Fraction[T]{tree: f.tree, n: f.tree.previousPartialNode(f.n)}
}

// Partial returns the convergent of f at depth kp, -2 <= kp <= K(). Depths
// -1 and -2 are the formal convergents 1/0 and 0/1.
func (f Fraction[T]) Partial(kp int64) Fraction[T] {
	t := f.tree
	if kp < -2 || kp > f.n.k {
		panic("sternbrocot: partial depth out of range")
	}
	switch kp {
	case -1:
		return Fraction[T]{tree: t, n: t.oneOverZero}
	case -2:
		return Fraction[T]{tree: t, n: t.zeroOverOne}
	}
	c := f.n
	for i := f.n.k; i > kp; i-- {
		if i == f.n.k {
			c = t.previousPartialNode(c)
			continue
		}
		// Consecutive convergents straddle f, so the next one down is
		// the ascendant of c on the same side of c as f.
		if t.cmpValue(f.n.p, f.n.q, c) < 0 {
			c = c.ascendantLeft
		} else {
			c = c.ascendantRight
		}
	}
	return Fraction[T]{tree: t, n: c}
}

// Reduced returns the convergent i depths above f, 0 <= i <= K()+2.
// Reduced(0) is f itself.
func (f Fraction[T]) Reduced(i int64) Fraction[T] {
	if i < 0 || i > f.n.k+2 {
		panic("sternbrocot: reduction depth out of range")
	}
	return f.Partial(f.n.k - i)
}

// Inverse returns q/p. The mirrored path is materialized on first use and
// the link is cached both ways, so repeated inversions are O(1).
func (f Fraction[T]) Inverse() Fraction[T] {
	if inv := f.n.inverse.Load(); inv != nil {
		return Fraction[T]{tree: f.tree, n: inv}
	}
	t := f.tree
	t.mu.Lock()
	defer t.mu.Unlock()
	return Fraction[T]{tree: t, n: t.inverseLocked(f.n)}
}

// Mediant returns the mediant (f.p+g.p)/(f.q+g.q) of two adjacent
// fractions. f and g must be linked as node and ascendant in the tree, the
// configuration in which the mediant is their child; any other pair panics.
func (f Fraction[T]) Mediant(g Fraction[T]) Fraction[T] {
	switch {
	case g.n == f.n.ascendantLeft:
		return f.Left()
	case g.n == f.n.ascendantRight:
		return f.Right()
	case f.n == g.n.ascendantLeft:
		return g.Left()
	case f.n == g.n.ascendantRight:
		return g.Right()
	}
	panic("sternbrocot: fractions are not adjacent")
}
