package sternbrocot

// Split returns the two ascendants f1 < f < f2 of f, the unique adjacent
// pair whose mediant is f. The roots 0/1 and 1/0 have no such pair and
// panic.
func (f Fraction[T]) Split() (f1, f2 Fraction[T]) {
	t := f.tree
	if f.n == t.zeroOverOne || f.n == t.oneOverZero {
		panic("sternbrocot: roots cannot be split")
	}
	f1 = Fraction[T]{tree: t, n: f.n.ascendantLeft}
	f2 = Fraction[T]{tree: t, n: f.n.ascendantRight}
	return f1, f2
}

// SplitBerstel returns the Berstel decomposition of f: the two convergents
// f1 < f < f2 and multiplicities such that nb1*f1 + nb2*f2, taken as a
// weighted mediant, is f. One of the convergents is the previous partial of
// f and carries multiplicity U(); the other carries multiplicity 1. When
// K() is even nb1 is the 1; when odd, nb2 is.
//
// Like Split, the roots panic.
func (f Fraction[T]) SplitBerstel() (f1 Fraction[T], nb1 int64, f2 Fraction[T], nb2 int64) {
	t := f.tree
	if f.n == t.zeroOverOne || f.n == t.oneOverZero {
		panic("sternbrocot: roots cannot be split")
	}
	c1 := t.previousPartialNode(f.n)
	var c2 *node[T]
	if t.cmpValue(f.n.p, f.n.q, c1) < 0 {
		c2 = c1.ascendantLeft
	} else {
		c2 = c1.ascendantRight
	}
	if t.cmpValue(c1.p, c1.q, f.n) < 0 {
		// c1 below f: it is the left part.
		return Fraction[T]{tree: t, n: c1}, f.n.u, Fraction[T]{tree: t, n: c2}, 1
	}
	return Fraction[T]{tree: t, n: c2}, 1, Fraction[T]{tree: t, n: c1}, f.n.u
}
