package sternbrocot

// CFrac returns the continued fraction expansion [u_0; u_1, ..., u_k] of f,
// one coefficient per depth, K()+1 in all. The expansion is canonical: the
// last coefficient is at least 2 except for integers and 1/1. The infinite
// fraction 1/0 has no expansion and yields nil.
//
// The coefficients are recovered from the chain of convergents of f, which
// are all ascendants of f and reachable in O(K) link steps; each
// coefficient is then one exact division via the recurrence
// p_i = u_i*p_{i-1} + p_{i-2}.
func (f Fraction[T]) CFrac() []int64 {
	t := f.tree
	r := t.ring
	if f.n == t.oneOverZero {
		return nil
	}

	k := f.n.k

	// conv[i+2] is the convergent of f at depth i; depths -1 and -2 are
	// the formal convergents 1/0 and 0/1.
	conv := make([]*node[T], k+3)
	conv[0] = t.zeroOverOne
	conv[1] = t.oneOverZero
	conv[k+2] = f.n
	c := f.n
	for i := k + 1; i >= 2; i-- {
		if i == k+1 {
			c = t.previousPartialNode(c)
		} else if t.cmpValue(f.n.p, f.n.q, c) < 0 {
			c = c.ascendantLeft
		} else {
			c = c.ascendantRight
		}
		conv[i] = c
	}

	us := make([]int64, k+1)
	for i := int64(0); i <= k; i++ {
		hi, mid, lo := conv[i+2], conv[i+1], conv[i]
		if r.Sign(mid.p) != 0 {
			us[i] = r.Int64(r.Quo(r.Sub(hi.p, lo.p), mid.p))
		} else {
			// mid is 0/1; divide the denominator recurrence instead.
			us[i] = r.Int64(r.Quo(r.Sub(hi.q, lo.q), mid.q))
		}
	}
	return us
}
