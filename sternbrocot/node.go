package sternbrocot

import "sync/atomic"

// node is one irreducible fraction record. p, q, u, k and the two ascendant
// links are fixed at construction and never change; the descendant and
// inverse links start nil and are populated at most once, under the tree
// lock, through the atomic pointers. Readers therefore never block: a nil
// load means "not materialized yet", a non-nil load is a fully constructed,
// immutable-for-reading node.
type node[T any] struct {
	// p/q is the value; coprime, both >= 0, never both 0.
	p T
	q T

	// u is the last coefficient of the stored continued fraction
	// expansion, k the index of that coefficient (the expansion has k+1
	// entries). k is -1 on the virtual ancestor only.
	u int64
	k int64

	// ascendantLeft < node < ascendantRight; their mediant is this node.
	// The one with the larger p+q is the construction parent.
	ascendantLeft  *node[T]
	ascendantRight *node[T]

	descendantLeft  atomic.Pointer[node[T]]
	descendantRight atomic.Pointer[node[T]]

	inverse atomic.Pointer[node[T]]
}
