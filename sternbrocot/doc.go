package sternbrocot

/*

# The Stern-Brocot tree

The Stern-Brocot tree is the infinite binary tree which enumerates every
irreducible fraction exactly once. It is generated from the two boundary
fractions 0/1 and 1/0 by repeated mediant combination: the mediant of p1/q1
and p2/q2 is (p1+p2)/(q1+q2), and every node of the tree is the mediant of
the two fractions that bracket it from above.

	              1/1
	          /         \
	      1/2             2/1
	     /   \           /   \
	  1/3     2/3     3/2     3/1
	  / \     / \     / \     / \
	1/4 2/5 3/5 3/4 4/3 5/3 5/2 4/1

The tree is a coding of continued fractions: the left/right run lengths on
the path from the root 1/1 to p/q are, up to an off-by-one on the last run,
the partial quotients [u0,u1,...,uk] of p/q. That correspondence is what
makes the structure useful to digital geometry: the combinatorics of a
digital straight segment of slope p/q are governed by the continued
fraction of p/q, and the splitting formulas (plain and Berstel) read those
combinatorics directly off stored tree links in O(1).

This package builds the tree progressively and shares it: there is exactly
one node per reachable fraction, constructed the first time a descent
passes through it and never destroyed or renumbered afterwards. A Fraction
is a copyable handle onto such a node.

# Structure of a node

Each node records its value p/q, the last partial quotient u, the depth k
(the index of the last coefficient, so the expansion has k+1 entries), and
five links:

  - ascendantLeft, ascendantRight: the bracketing pair whose mediant the
    node is. ascendantLeft < node < ascendantRight always. Exactly one of
    the two is the node's construction parent (the one with the larger
    p+q); the other is a more distant ancestor.
  - descendantLeft, descendantRight: the two children, nil until first
    requested. descendantLeft is the mediant with ascendantLeft,
    descendantRight the mediant with ascendantRight.
  - inverse: the node for q/p, populated lazily and kept involutive.

Four fixed nodes seed the structure: a virtual ancestor (which exists only
so the two roots have a full complement of links), 0/1, 1/0 and their
mediant 1/1. The seeds give 1/1 the even-length expansion [0;1], hence
depth 1; every value strictly between the roots then receives its canonical
expansion (last coefficient at least 2).

# Navigation identities

All navigation is link arithmetic on already-stored structure:

  - father (undo one construction step, [u0..uk] -> [u0..uk-1]) is the
    ascendant with the larger p+q.
  - previousPartial ([u0..uk] -> [u0..u{k-1}], the previous convergent) is
    the ascendant with the smaller p+q.
  - from any convergent of a target value, the next convergent down is its
    ascendant on the same side as the target, because consecutive
    convergents straddle the value they approximate. This one comparison
    per step drives the O(k) coefficient extraction and the O(1) Berstel
    split without ever re-running the Euclidean algorithm.

As with any low-level navigation api of this kind, a burden of knowledge is
placed on the caller in the interests of efficiency: asking for the left
descendant of 0/1, splitting a root, or descending from a node that is not
an ancestor of the target are contract violations, not recoverable errors.

# Costs

Constructing p/q from an ancestor is bounded by twice the sum of the
partial quotients of p/q relative to that ancestor: cheap for the small
quotients typical of digital-geometry inputs, linear in the numerator for
pathological ones such as n/1, and worst-per-bit for consecutive Fibonacci
numbers. Once a node exists, the handle operations are O(1) except where
documented otherwise (FatherAt, Partial, Reduced, CFrac).

References:

  - Graham, Knuth, Patashnik, Concrete Mathematics, 4.5 (the Stern-Brocot
    representation of rationals)
  - https://en.wikipedia.org/wiki/Stern%E2%80%93Brocot_tree
  - Berstel, Lauve, Reutenauer, Saliola, Combinatorics on Words:
    Christoffel Words and Repetitions in Words (the standard factorization
    behind the Berstel split)
*/
