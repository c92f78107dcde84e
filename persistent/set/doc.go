/*
Package set implements persistent (immutable) ordered sets as size-balanced binary
search trees.

Every node caches the size of its subtree. Sizes give O(1) cardinality, O(log n)
access by rank, and keep the tree balanced: for every node, neither subtree holds
more than three times the keys of its sibling (a weight-balanced tree in the style
of Adams). Operations never modify a tree in place. "Modifications" return a new
incarnation of the set, sharing every subtree the operation did not touch with the
original, so old versions remain valid and cheap to keep.

Usage

    s := set.Of(5, 3, 1)              // natural order for ordered types
    s = s.Insert(4).Delete(1)         // s is now {3, 4, 5}; the earlier versions are unchanged
    lt, gt := s.Split(4)              // {3} and {5}
    u := lt.Union(gt)                 // {3, 5}

Sets of keys without a natural order are created with ImmutableFunc and an
explicit ordering. Set algebra (Union, Intersection, Difference) is implemented by
divide and conquer: the larger tree is split at keys of the smaller one, giving a
cost of O(m·log(n/m + 1)) for sets of sizes m ≤ n, and subtrees shared between the
operands are not rebuilt.

Errors

Lookups which may find nothing return a maybe.Maybe. Operations with a documented
precondition (FindMin on an empty set, ElemAt with an index out of range, …) panic
with an error wrapping one of the Err… sentinels of this package; these are
programming errors, not runtime conditions. The sorted builders (FromAscList, …)
and MapMonotonic verify their precondition and fall back to the general algorithm
if it does not hold. The …Antitone family does not; a predicate which is not
antitone yields an unspecified but well-formed subset.

Concurrency

Sets are immutable values and may be read and derived from by any number of
goroutines without synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package set

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.set'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.set")
}
