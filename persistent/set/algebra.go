package set

import (
	"github.com/npillmayer/ordset"
)

/*
Set algebra

All binary operations work by divide and conquer: the root key of one tree splits
the other tree, both halves are combined recursively and the results are joined
again with link or merge. Splitting at keys of the smaller tree bounds the cost at
O(m·log(n/m + 1)) for sets of sizes m ≤ n.

Results share subtrees with the operands wherever the recursion proves that
nothing changed, up to returning an operand unchanged.

Binary operations use the ordering of the receiver; both operands are expected to
be ordered the same way.
*/

// Union returns the set of keys in s or in other. For keys present in both sets,
// the key of s is retained.
func (s Set[K]) Union(other Set[K]) Set[K] {
	s = s.pick(other)
	if s.root == nil {
		return s.with(other.root)
	}
	if other.root == nil {
		return s
	}
	return s.with(s.ordering().union(s.root, other.root))
}

func (e *env[K]) union(t1, t2 *node[K]) *node[K] {
	switch {
	case t1 == t2:
		return t1
	case t2 == nil:
		return t1
	case t1 == nil:
		return t2
	case t2.size == 1:
		return e.insertR(t2.key, t1)
	case t1.size == 1:
		return e.insert(t1.key, t2)
	}
	l2, r2 := e.split(t1.key, t2)
	l := e.union(t1.left, l2)
	r := e.union(t1.right, r2)
	if l == t1.left && r == t1.right {
		return t1
	}
	return link(t1.key, l, r)
}

// Unions folds sets with Union, starting from the empty set.
func Unions[K any](sets ...Set[K]) Set[K] {
	var u Set[K]
	for _, s := range sets {
		u = u.Union(s)
	}
	return u
}

// Intersection returns the set of keys in both s and other. Keys are taken
// from s.
func (s Set[K]) Intersection(other Set[K]) Set[K] {
	s = s.pick(other)
	if s.root == nil || other.root == nil {
		return s.Empty()
	}
	return s.with(s.ordering().intersection(s.root, other.root))
}

func (e *env[K]) intersection(t1, t2 *node[K]) *node[K] {
	switch {
	case t1 == nil || t2 == nil:
		return nil
	case t1 == t2:
		return t1
	}
	l2, found, r2 := e.splitMember(t1.key, t2)
	l := e.intersection(t1.left, l2)
	r := e.intersection(t1.right, r2)
	if !found {
		return merge(l, r)
	}
	if l == t1.left && r == t1.right {
		return t1
	}
	return link(t1.key, l, r)
}

// Difference returns the set of keys in s which are not in other.
func (s Set[K]) Difference(other Set[K]) Set[K] {
	s = s.pick(other)
	if s.root == nil || other.root == nil {
		return s
	}
	return s.with(s.ordering().difference(s.root, other.root))
}

func (e *env[K]) difference(t1, t2 *node[K]) *node[K] {
	switch {
	case t1 == nil:
		return nil
	case t2 == nil:
		return t1
	case t1 == t2:
		return nil
	}
	l1, r1 := e.split(t2.key, t1)
	l := e.difference(l1, t2.left)
	r := e.difference(r1, t2.right)
	if size(l)+size(r) == t1.size {
		return t1
	}
	return merge(l, r)
}

// --- Predicates ------------------------------------------------------------

// IsSubsetOf is true if every key of s is an element of other.
//
// Complexity: O(m·log(n/m + 1)) for m ≤ n
func (s Set[K]) IsSubsetOf(other Set[K]) bool {
	s = s.pick(other)
	if s.root == nil {
		return true
	}
	if s.Size() > other.Size() {
		return false
	}
	return s.ordering().isSubsetOf(s.root, other.root)
}

// IsProperSubsetOf is true if s is a subset of other and other has keys which
// are not in s.
func (s Set[K]) IsProperSubsetOf(other Set[K]) bool {
	return s.Size() < other.Size() && s.IsSubsetOf(other)
}

// isSubsetOf requires size(t1) ≤ size(t2).
func (e *env[K]) isSubsetOf(t1, t2 *node[K]) bool {
	switch {
	case t1 == nil || t1 == t2:
		return true
	case t2 == nil:
		return false
	case t1.size == 1:
		return e.member(t1.key, t2)
	}
	lt, found, gt := e.splitMember(t1.key, t2)
	return found &&
		size(t1.left) <= size(lt) && size(t1.right) <= size(gt) &&
		e.isSubsetOf(t1.left, lt) && e.isSubsetOf(t1.right, gt)
}

// Disjoint is true if s and other have no keys in common.
func (s Set[K]) Disjoint(other Set[K]) bool {
	s = s.pick(other)
	if s.root == nil || other.root == nil {
		return true
	}
	return s.ordering().disjoint(s.root, other.root)
}

func (e *env[K]) disjoint(t1, t2 *node[K]) bool {
	switch {
	case t1 == nil || t2 == nil:
		return true
	case t1 == t2:
		return false
	case t1.size == 1:
		return !e.member(t1.key, t2)
	}
	lt, found, gt := e.splitMember(t1.key, t2)
	return !found && e.disjoint(t1.left, lt) && e.disjoint(t1.right, gt)
}

// --- Monoid ----------------------------------------------------------------

// UnionMonoid returns the monoid of sets under Union, with the empty set (ordered
// like s) as identity.
//
//     u := ordset.Concat(s.UnionMonoid(), a, b, c)
//
func (s Set[K]) UnionMonoid() ordset.Monoid[Set[K]] {
	return unionMonoid[K]{empty: s.Empty()}
}

type unionMonoid[K any] struct {
	empty Set[K]
}

func (m unionMonoid[K]) Empty() Set[K] {
	return m.empty
}

func (m unionMonoid[K]) Combine(a, b Set[K]) Set[K] {
	return a.Union(b)
}
