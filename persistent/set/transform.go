package set

import (
	"cmp"

	"github.com/npillmayer/ordset"
)

// Filter returns the set of keys of s satisfying p.
//
// Complexity: O(n)
func (s Set[K]) Filter(p func(K) bool) Set[K] {
	return s.with(filter(p, s.root))
}

func filter[K any](p func(K) bool, t *node[K]) *node[K] {
	if t == nil {
		return nil
	}
	l := filter(p, t.left)
	keep := p(t.key)
	r := filter(p, t.right)
	if !keep {
		return merge(l, r)
	}
	if l == t.left && r == t.right {
		return t
	}
	return link(t.key, l, r)
}

// Partition splits s into the keys satisfying p and the keys which don't.
//
// Complexity: O(n)
func (s Set[K]) Partition(p func(K) bool) (yes, no Set[K]) {
	y, n := partition(p, s.root)
	return s.with(y), s.with(n)
}

func partition[K any](p func(K) bool, t *node[K]) (*node[K], *node[K]) {
	if t == nil {
		return nil, nil
	}
	ly, ln := partition(p, t.left)
	keep := p(t.key)
	ry, rn := partition(p, t.right)
	if keep {
		if ly == t.left && ry == t.right {
			return t, merge(ln, rn)
		}
		return link(t.key, ly, ry), merge(ln, rn)
	}
	if ln == t.left && rn == t.right {
		return merge(ly, ry), t
	}
	return merge(ly, ry), link(t.key, ln, rn)
}

// --- Mapping ---------------------------------------------------------------

// Map returns the set of f(k) for all keys k of s. If f maps different keys to
// equal results, the result is smaller than s.
//
// Complexity: O(n·log n)
func Map[K any, L cmp.Ordered](s Set[K], f func(K) L) Set[L] {
	return MapFunc(s, f, ordset.Natural[L]())
}

// MapFunc is Map for result keys ordered by o.
func MapFunc[K, L any](s Set[K], f func(K) L, o ordset.Ordering[L]) Set[L] {
	return derive(s, o).FromList(mapped(s, f)...)
}

// MapMonotonic is Map for a function f which is strictly increasing,
// i.e., a < b implies f(a) < f(b). The result has the shape of s.
// If f is not strictly increasing, the result is built as with Map.
//
// Complexity: O(n)
func MapMonotonic[K any, L cmp.Ordered](s Set[K], f func(K) L) Set[L] {
	return MapMonotonicFunc(s, f, ordset.Natural[L]())
}

// MapMonotonicFunc is MapMonotonic for result keys ordered by o.
func MapMonotonicFunc[K, L any](s Set[K], f func(K) L, o ordset.Ordering[L]) Set[L] {
	target := derive(s, o)
	ys := mapped(s, f)
	if len(ys) > 1 && !target.env.strictly(ys, 1) {
		return target.unsorted(ys)
	}
	i := 0
	return target.with(reshape(s.root, ys, &i))
}

// derive returns an empty set ordered by o, inheriting the options of s.
func derive[K, L any](s Set[K], o ordset.Ordering[L]) Set[L] {
	target := ImmutableFunc(o)
	if s.env != nil && s.env.checked {
		target = Checked[L]()(target)
	}
	return target
}

func mapped[K, L any](s Set[K], f func(K) L) []L {
	ys := make([]L, 0, s.Size())
	for k := range s.All() {
		ys = append(ys, f(k))
	}
	return ys
}

// reshape builds a tree of the shape of t, with keys taken from ys in order.
func reshape[K, L any](t *node[K], ys []L, i *int) *node[L] {
	if t == nil {
		return nil
	}
	l := reshape(t.left, ys, i)
	y := ys[*i]
	*i++
	r := reshape(t.right, ys, i)
	return &node[L]{size: t.size, key: y, left: l, right: r}
}

// --- Antitone predicates ---------------------------------------------------

// The …Antitone family expects a predicate p which holds for a (possibly empty)
// prefix of the ascending keys of s and fails for the rest. Each of them
// descends a single path of the tree. For other predicates, the result is some
// well-formed subset of s.

// TakeWhileAntitone returns the longest prefix of the keys of s satisfying p.
//
// Complexity: O(log n)
func (s Set[K]) TakeWhileAntitone(p func(K) bool) Set[K] {
	return s.with(takeWhileAntitone(p, s.root))
}

func takeWhileAntitone[K any](p func(K) bool, t *node[K]) *node[K] {
	if t == nil {
		return nil
	}
	if p(t.key) {
		r := takeWhileAntitone(p, t.right)
		if r == t.right {
			return t
		}
		return link(t.key, t.left, r)
	}
	return takeWhileAntitone(p, t.left)
}

// DropWhileAntitone returns s without the longest prefix of keys satisfying p.
//
// Complexity: O(log n)
func (s Set[K]) DropWhileAntitone(p func(K) bool) Set[K] {
	return s.with(dropWhileAntitone(p, s.root))
}

func dropWhileAntitone[K any](p func(K) bool, t *node[K]) *node[K] {
	if t == nil {
		return nil
	}
	if p(t.key) {
		return dropWhileAntitone(p, t.right)
	}
	l := dropWhileAntitone(p, t.left)
	if l == t.left {
		return t
	}
	return link(t.key, l, t.right)
}

// SpanAntitone returns (s.TakeWhileAntitone(p), s.DropWhileAntitone(p)) in a
// single descent.
func (s Set[K]) SpanAntitone(p func(K) bool) (Set[K], Set[K]) {
	u, v := spanAntitone(p, s.root)
	return s.with(u), s.with(v)
}

func spanAntitone[K any](p func(K) bool, t *node[K]) (*node[K], *node[K]) {
	if t == nil {
		return nil, nil
	}
	if p(t.key) {
		u, v := spanAntitone(p, t.right)
		return link(t.key, t.left, u), v
	}
	u, v := spanAntitone(p, t.left)
	return u, link(t.key, v, t.right)
}

// --- Folds -----------------------------------------------------------------

// Foldr folds the keys of s from the right: f(k₀, f(k₁, … f(kₙ, z))).
func Foldr[K, A any](s Set[K], f func(K, A) A, z A) A {
	acc := z
	for k := range s.Backward() {
		acc = f(k, acc)
	}
	return acc
}

// Foldl folds the keys of s from the left: f(… f(f(z, k₀), k₁) …, kₙ).
func Foldl[K, A any](s Set[K], f func(A, K) A, z A) A {
	acc := z
	for k := range s.All() {
		acc = f(acc, k)
	}
	return acc
}
