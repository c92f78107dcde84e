package set

import (
	"fmt"

	"github.com/npillmayer/ordset"
)

// Valid checks the invariants of s: keys are strictly ascending in order of
// traversal, cached subtree sizes are exact, and every node is balanced.
// It is a debugging aid.
//
// Complexity: O(n)
func (s Set[K]) Valid() bool {
	var o ordset.Ordering[K]
	if !trivial(s.root) {
		o = s.ordering().compare
	}
	return check(o, s.root).ok()
}

// SplitRoot decomposes s into the subtrees below its root and a singleton of the
// root key: [left, {root}, right]. The pieces are ascending and disjoint; their
// union is s. For the empty set, SplitRoot returns no pieces.
//
// This is useful for processing a set in parallel.
func (s Set[K]) SplitRoot() []Set[K] {
	if s.root == nil {
		return nil
	}
	return []Set[K]{
		s.with(s.root.left),
		s.with(singleton(s.root.key)),
		s.with(s.root.right),
	}
}

// --- Invariants ------------------------------------------------------------

type validity struct {
	ordered, sized, balanced bool
}

func (v validity) ok() bool {
	return v.ordered && v.sized && v.balanced
}

func (v validity) String() string {
	return fmt.Sprintf("ordered=%v, sized=%v, balanced=%v", v.ordered, v.sized, v.balanced)
}

// check tests the invariants of t. o may be nil for trees of at most one key.
func check[K any](o ordset.Ordering[K], t *node[K]) validity {
	return validity{
		ordered:  ordered(o, t),
		sized:    sized(t),
		balanced: balanced(t),
	}
}

// trivial is true for trees without any two keys to compare.
func trivial[K any](t *node[K]) bool {
	return t == nil || (t.left == nil && t.right == nil)
}

func ordered[K any](o ordset.Ordering[K], t *node[K]) bool {
	if trivial(t) {
		return true
	}
	var prev K
	first, ok := true, true
	t.ascend(func(k K) bool {
		if !first && o(prev, k) >= 0 {
			ok = false
			return false
		}
		prev, first = k, false
		return true
	})
	return ok
}

func sized[K any](t *node[K]) bool {
	_, ok := realSize(t)
	return ok
}

func realSize[K any](t *node[K]) (int, bool) {
	if t == nil {
		return 0, true
	}
	l, lok := realSize(t.left)
	r, rok := realSize(t.right)
	n := l + r + 1
	return n, lok && rok && n == t.size
}

func balanced[K any](t *node[K]) bool {
	if t == nil {
		return true
	}
	ls, rs := size(t.left), size(t.right)
	return (ls+rs <= 1 || (ls <= delta*rs && rs <= delta*ls)) &&
		balanced(t.left) && balanced(t.right)
}
