package set

import (
	"github.com/npillmayer/ordset/maybe"
)

// Member is true if k is an element of s.
//
// Complexity: O(log n)
func (s Set[K]) Member(k K) bool {
	if s.root == nil {
		return false
	}
	return s.ordering().member(k, s.root)
}

// NotMember is the negation of Member.
func (s Set[K]) NotMember(k K) bool {
	return !s.Member(k)
}

func (e *env[K]) member(k K, t *node[K]) bool {
	for t != nil {
		c := e.compare(k, t.key)
		switch {
		case c < 0:
			t = t.left
		case c > 0:
			t = t.right
		default:
			return true
		}
	}
	return false
}

// --- Nearest neighbours ----------------------------------------------------

// LookupLT finds the largest key smaller than k.
func (s Set[K]) LookupLT(k K) maybe.Maybe[K] {
	if s.root == nil {
		return maybe.Nothing[K]()
	}
	x, ok := s.ordering().lookupLT(k, s.root)
	return maybe.Of(x, ok)
}

// LookupGT finds the smallest key greater than k.
func (s Set[K]) LookupGT(k K) maybe.Maybe[K] {
	if s.root == nil {
		return maybe.Nothing[K]()
	}
	x, ok := s.ordering().lookupGT(k, s.root)
	return maybe.Of(x, ok)
}

// LookupLE finds the largest key smaller than or equal to k.
func (s Set[K]) LookupLE(k K) maybe.Maybe[K] {
	if s.root == nil {
		return maybe.Nothing[K]()
	}
	x, ok := s.ordering().lookupLE(k, s.root)
	return maybe.Of(x, ok)
}

// LookupGE finds the smallest key greater than or equal to k.
func (s Set[K]) LookupGE(k K) maybe.Maybe[K] {
	if s.root == nil {
		return maybe.Nothing[K]()
	}
	x, ok := s.ordering().lookupGE(k, s.root)
	return maybe.Of(x, ok)
}

// The lookup functions descend a single path, remembering the best candidate seen
// so far.

func (e *env[K]) lookupLT(k K, t *node[K]) (best K, found bool) {
	for t != nil {
		if e.compare(k, t.key) <= 0 {
			t = t.left
		} else {
			best, found = t.key, true
			t = t.right
		}
	}
	return
}

func (e *env[K]) lookupGT(k K, t *node[K]) (best K, found bool) {
	for t != nil {
		if e.compare(k, t.key) < 0 {
			best, found = t.key, true
			t = t.left
		} else {
			t = t.right
		}
	}
	return
}

func (e *env[K]) lookupLE(k K, t *node[K]) (best K, found bool) {
	for t != nil {
		c := e.compare(k, t.key)
		switch {
		case c < 0:
			t = t.left
		case c > 0:
			best, found = t.key, true
			t = t.right
		default:
			return t.key, true
		}
	}
	return
}

func (e *env[K]) lookupGE(k K, t *node[K]) (best K, found bool) {
	for t != nil {
		c := e.compare(k, t.key)
		switch {
		case c < 0:
			best, found = t.key, true
			t = t.left
		case c > 0:
			t = t.right
		default:
			return t.key, true
		}
	}
	return
}

// --- Minimum and maximum ---------------------------------------------------

// LookupMin returns the smallest key of s, if any.
func (s Set[K]) LookupMin() maybe.Maybe[K] {
	if s.root == nil {
		return maybe.Nothing[K]()
	}
	return maybe.Just(leftmost(s.root).key)
}

// LookupMax returns the largest key of s, if any.
func (s Set[K]) LookupMax() maybe.Maybe[K] {
	if s.root == nil {
		return maybe.Nothing[K]()
	}
	return maybe.Just(rightmost(s.root).key)
}

// FindMin returns the smallest key of s. It panics with ErrEmptySet if s is
// empty; use LookupMin if s may be empty.
func (s Set[K]) FindMin() K {
	if s.root == nil {
		fatal(ErrEmptySet, "FindMin")
	}
	return leftmost(s.root).key
}

// FindMax returns the largest key of s. It panics with ErrEmptySet if s is
// empty; use LookupMax if s may be empty.
func (s Set[K]) FindMax() K {
	if s.root == nil {
		fatal(ErrEmptySet, "FindMax")
	}
	return rightmost(s.root).key
}

func leftmost[K any](t *node[K]) *node[K] {
	for t.left != nil {
		t = t.left
	}
	return t
}

func rightmost[K any](t *node[K]) *node[K] {
	for t.right != nil {
		t = t.right
	}
	return t
}

// --- Access by rank --------------------------------------------------------

// The rank of a key is its zero-based position in the ascending enumeration of a
// set. At every node, the rank of its key relative to the subtree is the size of
// the left subtree.

// LookupIndex returns the rank of k in s, if k is an element of s.
//
// Complexity: O(log n)
func (s Set[K]) LookupIndex(k K) maybe.Maybe[int] {
	if s.root == nil {
		return maybe.Nothing[int]()
	}
	x, ok := s.ordering().index(k, s.root)
	return maybe.Of(x, ok)
}

// FindIndex returns the rank of k in s. It panics with ErrNotMember if k is not
// an element of s.
//
// Complexity: O(log n)
func (s Set[K]) FindIndex(k K) int {
	if s.root == nil {
		fatal(ErrNotMember, "FindIndex(%v) in empty set", k)
	}
	i, found := s.ordering().index(k, s.root)
	if !found {
		fatal(ErrNotMember, "FindIndex(%v)", k)
	}
	return i
}

func (e *env[K]) index(k K, t *node[K]) (int, bool) {
	offset := 0
	for t != nil {
		c := e.compare(k, t.key)
		switch {
		case c < 0:
			t = t.left
		case c > 0:
			offset += size(t.left) + 1
			t = t.right
		default:
			return offset + size(t.left), true
		}
	}
	return 0, false
}

// ElemAt returns the key of rank i. It panics with ErrIndexOutOfRange unless
// 0 ≤ i < s.Size().
//
// Complexity: O(log n)
func (s Set[K]) ElemAt(i int) K {
	if i < 0 || i >= s.Size() {
		fatal(ErrIndexOutOfRange, "ElemAt(%d) with size %d", i, s.Size())
	}
	t := s.root
	for {
		ls := size(t.left)
		switch {
		case i < ls:
			t = t.left
		case i > ls:
			i -= ls + 1
			t = t.right
		default:
			return t.key
		}
	}
}
