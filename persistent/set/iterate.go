package set

import (
	"iter"
)

// All returns the keys of s in ascending order. The sequence may be iterated
// any number of times.
//
//     for k := range s.All() {
//         …
//     }
//
func (s Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.root.ascend(yield)
	}
}

// Backward returns the keys of s in descending order.
func (s Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.root.descend(yield)
	}
}

func (t *node[K]) ascend(yield func(K) bool) bool {
	if t == nil {
		return true
	}
	return t.left.ascend(yield) && yield(t.key) && t.right.ascend(yield)
}

func (t *node[K]) descend(yield func(K) bool) bool {
	if t == nil {
		return true
	}
	return t.right.descend(yield) && yield(t.key) && t.left.descend(yield)
}

// ToAscList returns the keys of s in ascending order.
func (s Set[K]) ToAscList() []K {
	keys := make([]K, 0, s.Size())
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

// Elems is an alias for ToAscList.
func (s Set[K]) Elems() []K {
	return s.ToAscList()
}

// ToDescList returns the keys of s in descending order.
func (s Set[K]) ToDescList() []K {
	keys := make([]K, 0, s.Size())
	for k := range s.Backward() {
		keys = append(keys, k)
	}
	return keys
}

// --- Equality and order ----------------------------------------------------

// Equal is true if s and other hold the same keys. Sets which share their tree
// are recognized without visiting the keys.
//
// Complexity: O(n)
func (s Set[K]) Equal(other Set[K]) bool {
	if s.root == other.root {
		return true
	}
	if s.Size() != other.Size() {
		return false
	}
	return s.Compare(other) == 0
}

// Compare orders sets lexicographically by their ascending keys. It returns a
// negative number if s < other, zero if they are equal and a positive number
// if s > other.
func (s Set[K]) Compare(other Set[K]) int {
	switch {
	case s.root == other.root:
		return 0
	case s.root == nil:
		return -1
	case other.root == nil:
		return 1
	}
	e := s.pick(other).ordering()
	next, stop := iter.Pull(other.All())
	defer stop()
	for k := range s.All() {
		o, ok := next()
		if !ok {
			return 1
		}
		if c := e.compare(k, o); c != 0 {
			return c
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}
