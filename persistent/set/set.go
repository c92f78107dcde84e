package set

import (
	"cmp"

	"github.com/npillmayer/ordset"
)

// Set is an immutable ordered set of unique keys. Sets are values; every
// operation returning a Set returns a new incarnation and leaves its receiver
// unchanged.
//
// Sets are created by Immutable, ImmutableFunc or Of:
//
//     s := set.Immutable[string]().Insert("Galaxy")
//     found := s.Member("Galaxy")   // true
//
// The zero value is an empty set without an ordering. It may be read from and
// combined with sets which do have an ordering, but inserting into it panics.
type Set[K any] struct {
	env  *env[K]
	root *node[K]
}

// Immutable returns an empty set of keys in their natural order, with options,
// if you need any.
func Immutable[K cmp.Ordered](opts ...Option[K]) Set[K] {
	return ImmutableFunc(ordset.Natural[K](), opts...)
}

// ImmutableFunc returns an empty set of keys ordered by o. o has to be a total
// order; keys comparing equal under o are considered the same element.
//
//     type point struct{ x, y int }
//     byX := func(a, b point) int { return cmp.Compare(a.x, b.x) }
//     s := set.ImmutableFunc(byX)
//
func ImmutableFunc[K any](o ordset.Ordering[K], opts ...Option[K]) Set[K] {
	assertThat(o != nil, "ordering for set must not be nil")
	s := Set[K]{env: newEnv(o)}
	for _, option := range opts {
		s = option(s)
	}
	return s
}

// Of creates a set of ordered keys from xs.
func Of[K cmp.Ordered](xs ...K) Set[K] {
	return Immutable[K]().FromList(xs...)
}

// Option is a type to help initializing sets at creation time.
type Option[K any] func(Set[K]) Set[K]

// Checked is an option to validate the invariants of every set derived from the
// configured set. A violation panics with ErrCorrupt. Validation visits every key
// of a result, so use this for debugging only.
//
//     s := set.Immutable[int](set.Checked[int]())
//
func Checked[K any]() Option[K] {
	return func(s Set[K]) Set[K] {
		e := *s.env
		e.checked = true
		s.env = &e
		return s
	}
}

// --- Internals -------------------------------------------------------------

// with returns a new incarnation of s with root t.
func (s Set[K]) with(t *node[K]) Set[K] {
	if s.env != nil && s.env.checked && t != s.root {
		tracer().Debugf("checking set of size %d", size(t))
		if v := check(s.env.compare, t); !v.ok() {
			fatal(ErrCorrupt, "%s", v)
		}
	}
	return Set[K]{env: s.env, root: t}
}

// ordering returns the environment of s, which has to hold an ordering.
func (s Set[K]) ordering() *env[K] {
	if s.env == nil {
		fatal(ErrNoOrdering, "comparison on zero-value set")
	}
	return s.env
}

// pick returns the environment for a result computed from s and other: s's if
// present, otherwise other's.
func (s Set[K]) pick(other Set[K]) Set[K] {
	if s.env == nil {
		return Set[K]{env: other.env, root: s.root}
	}
	return s
}

// --- Size ------------------------------------------------------------------

// Size returns the number of keys in s.
//
// Complexity: O(1)
func (s Set[K]) Size() int {
	return size(s.root)
}

// IsEmpty is true for the empty set.
func (s Set[K]) IsEmpty() bool {
	return s.root == nil
}

// Empty returns the empty set with the ordering and options of s.
func (s Set[K]) Empty() Set[K] {
	return Set[K]{env: s.env}
}

// Singleton returns a set containing k only, with the ordering and options of s.
func (s Set[K]) Singleton(k K) Set[K] {
	return s.with(singleton(k))
}
