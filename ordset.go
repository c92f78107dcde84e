package ordset

import "cmp"

// Ordering is a total order over values of type K, expressed as a three-way
// comparison: negative if a < b, zero if a and b are considered equal, positive
// if a > b.
type Ordering[K any] func(a, b K) int

// Natural returns the natural order for ordered types.
func Natural[K cmp.Ordered]() Ordering[K] {
	return cmp.Compare[K]
}

// Reverse returns the inverse of ordering o.
func Reverse[K any](o Ordering[K]) Ordering[K] {
	return func(a, b K) int {
		return o(b, a)
	}
}

// By orders values of type A by comparing a projection of them with o.
//
//     byLen := ordset.By(func(s string) int { return len(s) }, ordset.Natural[int]())
//
// Values with equal projections are considered equal.
func By[A, B any](key func(A) B, o Ordering[B]) Ordering[A] {
	return func(a, b A) int {
		return o(key(a), key(b))
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// --- Monoids ---------------------------------------------------------------

// Monoid combines values of type T associatively, with Empty() as the identity.
type Monoid[T any] interface {
	Empty() T
	Combine(a, b T) T
}

// Concat folds xs from the left with m, starting at m.Empty().
func Concat[T any](m Monoid[T], xs ...T) T {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}
