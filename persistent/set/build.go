package set

/*
Bulk construction

FromList recognizes ascending input and assembles the tree bottom-up in O(n),
creating subtrees of doubling sizes and linking them. As soon as an element is out
of order, the remaining input is inserted one by one, in O(n·log n). The fallback
stays in effect for the rest of the input, even if it is ascending again.

FromAscList and friends trust their input to be sorted. They check sortedness in a
single pass; input violating the precondition is handed to FromList, which yields a
well-formed set of the same keys.
*/

// FromList returns a set holding the keys of xs, with the ordering and options of
// s (the keys of s are not included). Of equal keys in xs, the last one wins.
//
// Complexity: O(n) for ascending input, O(n·log n) otherwise
func (s Set[K]) FromList(xs ...K) Set[K] {
	switch len(xs) {
	case 0:
		return s.Empty()
	case 1:
		return s.Singleton(xs[0])
	}
	return s.Empty().with(s.ordering().fromList(xs))
}

func (e *env[K]) fromList(xs []K) *node[K] {
	if e.notOrdered(xs[0], xs[1:]) {
		return e.insertAll(singleton(xs[0]), xs[1:])
	}
	t, xs := singleton(xs[0]), xs[1:]
	for sz := 1; len(xs) > 0; sz <<= 1 {
		x := xs[0]
		if len(xs) == 1 {
			return insertMax(x, t)
		}
		if e.notOrdered(x, xs[1:]) {
			return e.insertAll(t, xs)
		}
		r, rest, unordered := e.create(sz, xs[1:])
		t = link(x, t, r)
		if len(unordered) > 0 {
			return e.insertAll(t, unordered)
		}
		xs = rest
	}
	return t
}

// create builds a tree of up to sz keys from the ascending prefix of xs. It
// returns the tree together with either the remaining input (ascending so far) or
// the remaining input starting at an element which is out of order.
func (e *env[K]) create(sz int, xs []K) (t *node[K], rest, unordered []K) {
	if len(xs) == 0 {
		return nil, nil, nil
	}
	if sz == 1 {
		if e.notOrdered(xs[0], xs[1:]) {
			return singleton(xs[0]), nil, xs[1:]
		}
		return singleton(xs[0]), xs[1:], nil
	}
	l, rest, unordered := e.create(sz>>1, xs)
	switch {
	case len(rest) == 0:
		return l, nil, unordered
	case len(rest) == 1:
		return insertMax(rest[0], l), nil, nil
	case e.notOrdered(rest[0], rest[1:]):
		return l, nil, rest
	}
	r, rest2, unordered2 := e.create(sz>>1, rest[1:])
	return link(rest[0], l, r), rest2, unordered2
}

// notOrdered is true if x is not smaller than the head of xs.
func (e *env[K]) notOrdered(x K, xs []K) bool {
	return len(xs) > 0 && e.compare(x, xs[0]) >= 0
}

func (e *env[K]) insertAll(t *node[K], xs []K) *node[K] {
	tracer().Debugf("fromList: inserting %d remaining keys one by one", len(xs))
	for _, x := range xs {
		t = e.insert(x, t)
	}
	return t
}

// --- Sorted input ----------------------------------------------------------

// FromAscList returns a set from keys in ascending order, possibly with
// duplicates. Of adjacent equal keys, the last one wins.
//
// Complexity: O(n)
func (s Set[K]) FromAscList(xs ...K) Set[K] {
	if len(xs) <= 1 {
		return s.FromList(xs...)
	}
	distinct, ok := s.ordering().collapse(xs, 1)
	if !ok {
		return s.unsorted(xs)
	}
	return s.Empty().with(buildAsc(distinct))
}

// FromDescList returns a set from keys in descending order, possibly with
// duplicates. Of adjacent equal keys, the last one wins.
//
// Complexity: O(n)
func (s Set[K]) FromDescList(xs ...K) Set[K] {
	if len(xs) <= 1 {
		return s.FromList(xs...)
	}
	distinct, ok := s.ordering().collapse(xs, -1)
	if !ok {
		return s.unsorted(xs)
	}
	return s.Empty().with(buildDesc(distinct))
}

// FromDistinctAscList returns a set from keys in strictly ascending order.
//
// Complexity: O(n)
func (s Set[K]) FromDistinctAscList(xs ...K) Set[K] {
	if len(xs) > 1 && !s.ordering().strictly(xs, 1) {
		return s.unsorted(xs)
	}
	return s.Empty().with(buildAsc(xs))
}

// FromDistinctDescList returns a set from keys in strictly descending order.
//
// Complexity: O(n)
func (s Set[K]) FromDistinctDescList(xs ...K) Set[K] {
	if len(xs) > 1 && !s.ordering().strictly(xs, -1) {
		return s.unsorted(xs)
	}
	return s.Empty().with(buildDesc(xs))
}

func (s Set[K]) unsorted(xs []K) Set[K] {
	tracer().Debugf("input of %d keys violates sort order, building by insertion", len(xs))
	return s.FromList(xs...)
}

// strictly is true if xs is strictly ascending (dir = 1) or strictly descending
// (dir = -1).
func (e *env[K]) strictly(xs []K, dir int) bool {
	for i := 1; i < len(xs); i++ {
		if dir*e.compare(xs[i-1], xs[i]) >= 0 {
			return false
		}
	}
	return true
}

// collapse removes adjacent duplicates from xs, keeping the last key of every run
// of equal keys. ok is false if xs is not sorted in direction dir.
func (e *env[K]) collapse(xs []K, dir int) (distinct []K, ok bool) {
	distinct = make([]K, 1, len(xs))
	distinct[0] = xs[0]
	for _, x := range xs[1:] {
		last := len(distinct) - 1
		switch c := dir * e.compare(distinct[last], x); {
		case c == 0:
			distinct[last] = x
		case c > 0:
			return nil, false
		default:
			distinct = append(distinct, x)
		}
	}
	return distinct, true
}

// buildAsc assembles a tree from strictly ascending keys without comparing them.
// Sibling subtrees differ in size by at most one.
func buildAsc[K any](xs []K) *node[K] {
	if len(xs) == 0 {
		return nil
	}
	mid := len(xs) >> 1
	return bin(xs[mid], buildAsc(xs[:mid]), buildAsc(xs[mid+1:]))
}

// buildDesc is buildAsc for strictly descending keys.
func buildDesc[K any](xs []K) *node[K] {
	if len(xs) == 0 {
		return nil
	}
	mid := len(xs) >> 1
	return bin(xs[mid], buildDesc(xs[mid+1:]), buildDesc(xs[:mid]))
}
