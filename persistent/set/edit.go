package set

// Insert returns a set with k added. If s already holds a key equal to k, it is
// replaced by k. If nothing changes, s itself is returned.
//
// Complexity: O(log n)
func (s Set[K]) Insert(k K) Set[K] {
	return s.with(s.ordering().insert(k, s.root))
}

// insert adds k to t, replacing an equal key. Paths which do not change are
// shared with t.
func (e *env[K]) insert(k K, t *node[K]) *node[K] {
	if t == nil {
		return singleton(k)
	}
	c := e.compare(k, t.key)
	switch {
	case c < 0:
		l := e.insert(k, t.left)
		if l == t.left {
			return t
		}
		return balanceL(t.key, l, t.right)
	case c > 0:
		r := e.insert(k, t.right)
		if r == t.right {
			return t
		}
		return balanceR(t.key, t.left, r)
	}
	if e.same != nil && e.same(k, t.key) {
		return t
	}
	return &node[K]{size: t.size, key: k, left: t.left, right: t.right}
}

// insertR adds k to t, keeping an equal key already present.
func (e *env[K]) insertR(k K, t *node[K]) *node[K] {
	if t == nil {
		return singleton(k)
	}
	c := e.compare(k, t.key)
	switch {
	case c < 0:
		l := e.insertR(k, t.left)
		if l == t.left {
			return t
		}
		return balanceL(t.key, l, t.right)
	case c > 0:
		r := e.insertR(k, t.right)
		if r == t.right {
			return t
		}
		return balanceR(t.key, t.left, r)
	}
	return t
}

// Delete returns a set without k. If k is not an element of s, s itself is
// returned.
//
// Complexity: O(log n)
func (s Set[K]) Delete(k K) Set[K] {
	if s.root == nil {
		return s
	}
	return s.with(s.ordering().delete(k, s.root))
}

func (e *env[K]) delete(k K, t *node[K]) *node[K] {
	if t == nil {
		return nil
	}
	c := e.compare(k, t.key)
	switch {
	case c < 0:
		l := e.delete(k, t.left)
		if l == t.left {
			return t
		}
		return balanceR(t.key, l, t.right)
	case c > 0:
		r := e.delete(k, t.right)
		if r == t.right {
			return t
		}
		return balanceL(t.key, t.left, r)
	}
	return glue(t.left, t.right)
}

// DeleteMin returns s without its smallest key. The empty set stays empty.
func (s Set[K]) DeleteMin() Set[K] {
	return s.with(deleteMin(s.root))
}

// DeleteMax returns s without its largest key. The empty set stays empty.
func (s Set[K]) DeleteMax() Set[K] {
	return s.with(deleteMax(s.root))
}

// MinView splits off the smallest key of s. ok is false if s is empty.
func (s Set[K]) MinView() (k K, rest Set[K], ok bool) {
	if s.root == nil {
		return k, s, false
	}
	k, t := minViewSure(s.root)
	return k, s.with(t), true
}

// MaxView splits off the largest key of s. ok is false if s is empty.
func (s Set[K]) MaxView() (k K, rest Set[K], ok bool) {
	if s.root == nil {
		return k, s, false
	}
	k, t := maxViewSure(s.root)
	return k, s.with(t), true
}

// --- Splitting -------------------------------------------------------------

// Split partitions s into the keys smaller than k and the keys greater than k.
// A key equal to k is in neither of them.
//
// Complexity: O(log n)
func (s Set[K]) Split(k K) (lt, gt Set[K]) {
	if s.root == nil {
		return s, s
	}
	l, r := s.ordering().split(k, s.root)
	return s.with(l), s.with(r)
}

// SplitMember is like Split, additionally reporting if k is an element of s.
func (s Set[K]) SplitMember(k K) (lt Set[K], found bool, gt Set[K]) {
	if s.root == nil {
		return s, false, s
	}
	l, found, r := s.ordering().splitMember(k, s.root)
	return s.with(l), found, s.with(r)
}

func (e *env[K]) split(k K, t *node[K]) (*node[K], *node[K]) {
	if t == nil {
		return nil, nil
	}
	c := e.compare(k, t.key)
	switch {
	case c < 0:
		lt, gt := e.split(k, t.left)
		return lt, link(t.key, gt, t.right)
	case c > 0:
		lt, gt := e.split(k, t.right)
		return link(t.key, t.left, lt), gt
	}
	return t.left, t.right
}

func (e *env[K]) splitMember(k K, t *node[K]) (*node[K], bool, *node[K]) {
	if t == nil {
		return nil, false, nil
	}
	c := e.compare(k, t.key)
	switch {
	case c < 0:
		lt, found, gt := e.splitMember(k, t.left)
		return lt, found, link(t.key, gt, t.right)
	case c > 0:
		lt, found, gt := e.splitMember(k, t.right)
		return link(t.key, t.left, lt), found, gt
	}
	return t.left, true, t.right
}

// --- Edits by rank ---------------------------------------------------------

// DeleteAt returns s without the key of rank i. It panics with
// ErrIndexOutOfRange unless 0 ≤ i < s.Size().
//
// Complexity: O(log n)
func (s Set[K]) DeleteAt(i int) Set[K] {
	if i < 0 || i >= s.Size() {
		fatal(ErrIndexOutOfRange, "DeleteAt(%d) with size %d", i, s.Size())
	}
	return s.with(deleteAt(i, s.root))
}

func deleteAt[K any](i int, t *node[K]) *node[K] {
	ls := size(t.left)
	switch {
	case i < ls:
		return balanceR(t.key, deleteAt(i, t.left), t.right)
	case i > ls:
		return balanceL(t.key, t.left, deleteAt(i-ls-1, t.right))
	}
	return glue(t.left, t.right)
}

// Take returns the n smallest keys of s. n is clamped to [0, s.Size()].
//
// Complexity: O(log n)
func (s Set[K]) Take(n int) Set[K] {
	if n >= s.Size() {
		return s
	}
	return s.with(take(n, s.root))
}

func take[K any](i int, t *node[K]) *node[K] {
	if i <= 0 || t == nil {
		return nil
	}
	ls := size(t.left)
	switch {
	case i < ls:
		return take(i, t.left)
	case i > ls:
		return link(t.key, t.left, take(i-ls-1, t.right))
	}
	return t.left
}

// Drop returns s without its n smallest keys. n is clamped to [0, s.Size()].
//
// Complexity: O(log n)
func (s Set[K]) Drop(n int) Set[K] {
	if n >= s.Size() {
		return s.Empty()
	}
	return s.with(drop(n, s.root))
}

func drop[K any](i int, t *node[K]) *node[K] {
	if i <= 0 || t == nil {
		return t
	}
	ls := size(t.left)
	switch {
	case i < ls:
		return link(t.key, drop(i, t.left), t.right)
	case i > ls:
		return drop(i-ls-1, t.right)
	}
	return insertMin(t.key, t.right)
}

// SplitAt returns (s.Take(n), s.Drop(n)) in a single descent.
func (s Set[K]) SplitAt(n int) (Set[K], Set[K]) {
	switch {
	case n >= s.Size():
		return s, s.Empty()
	case n <= 0:
		return s.Empty(), s
	}
	l, r := splitAt(n, s.root)
	return s.with(l), s.with(r)
}

func splitAt[K any](i int, t *node[K]) (*node[K], *node[K]) {
	if i <= 0 || t == nil {
		return nil, t
	}
	ls := size(t.left)
	switch {
	case i < ls:
		ll, lr := splitAt(i, t.left)
		return ll, link(t.key, lr, t.right)
	case i > ls:
		rl, rr := splitAt(i-ls-1, t.right)
		return link(t.key, t.left, rl), rr
	}
	return t.left, insertMin(t.key, t.right)
}
