package set

/*
Rebalancing

All constructors below return a new node and leave their arguments untouched.

balanceL and balanceR restore balance at a node whose named side may have grown
by one key (or whose other side may have shrunk by one key), starting from a
balanced state. link and merge join trees of arbitrary relative size; they descend
into the larger tree and rebalance on the way up.
*/

// balanceL rebalances a node after its left subtree may have grown by one key or
// its right subtree may have shrunk by one key.
func balanceL[K any](k K, l, r *node[K]) *node[K] {
	ls, rs := size(l), size(r)
	if ls+rs <= 1 || ls <= delta*rs {
		return bin(k, l, r)
	}
	if size(l.right) < ratio*size(l.left) {
		return singleR(k, l, r)
	}
	return doubleR(k, l, r)
}

// balanceR is the mirror image of balanceL.
func balanceR[K any](k K, l, r *node[K]) *node[K] {
	ls, rs := size(l), size(r)
	if ls+rs <= 1 || rs <= delta*ls {
		return bin(k, l, r)
	}
	if size(r.left) < ratio*size(r.right) {
		return singleL(k, l, r)
	}
	return doubleL(k, l, r)
}

//     k              r.k
//    / \             /  \
//   l   r    ⇒      k   r.r
//      / \         / \
//    r.l r.r      l  r.l
func singleL[K any](k K, l, r *node[K]) *node[K] {
	return bin(r.key, bin(k, l, r.left), r.right)
}

func singleR[K any](k K, l, r *node[K]) *node[K] {
	return bin(l.key, l.left, bin(k, l.right, r))
}

//     k                 r.l.k
//    / \               /     \
//   l   r      ⇒      k       r
//      / \           / \     / \
//    r.l r.r        l  rll rlr r.r
func doubleL[K any](k K, l, r *node[K]) *node[K] {
	rl := r.left
	return bin(rl.key, bin(k, l, rl.left), bin(r.key, rl.right, r.right))
}

func doubleR[K any](k K, l, r *node[K]) *node[K] {
	lr := l.right
	return bin(lr.key, bin(l.key, l.left, lr.left), bin(k, lr.right, r))
}

// --- Joining trees ---------------------------------------------------------

// link joins l and r with separator k, where all keys of l < k < all keys of r.
// The sizes of l and r are unconstrained.
func link[K any](k K, l, r *node[K]) *node[K] {
	switch {
	case l == nil:
		return insertMin(k, r)
	case r == nil:
		return insertMax(k, l)
	case delta*l.size < r.size:
		return balanceL(r.key, link(k, l, r.left), r.right)
	case delta*r.size < l.size:
		return balanceR(l.key, l.left, link(k, l.right, r))
	}
	return bin(k, l, r)
}

// insertMin adds k as the new minimum of t. k must be smaller than all keys in t.
func insertMin[K any](k K, t *node[K]) *node[K] {
	if t == nil {
		return singleton(k)
	}
	return balanceL(t.key, insertMin(k, t.left), t.right)
}

// insertMax adds k as the new maximum of t. k must be greater than all keys in t.
func insertMax[K any](k K, t *node[K]) *node[K] {
	if t == nil {
		return singleton(k)
	}
	return balanceR(t.key, t.left, insertMax(k, t.right))
}

// merge joins l and r, where all keys of l < all keys of r. The sizes of l and r
// are unconstrained.
func merge[K any](l, r *node[K]) *node[K] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case delta*l.size < r.size:
		return balanceL(r.key, merge(l, r.left), r.right)
	case delta*r.size < l.size:
		return balanceR(l.key, l.left, merge(l.right, r))
	}
	return glue(l, r)
}

// glue joins two trees which are balanced with respect to each other, where all
// keys of l < all keys of r. The new root is taken from the larger tree.
func glue[K any](l, r *node[K]) *node[K] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case l.size > r.size:
		m, l2 := maxViewSure(l)
		return balanceR(m, l2, r)
	}
	m, r2 := minViewSure(r)
	return balanceL(m, l, r2)
}

// minViewSure splits a non-empty tree into its minimum and the remaining tree.
func minViewSure[K any](t *node[K]) (K, *node[K]) {
	assertThat(t != nil, "minimum of empty tree requested")
	if t.left == nil {
		return t.key, t.right
	}
	m, l := minViewSure(t.left)
	return m, balanceR(t.key, l, t.right)
}

// maxViewSure splits a non-empty tree into its maximum and the remaining tree.
func maxViewSure[K any](t *node[K]) (K, *node[K]) {
	assertThat(t != nil, "maximum of empty tree requested")
	if t.right == nil {
		return t.key, t.left
	}
	m, r := maxViewSure(t.right)
	return m, balanceL(t.key, t.left, r)
}

func deleteMin[K any](t *node[K]) *node[K] {
	switch {
	case t == nil:
		return nil
	case t.left == nil:
		return t.right
	}
	return balanceR(t.key, deleteMin(t.left), t.right)
}

func deleteMax[K any](t *node[K]) *node[K] {
	switch {
	case t == nil:
		return nil
	case t.right == nil:
		return t.left
	}
	return balanceL(t.key, t.left, deleteMax(t.right))
}
