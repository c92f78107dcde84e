package set

import (
	"reflect"

	"github.com/npillmayer/ordset"
)

// Balance parameters. A node is balanced if neither subtree holds more than
// delta times the keys of the other one. ratio decides between single and double
// rotations. (3, 2) is the only integer pair for which the rebalancing operations
// are known to restore balance after a single insertion or deletion.
const (
	delta = 3
	ratio = 2
)

// node is a node of a size-balanced tree. The empty tree is represented by nil.
// Nodes are never modified after construction, which lets trees share them freely.
type node[K any] struct {
	size        int // number of keys in this subtree, including key
	key         K
	left, right *node[K]
}

func size[K any](t *node[K]) int {
	if t == nil {
		return 0
	}
	return t.size
}

func singleton[K any](k K) *node[K] {
	return &node[K]{size: 1, key: k}
}

// bin assembles a node without rebalancing. l and r must be balanced with respect
// to each other.
func bin[K any](k K, l, r *node[K]) *node[K] {
	return &node[K]{size: size(l) + size(r) + 1, key: k, left: l, right: r}
}

// --- Environment -----------------------------------------------------------

// env holds the properties a set shares with every set derived from it.
type env[K any] struct {
	compare ordset.Ordering[K]
	same    func(a, b K) bool // identity of keys; nil if K has none we may test cheaply
	checked bool              // validate every result (Checked option)
}

func newEnv[K any](o ordset.Ordering[K]) *env[K] {
	return &env[K]{compare: o, same: identity[K]()}
}

// identity returns an identity test for keys of scalar or pointer type. Two such
// keys which are == are indistinguishable, so replacing one by the other may be
// skipped. For other types (structs, interfaces, …) nil is returned and equal keys
// are always replaced.
func identity[K any]() func(a, b K) bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		return func(a, b K) bool {
			return any(a) == any(b)
		}
	}
	return nil
}
