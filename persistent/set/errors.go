package set

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors used as panic values for violated preconditions. Recover and test with
// errors.Is if you must, but these signal programming errors.
var (
	ErrEmptySet        = errors.New("set is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotMember       = errors.New("key is not an element of the set")
	ErrNoOrdering      = errors.New("set has no ordering; create it with set.Immutable or set.ImmutableFunc")
	ErrCorrupt         = errors.New("set violates its invariants")
)

func fatal(err error, format string, args ...interface{}) {
	panic(errors.Wrapf(err, format, args...))
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("set: "+msg, msgargs...)
		panic(msg)
	}
}
