/*
Command setcheck runs a randomized soak test against persistent sets.

It applies a random sequence of edits and set-algebra operations to a
persistent set of integers, checks every version for well-formedness and
compares it with a roaring bitmap. Older versions are re-checked at the end to
verify that no operation changed them.

	setcheck --ops 100000 --seed 42 --keyspace 5000 --checked

*/
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/alexflint/go-arg"
	"github.com/dustin/go-humanize"
	"github.com/npillmayer/ordset/persistent/set"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

type args struct {
	Ops      int    `arg:"--ops" help:"number of random operations" default:"10000"`
	Seed     int64  `arg:"--seed" help:"seed for the random generator; 0 selects a time-based seed"`
	Keyspace uint32 `arg:"--keyspace" help:"keys are drawn from [0, keyspace)" default:"1000"`
	Checked  bool   `arg:"--checked" help:"validate every intermediate set"`
	Trace    bool   `arg:"--trace" help:"trace fallbacks of the set builders"`
}

func (args) Description() string {
	return "setcheck runs a randomized soak test against persistent sets"
}

func main() {
	err := mainErr()
	if err != nil {
		log.Printf("error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	var a args
	p := arg.MustParse(&a)
	if a.Ops < 0 {
		p.Fail("--ops must not be negative")
	}
	if a.Keyspace == 0 {
		p.Fail("--keyspace must be positive")
	}
	if a.Seed == 0 {
		a.Seed = time.Now().UnixNano()
	}
	if a.Trace {
		tracing.Select("persistent.set").SetTraceLevel(tracing.LevelDebug)
	}
	start := time.Now()
	r, err := soak(a)
	if err != nil {
		return errors.Wrapf(err, "soak with seed %d", a.Seed)
	}
	fmt.Printf("%s operations on %s keys in %v (seed %d)\n",
		humanize.Comma(int64(r.ops)), humanize.Comma(int64(r.final)),
		time.Since(start).Round(time.Millisecond), a.Seed)
	fmt.Printf("max size %s, %s versions re-checked\n",
		humanize.Comma(int64(r.maxSize)), humanize.Comma(int64(r.versions)))
	return nil
}

type report struct {
	ops, final, maxSize, versions int
}

// version is a retained set together with the keys it held when retained.
type version struct {
	s    set.Set[uint32]
	keys *roaring.Bitmap
}

func soak(a args) (report, error) {
	rg := rand.New(rand.NewSource(a.Seed))
	var opts []set.Option[uint32]
	if a.Checked {
		opts = append(opts, set.Checked[uint32]())
	}
	s := set.Immutable(opts...)
	oracle := roaring.New()
	var r report
	var versions []version
	for i := 0; i < a.Ops; i++ {
		op := step(rg, a.Keyspace, s, oracle)
		s, oracle = op.s, op.oracle
		if err := compare(s, oracle); err != nil {
			return r, errors.Wrapf(err, "after operation #%d (%s)", i, op.name)
		}
		r.ops++
		r.maxSize = max(r.maxSize, s.Size())
		if i%1000 == 0 {
			versions = append(versions, version{s: s, keys: oracle.Clone()})
		}
	}
	for i, v := range versions {
		if err := compare(v.s, v.keys); err != nil {
			return r, errors.Wrapf(err, "retained version #%d", i)
		}
	}
	r.final = s.Size()
	r.versions = len(versions)
	return r, nil
}

type outcome struct {
	name   string
	s      set.Set[uint32]
	oracle *roaring.Bitmap
}

// step applies one random operation to s and the same operation to a copy of
// oracle.
func step(rg *rand.Rand, keyspace uint32, s set.Set[uint32], oracle *roaring.Bitmap) outcome {
	o := oracle.Clone()
	k := uint32(rg.Int63n(int64(keyspace)))
	switch n := rg.Intn(10); {
	case n < 4:
		o.Add(k)
		return outcome{"insert", s.Insert(k), o}
	case n < 7:
		o.Remove(k)
		return outcome{"delete", s.Delete(k), o}
	case n == 7:
		other, bm := randomSet(rg, keyspace, s)
		return outcome{"union", s.Union(other), roaring.Or(o, bm)}
	case n == 8:
		other, bm := randomSet(rg, keyspace, s)
		if rg.Intn(2) == 0 {
			return outcome{"difference", s.Difference(other), roaring.AndNot(o, bm)}
		}
		return outcome{"intersection", s.Intersection(other), roaring.And(o, bm)}
	default:
		lt, gt := s.Split(k)
		if rg.Intn(2) == 0 {
			o.RemoveRange(uint64(k), uint64(keyspace))
			return outcome{"split", lt, o}
		}
		o.Remove(k)
		return outcome{"split/union", lt.Union(gt), o}
	}
}

// randomSet creates a random set ordered like s, together with its bitmap.
func randomSet(rg *rand.Rand, keyspace uint32, s set.Set[uint32]) (set.Set[uint32], *roaring.Bitmap) {
	n := rg.Intn(int(keyspace)/4 + 1)
	keys := make([]uint32, n)
	for i := range keys {
		keys[i] = uint32(rg.Int63n(int64(keyspace)))
	}
	return s.FromList(keys...), roaring.BitmapOf(keys...)
}

func compare(s set.Set[uint32], bm *roaring.Bitmap) error {
	if !s.Valid() {
		return errors.New("set is not well-formed")
	}
	if uint64(s.Size()) != bm.GetCardinality() {
		return errors.Errorf("set has %d keys, expected %d", s.Size(), bm.GetCardinality())
	}
	it := bm.Iterator()
	for k := range s.All() {
		if !it.HasNext() {
			return errors.Errorf("unexpected key %d", k)
		}
		if x := it.Next(); x != k {
			return errors.Errorf("found key %d, expected %d", k, x)
		}
	}
	return nil
}
