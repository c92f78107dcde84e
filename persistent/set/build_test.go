package set

import (
	"math/rand"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromListAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.set")
	defer teardown()
	//
	for n := 0; n <= 130; n++ {
		s := Of(span(1, n)...)
		if !s.Valid() {
			t.Fatalf("set from ascending list of %d keys is invalid:%s", n, printTree(s))
		}
		if diff := gocmp.Diff(span(1, n), s.ToAscList()); diff != "" {
			t.Fatalf("FromList(1…%d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestFromListFallsBackOnDisorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.set")
	defer teardown()
	//
	xs := append(span(1, 20), 5, 25, 21, 22, 30)
	s := Of(xs...)
	require.True(t, s.Valid())
	assert.Equal(t, append(span(1, 22), 25, 30), s.ToAscList())
	// disorder inside a subtree under construction
	xs = append(span(1, 10), 100, 50, 60)
	s = Of(xs...)
	require.True(t, s.Valid())
	assert.Equal(t, append(span(1, 10), 50, 60, 100), s.ToAscList())
}

func TestFromListRandom(t *testing.T) {
	rg := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := rg.Intn(300)
		xs := make([]int, n)
		oracle := make(map[int]struct{})
		for i := range xs {
			xs[i] = rg.Intn(200)
			oracle[xs[i]] = struct{}{}
		}
		s := Of(xs...)
		require.True(t, s.Valid())
		require.Equal(t, len(oracle), s.Size())
		for k := range oracle {
			require.True(t, s.Member(k))
		}
	}
}

func TestFromListLastWins(t *testing.T) {
	s := ImmutableFunc(byKey).FromList(entry{2, "a"}, entry{1, "b"}, entry{2, "c"})
	assert.Equal(t, "c", s.FindMax().label)
}

func TestFromAscListCollapsesRuns(t *testing.T) {
	s := ImmutableFunc(byKey).FromAscList(
		entry{1, "a"}, entry{1, "b"}, entry{2, "c"}, entry{3, "d"}, entry{3, "e"}, entry{3, "f"})
	require.Equal(t, 3, s.Size())
	require.True(t, s.Valid())
	labels := []string{}
	for e := range s.All() {
		labels = append(labels, e.label)
	}
	assert.Equal(t, []string{"b", "c", "f"}, labels)
}

func TestFromDescList(t *testing.T) {
	s := Immutable[int]().FromDescList(9, 9, 7, 5, 5, 1)
	require.True(t, s.Valid())
	assert.Equal(t, []int{1, 5, 7, 9}, s.ToAscList())
	d := Immutable[int]().FromDistinctDescList(6, 5, 4, 3, 2, 1)
	require.True(t, d.Valid())
	assert.Equal(t, span(1, 6), d.ToAscList())
}

func TestFromDistinctAscListRoundTrip(t *testing.T) {
	for n := 0; n < 100; n++ {
		xs := span(1, n)
		s := Immutable[int]().FromDistinctAscList(xs...)
		require.True(t, s.Valid(), "FromDistinctAscList(1…%d) invalid", n)
		if diff := gocmp.Diff(xs, s.ToAscList()); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSortedBuildersWithUnsortedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.set")
	defer teardown()
	//
	xs := []int{3, 1, 2, 2, 8, 5}
	for _, s := range []Set[int]{
		Immutable[int]().FromAscList(xs...),
		Immutable[int]().FromDescList(xs...),
		Immutable[int]().FromDistinctAscList(xs...),
		Immutable[int]().FromDistinctDescList(xs...),
	} {
		require.True(t, s.Valid(), "expected set built from unsorted input to be well-formed")
		assert.Equal(t, []int{1, 2, 3, 5, 8}, s.ToAscList())
	}
}

func TestBuildersOnTinyInput(t *testing.T) {
	var zero Set[int]
	assert.True(t, zero.FromList().IsEmpty())
	assert.Equal(t, []int{4}, zero.FromList(4).ToAscList())
	assert.Equal(t, []int{4}, Immutable[int]().FromAscList(4).ToAscList())
	assert.True(t, Immutable[int]().FromDistinctAscList().IsEmpty())
}

func TestRoundTripFromToList(t *testing.T) {
	s := Of(42, 7, 19, 3, 88, 61)
	r := Immutable[int]().FromList(s.ToAscList()...)
	assert.True(t, r.Equal(s))
	r = Immutable[int]().FromList(s.ToDescList()...)
	assert.True(t, r.Equal(s))
}
