package set

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/ordset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomPair creates a set and a roaring bitmap holding the same n random keys
// below limit.
func randomPair(rg *rand.Rand, n int, limit uint32) (Set[uint32], *roaring.Bitmap) {
	keys := make([]uint32, n)
	for i := range keys {
		keys[i] = uint32(rg.Int63n(int64(limit)))
	}
	return Of(keys...), roaring.BitmapOf(keys...)
}

func sameKeys(t *testing.T, what string, bm *roaring.Bitmap, s Set[uint32]) {
	t.Helper()
	require.True(t, s.Valid(), "%s: result invalid", what)
	if diff := gocmp.Diff(bm.ToArray(), s.ToAscList(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("%s: mismatch with roaring oracle (-want +got):\n%s", what, diff)
	}
}

func TestAlgebraAgainstRoaring(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.set")
	defer teardown()
	//
	rg := rand.New(rand.NewSource(1))
	for round := 0; round < 60; round++ {
		a, abm := randomPair(rg, rg.Intn(400), 1000)
		b, bbm := randomPair(rg, rg.Intn(40)*rg.Intn(20), 1000)
		sameKeys(t, "union", roaring.Or(abm, bbm), a.Union(b))
		sameKeys(t, "union (flipped)", roaring.Or(abm, bbm), b.Union(a))
		sameKeys(t, "intersection", roaring.And(abm, bbm), a.Intersection(b))
		sameKeys(t, "difference", roaring.AndNot(abm, bbm), a.Difference(b))
		sameKeys(t, "difference (flipped)", roaring.AndNot(bbm, abm), b.Difference(a))
		assert.Equal(t, !abm.Intersects(bbm), a.Disjoint(b), "disjoint")
		isSub := roaring.And(abm, bbm).GetCardinality() == abm.GetCardinality()
		assert.Equal(t, isSub, a.IsSubsetOf(b), "subset")
	}
}

func TestAlgebraLaws(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	for round := 0; round < 40; round++ {
		a, _ := randomPair(rg, rg.Intn(200), 300)
		b, _ := randomPair(rg, rg.Intn(200), 300)
		u, i, d := a.Union(b), a.Intersection(b), a.Difference(b)
		assert.Equal(t, a.Size()+b.Size(), u.Size()+i.Size())
		assert.True(t, a.Equal(i.Union(d)), "a = (a ∩ b) ∪ (a \\ b)")
		assert.True(t, i.IsSubsetOf(a), "a ∩ b ⊆ a")
		assert.True(t, i.IsSubsetOf(b), "a ∩ b ⊆ b")
		assert.True(t, a.IsSubsetOf(u), "a ⊆ a ∪ b")
		assert.True(t, d.Disjoint(b), "(a \\ b) ∩ b = ∅")
		assert.True(t, u.Equal(b.Union(a)))
		assert.True(t, i.Equal(b.Intersection(a)))
	}
}

func TestUnionIdempotentAndSharing(t *testing.T) {
	s := Of(span(1, 100)...)
	if s.Union(s).root != s.root {
		t.Error("expected s ∪ s to return s itself")
	}
	sub := s.Filter(func(k int) bool { return k%10 == 0 })
	if u := s.Union(sub); u.root != s.root {
		t.Logf("union =%s", printTree(u))
		t.Error("expected union with a subset to return the original tree")
	}
	if d := s.Difference(Of(1000, 2000)); d.root != s.root {
		t.Error("expected difference removing nothing to return the original tree")
	}
	if i := s.Intersection(s); i.root != s.root {
		t.Error("expected s ∩ s to return s itself")
	}
	assert.True(t, s.Difference(s).IsEmpty())
}

func TestUnionLeftBiased(t *testing.T) {
	a := ImmutableFunc(byKey).FromList(entry{1, "a1"}, entry{2, "a2"}, entry{3, "a3"})
	b := ImmutableFunc(byKey).FromList(entry{2, "b2"}, entry{3, "b3"}, entry{4, "b4"})
	labels := func(s Set[entry]) []string {
		return Foldl(s, func(acc []string, e entry) []string { return append(acc, e.label) }, []string{})
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "b4"}, labels(a.Union(b)))
	assert.Equal(t, []string{"a2", "a3"}, labels(a.Intersection(b)))
	single := ImmutableFunc(byKey).Singleton(entry{2, "s"})
	assert.Equal(t, []string{"s", "b3", "b4"}, labels(single.Union(b)))
	assert.Equal(t, []string{"b2", "b3", "b4"}, labels(b.Union(single)))
}

func TestEmptyOperands(t *testing.T) {
	s, e := Of(1, 2, 3), Immutable[int]()
	assert.True(t, s.Union(e).Equal(s))
	assert.True(t, e.Union(s).Equal(s))
	assert.True(t, s.Intersection(e).IsEmpty())
	assert.True(t, e.Intersection(s).IsEmpty())
	assert.True(t, s.Difference(e).Equal(s))
	assert.True(t, e.Difference(s).IsEmpty())
	assert.True(t, e.IsSubsetOf(s))
	assert.False(t, s.IsSubsetOf(e))
	assert.True(t, e.Disjoint(s))
}

func TestProperSubset(t *testing.T) {
	a, b := Of(1, 2), Of(1, 2, 3)
	assert.True(t, a.IsProperSubsetOf(b))
	assert.False(t, b.IsProperSubsetOf(b))
	assert.False(t, b.IsProperSubsetOf(a))
	assert.False(t, Of(1, 4).IsSubsetOf(b))
}

func TestUnionsAndMonoid(t *testing.T) {
	u := Unions(Of(1, 2), Of(3), Of(2, 4), Immutable[int]())
	assert.Equal(t, []int{1, 2, 3, 4}, u.ToAscList())
	assert.True(t, Unions[int]().IsEmpty())
	m := Immutable[int]().UnionMonoid()
	c := ordset.Concat(m, Of(5), Of(1, 5), Of(3))
	assert.Equal(t, []int{1, 3, 5}, c.ToAscList())
	assert.True(t, m.Empty().IsEmpty())
}
