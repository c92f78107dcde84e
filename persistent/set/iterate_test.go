package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllAndBackward(t *testing.T) {
	s := Of(3, 1, 2)
	var asc, desc []int
	for k := range s.All() {
		asc = append(asc, k)
	}
	for k := range s.Backward() {
		desc = append(desc, k)
	}
	assert.Equal(t, []int{1, 2, 3}, asc)
	assert.Equal(t, []int{3, 2, 1}, desc)
	assert.Equal(t, []int{3, 2, 1}, s.ToDescList())
	assert.Equal(t, s.ToAscList(), s.Elems())
	// sequences are restartable
	n := 0
	for range s.All() {
		n++
	}
	assert.Equal(t, 3, n)
}

func TestAllStopsEarly(t *testing.T) {
	s := Of(span(1, 1000)...)
	var seen []int
	for k := range s.All() {
		if k > 3 {
			break
		}
		seen = append(seen, k)
	}
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestEqualIgnoresShape(t *testing.T) {
	a := Of(span(1, 50)...)
	b := Immutable[int]()
	for k := 50; k >= 1; k-- {
		b = b.Insert(k)
	}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.Delete(7)))
	assert.False(t, a.Equal(b.Delete(7).Insert(51)))
	assert.True(t, Immutable[int]().Equal(Set[int]{}))
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b Set[int]
		sign int
	}{
		{Of(1, 2, 3), Of(1, 2, 3), 0},
		{Of(1, 2), Of(1, 2, 3), -1},
		{Of(1, 2, 3), Of(1, 2), 1},
		{Of(1, 3), Of(1, 2, 3), 1},
		{Immutable[int](), Of(1), -1},
		{Of(1), Immutable[int](), 1},
	}
	for i, c := range cases {
		got := c.a.Compare(c.b)
		if sign(got) != c.sign {
			t.Errorf("%d: expected Compare(%v, %v) to have sign %d, is %d", i,
				c.a.ToAscList(), c.b.ToAscList(), c.sign, got)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
