package ordset_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/ordset"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	h := ordset.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestNaturalAndReverse(t *testing.T) {
	o := ordset.Natural[int]()
	if o(1, 2) >= 0 || o(2, 1) <= 0 || o(3, 3) != 0 {
		t.Error("expected natural order on integers to be ascending")
	}
	r := ordset.Reverse(o)
	if r(1, 2) <= 0 || r(2, 1) >= 0 || r(3, 3) != 0 {
		t.Error("expected reversed order on integers to be descending")
	}
}

func TestBy(t *testing.T) {
	byLen := ordset.By(func(s string) int { return len(s) }, ordset.Natural[int]())
	if byLen("ab", "abc") >= 0 {
		t.Error("expected shorter string to order first")
	}
	if byLen("ab", "xy") != 0 {
		t.Error("expected strings of equal length to be equal under byLen")
	}
}

type concatenation struct{}

func (concatenation) Empty() string { return "" }
func (concatenation) Combine(a, b string) string { return a + b }

func TestConcat(t *testing.T) {
	s := ordset.Concat[string](concatenation{}, "a", "b", "c")
	if s != "abc" {
		t.Errorf("expected Concat to fold to 'abc', is %q", s)
	}
	if e := ordset.Concat[string](concatenation{}); e != "" {
		t.Errorf("expected Concat of nothing to be the identity, is %q", e)
	}
	upper := ordset.Compose(strings.ToUpper, strings.TrimSpace)
	if upper(" x ") != "X" {
		t.Errorf("expected composed function to produce 'X', is %q", upper(" x "))
	}
}
