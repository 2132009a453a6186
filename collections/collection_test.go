package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/roster/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Collection[int] { return collections.New(ns...) }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

type record struct {
	Name  string
	Score float64
}

func records() *collections.Collection[record] {
	return collections.New(
		record{"a", 2}, record{"b", 3}, record{"c", 8}, record{"d", 1},
		record{"e", 33}, record{"f", 76}, record{"g", 13}, record{"h", 32}, record{"i", 13},
	)
}

func score(r record) float64 { return r.Score }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestFrom(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z" // mutate original – should not affect the collection
	if c.All()[0] != "a" {
		t.Fatal("From did not copy the slice")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := ints(1, 2, 3)
	got := c.All()
	got[0] = 100
	assertSlice(t, c.All(), []int{1, 2, 3})
}

func TestString(t *testing.T) {
	if got := ints(1, 2).String(); got != "[1,2]" {
		t.Fatalf("String = %q", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

func TestFirstOrFail(t *testing.T) {
	got, err := ints(1, 2, 3, 4).FirstOrFail(func(n int) bool { return n > 2 })
	if err != nil || got != 3 {
		t.Fatalf("FirstOrFail(>2) = %v, %v", got, err)
	}
	_, err = ints(1, 2).FirstOrFail(func(n int) bool { return n > 5 })
	if !errors.Is(err, collections.ErrNoMatchingItems) {
		t.Fatalf("FirstOrFail err = %v", err)
	}
}

func TestContainsShortCircuits(t *testing.T) {
	calls := 0
	found := ints(1, 2, 3, 4).Contains(func(n int) bool { calls++; return n == 2 })
	if !found || calls != 2 {
		t.Fatalf("Contains found=%v calls=%d", found, calls)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestFilterPreservesOrderAndSource(t *testing.T) {
	c := ints(5, 1, 4, 2, 3)
	evens := c.Filter(func(n, _ int) bool { return n%2 == 0 })
	assertSlice(t, evens.All(), []int{4, 2})
	assertSlice(t, c.All(), []int{5, 1, 4, 2, 3})
}

func TestWhere(t *testing.T) {
	c := ints(1, 2, 3, 4)
	assertSlice(t, c.Where(func(n int) bool { return n > 2 }).All(), []int{3, 4})
}

func TestWhereBetweenIsInclusive(t *testing.T) {
	c := records()
	got := c.WhereBetween(func(r record) (float64, bool) { return r.Score, true }, 8, 33)
	names := collections.Pluck(got, func(r record) string { return r.Name }).All()
	assertSlice(t, names, []string{"c", "e", "g", "h", "i"})
}

func TestWhereBetweenDropsMissingValues(t *testing.T) {
	c := records()
	got := c.WhereBetween(func(r record) (float64, bool) { return r.Score, r.Name != "f" }, 0, 100)
	if len(got.All()) != len(c.All())-1 {
		t.Fatalf("WhereBetween kept %d items", len(got.All()))
	}
}

func TestReverseIsNonDestructive(t *testing.T) {
	list3 := ints(3, 6, 12, 24, 36, 39, 51, 63)
	list5 := ints(5, 15, 30, 40, 45, 55, 105)

	assertSlice(t, list3.Reverse().All(), []int{63, 51, 39, 36, 24, 12, 6, 3})
	assertSlice(t, list3.All(), []int{3, 6, 12, 24, 36, 39, 51, 63})
	assertSlice(t, list5.Reverse().All(), []int{105, 55, 45, 40, 30, 15, 5})
	assertSlice(t, list5.All(), []int{5, 15, 30, 40, 45, 55, 105})
}

func TestSortIsStable(t *testing.T) {
	c := records()
	sorted := c.Sort(func(a, b record) bool { return a.Score > b.Score })
	names := collections.Pluck(sorted, func(r record) string { return r.Name }).All()
	// g and i share a score and must keep their input order.
	assertSlice(t, names, []string{"f", "e", "h", "g", "i", "c", "b", "a", "d"})
	if c.All()[0].Name != "a" {
		t.Fatal("Sort modified the source collection")
	}
}

func TestTake(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	assertSlice(t, c.Take(3).All(), []int{1, 2, 3})
	assertSlice(t, c.Take(-2).All(), []int{4, 5})
	assertSlice(t, c.Take(10).All(), []int{1, 2, 3, 4, 5})
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

func TestSumAndAverage(t *testing.T) {
	c := ints(1, 2, 3, 4)
	f := func(n int) float64 { return float64(n) }
	if c.Sum(f) != 10 {
		t.Fatalf("Sum = %v", c.Sum(f))
	}
	avg, err := c.Average(f)
	if err != nil || avg != 2.5 {
		t.Fatalf("Average = %v, %v", avg, err)
	}
	if _, err := collections.New[int]().Average(f); !errors.Is(err, collections.ErrEmptyCollection) {
		t.Fatalf("Average on empty err = %v", err)
	}
}

func TestMinMax(t *testing.T) {
	c := records()
	maxItem, err := c.Max(score)
	if err != nil || maxItem != (record{"f", 76}) {
		t.Fatalf("Max = %v, %v", maxItem, err)
	}
	minItem, err := c.Min(score)
	if err != nil || minItem != (record{"d", 1}) {
		t.Fatalf("Min = %v, %v", minItem, err)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	c := collections.New[record]()
	if _, err := c.Max(score); !errors.Is(err, collections.ErrEmptyCollection) {
		t.Fatalf("Max on empty err = %v", err)
	}
	if _, err := c.Min(score); !errors.Is(err, collections.ErrEmptyCollection) {
		t.Fatalf("Min on empty err = %v", err)
	}
}

func TestMaxFirstWinsOnTie(t *testing.T) {
	c := collections.New(record{"x", 5}, record{"y", 5})
	got, _ := c.Max(score)
	if got.Name != "x" {
		t.Fatalf("Max tie = %v; want x", got)
	}
}
