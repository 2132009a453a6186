package collections

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Collection is a generic, read-only wrapper around a slice of records.
//
// Every method that transforms the collection returns a *new* Collection and
// never touches the receiver's backing slice, so a collection built over a
// loaded dataset can be queried any number of times without being altered.
// Concurrent reads are safe.
//
//	c := collections.From(ds.Employees())
//	germans := c.Filter(func(e dataset.Employee, _ int) bool { return e.Nationality == "DE" })
//
// Operations that change the element type (Map, CountBy, Flatten, ...) are
// package-level functions because methods cannot introduce type parameters.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	for _, item := range c.items {
		if fn(item) {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNoMatchingItems
}

// Contains reports whether at least one item satisfies fn.
// It stops at the first match.
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	for _, item := range c.items {
		if fn(item) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn(item, index)
// returns true, in their original order.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	out := make([]T, 0, len(c.items))
	for i, item := range c.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return &Collection[T]{items: out}
}

// Where filters with a plain predicate, for use with the combinators in
// package fn that do not know about indices.
func (c *Collection[T]) Where(fn func(T) bool) *Collection[T] {
	return c.Filter(func(item T, _ int) bool { return fn(item) })
}

// WhereBetween keeps the items whose value, as extracted by fn, lies in the
// closed range [from, to]. Items for which fn reports no value are dropped.
func (c *Collection[T]) WhereBetween(fn func(T) (float64, bool), from, to float64) *Collection[T] {
	return c.Filter(func(item T, _ int) bool {
		v, ok := fn(item)
		return ok && v >= from && v <= to
	})
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	n := len(c.items)
	out := make([]T, n)
	for i, item := range c.items {
		out[n-1-i] = item
	}
	return &Collection[T]{items: out}
}

// Sort returns a new collection sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	out := make([]T, len(c.items))
	copy(out, c.items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &Collection[T]{items: out}
}

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		start := total + n
		if start < 0 {
			start = 0
		}
		return From(c.items[start:])
	}
	if n > total {
		n = total
	}
	return From(c.items[:n])
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all items using fn to extract numeric values.
func (c *Collection[T]) Sum(fn func(T) float64) float64 {
	var sum float64
	for _, item := range c.items {
		sum += fn(item)
	}
	return sum
}

// Average returns the arithmetic mean of the values extracted by fn.
// Returns [ErrEmptyCollection] when there is nothing to average.
func (c *Collection[T]) Average(fn func(T) float64) (float64, error) {
	if len(c.items) == 0 {
		return 0, ErrEmptyCollection
	}
	return c.Sum(fn) / float64(len(c.items)), nil
}

// Min returns the item with the smallest value extracted by fn. The first
// such item wins on ties. Returns [ErrEmptyCollection] on an empty collection.
func (c *Collection[T]) Min(fn func(T) float64) (T, error) {
	return extreme(c.items, fn, func(v, best float64) bool { return v < best })
}

// Max returns the item with the largest value extracted by fn. The first
// such item wins on ties. Returns [ErrEmptyCollection] on an empty collection.
func (c *Collection[T]) Max(fn func(T) float64) (T, error) {
	return extreme(c.items, fn, func(v, best float64) bool { return v > best })
}

func extreme[T any](items []T, fn func(T) float64, better func(v, best float64) bool) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyCollection
	}
	bestItem, bestVal := items[0], fn(items[0])
	for _, item := range items[1:] {
		if v := fn(item); better(v, bestVal) {
			bestVal, bestItem = v, item
		}
	}
	return bestItem, nil
}
