package collections

import "fmt"

// This file contains package-level generic functions for operations that
// transform a Collection[T] into something of another type.
//
//	salaries := collections.Pluck(
//	    collections.From(ds.Employees()).Where(isGerman),
//	    func(e dataset.Employee) float64 { return e.Salary },
//	)

// Map applies fn to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item, i)
	}
	return &Collection[U]{items: out}
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results one level. FlatMap(c, fn) equals Flatten(Map(c, fn)).
//
//	skills := collections.FlatMap(team, func(e dataset.Employee, _ int) []string {
//	    return e.Skills
//	})
func FlatMap[T, U any](c *Collection[T], fn func(T, int) []U) *Collection[U] {
	out := make([]U, 0, len(c.items))
	for i, item := range c.items {
		out = append(out, fn(item, i)...)
	}
	return &Collection[U]{items: out}
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	total := collections.Reduce(c, func(acc float64, e dataset.Employee, _ int) float64 {
//	    return acc + e.Salary
//	}, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range c.items {
		result = fn(result, item, i)
	}
	return result
}

// Pluck extracts a single field U from every item T.
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	out := make([]U, len(c.items))
	for i, item := range c.items {
		out[i] = fn(item)
	}
	return &Collection[U]{items: out}
}

// Unique removes items whose key, as extracted by fn, has already been seen.
// The first occurrence of every key is kept, in input order.
func Unique[T any, K comparable](c *Collection[T], fn func(T) K) *Collection[T] {
	seen := make(map[K]struct{}, len(c.items))
	return c.Filter(func(item T, _ int) bool {
		k := fn(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) map[K]T {
	out := make(map[K]T, len(c.items))
	for _, item := range c.items {
		out[fn(item)] = item
	}
	return out
}

// CountBy counts the items per key extracted by fn. Tallies are returned in
// the order their keys were first seen.
func CountBy[T any, K comparable](c *Collection[T], fn func(T) K) *Collection[Tally[K]] {
	return CountEach(c, func(item T) []K { return []K{fn(item)} })
}

// CountEach counts, for every key, how many items carry it among the keys
// returned by fn. A key repeated within one item counts once for that item.
// Tallies are returned in the order their keys were first seen.
//
//	skillCounts := collections.CountEach(employees,
//	    func(e dataset.Employee) []string { return e.Skills })
func CountEach[T any, K comparable](c *Collection[T], fn func(T) []K) *Collection[Tally[K]] {
	index := make(map[K]int)
	out := make([]Tally[K], 0)
	for _, item := range c.items {
		counted := make(map[K]struct{})
		for _, k := range fn(item) {
			if _, dup := counted[k]; dup {
				continue
			}
			counted[k] = struct{}{}
			if i, ok := index[k]; ok {
				out[i].Count++
				continue
			}
			index[k] = len(out)
			out = append(out, Tally[K]{Key: k, Count: 1})
		}
	}
	return &Collection[Tally[K]]{items: out}
}

// MaxBy returns the item of items with the largest value extracted by fn.
// Returns [ErrEmptyCollection] when items is empty.
func MaxBy[T any](items []T, fn func(T) float64) (T, error) {
	return From(items).Max(fn)
}

// MinBy returns the item of items with the smallest value extracted by fn.
// Returns [ErrEmptyCollection] when items is empty.
func MinBy[T any](items []T, fn func(T) float64) (T, error) {
	return From(items).Min(fn)
}

// Flatten flattens a Collection[[]T] into a Collection[T], one level only.
//
//	flat := collections.Flatten(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Flatten[T any](c *Collection[[]T]) *Collection[T] {
	total := 0
	for _, chunk := range c.items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range c.items {
		out = append(out, chunk...)
	}
	return &Collection[T]{items: out}
}

// FlattenDepth flattens nested []any values (and *Collection[any] values)
// up to depth levels. Depth 1 collapses exactly one level of nesting; items
// that are not slices are kept as they are, so an already-flat collection
// comes back unchanged.
//
//	c := collections.New[any](1, []any{[]any{2}, []any{3}})
//	collections.FlattenDepth(c, 1) // → [1, [2], [3]]
//	collections.FlattenDepth(c, 2) // → [1, 2, 3]
func FlattenDepth(c *Collection[any], depth int) (*Collection[any], error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	return &Collection[any]{items: flattenInto(make([]any, 0, len(c.items)), c.items, depth)}, nil
}

// FlattenDeep flattens nested []any values of arbitrary depth.
func FlattenDeep(c *Collection[any]) *Collection[any] {
	return &Collection[any]{items: flattenInto(make([]any, 0, len(c.items)), c.items, -1)}
}

// flattenInto appends items to out, descending into nested slices while
// depth is not zero. A negative depth means no limit.
func flattenInto(out, items []any, depth int) []any {
	for _, item := range items {
		if depth == 0 {
			out = append(out, item)
			continue
		}
		switch v := item.(type) {
		case []any:
			out = flattenInto(out, v, depth-1)
		case *Collection[any]:
			out = flattenInto(out, v.items, depth-1)
		default:
			out = append(out, item)
		}
	}
	return out
}
