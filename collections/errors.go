package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty: Average, Min, Max, MinBy, MaxBy.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrNoMatchingItems is returned by FirstOrFail when no item satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrInvalidDepth is returned by FlattenDepth for a negative depth.
	ErrInvalidDepth = errors.New("collections: flatten depth must not be negative")
)
