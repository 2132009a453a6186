// Package collections provides a generic, fluent Collection type for
// querying read-only record sets: filtering, ranking, grouping, counting and
// aggregating without ever modifying the records being queried.
//
// # Overview
//
// The central type is [Collection][T], a generic wrapper around a slice of T
// that exposes a chainable API:
//
//	top := collections.CountEach(collections.From(employees),
//	    func(e dataset.Employee) []string { return e.Skills }).
//	    Sort(collections.ByCountDesc[string](nil)).
//	    Take(3)
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged. Reversing, sorting or filtering a collection built over shared
// records never reorders or alters the source slice.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [FlatMap], [Reduce], [Pluck], [Unique], [KeyBy],
// [CountBy], [CountEach], [Flatten], [FlattenDepth], [FlattenDeep].
//
// # Empty input
//
// Aggregations that have no meaningful value on an empty collection
// ([Collection.Average], [Collection.Min], [Collection.Max], [MinBy],
// [MaxBy]) fail with [ErrEmptyCollection] instead of returning a zero value.
package collections
