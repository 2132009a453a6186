package collections

import "fmt"

// Tally is a key together with the number of items counted for it.
// It is the element type produced by [CountBy] and [CountEach].
type Tally[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// String returns a human-readable representation: "key=count".
func (t Tally[K]) String() string {
	return fmt.Sprintf("%v=%d", t.Key, t.Count)
}

// ByCountDesc orders tallies by descending count. Equal counts are ordered
// by tieLess when it is non-nil; otherwise they keep their current order.
//
//	top3 := collections.CountEach(employees, skillsOf).
//	    Sort(collections.ByCountDesc[string](nil)).
//	    Take(3)
func ByCountDesc[K comparable](tieLess func(a, b K) bool) func(a, b Tally[K]) bool {
	return func(a, b Tally[K]) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return tieLess != nil && tieLess(a.Key, b.Key)
	}
}
