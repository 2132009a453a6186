package query

import (
	"fmt"

	"github.com/hasbyte1/roster/fn"
)

// Select calls the method called name on every item and collects the
// results, in order. It fails on the first item that lacks a suitable
// method; see [fn.Method].
//
//	names, err := query.Select[dataset.Employee, string](team, "FullName")
func Select[T, R any](items []T, name string) ([]R, error) {
	call := fn.Method[R](name)
	out := make([]R, 0, len(items))
	for i, item := range items {
		r, err := call(item)
		if err != nil {
			return nil, fmt.Errorf("query: select item %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}
