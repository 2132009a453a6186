package query

import (
	"github.com/hasbyte1/roster/arr"
	"github.com/hasbyte1/roster/collections"
	"github.com/hasbyte1/roster/dataset"
)

// Range is a closed numeric interval: both From and To are inside it.
type Range struct {
	From float64
	To   float64
}

// Contains reports whether From <= v <= To.
func (r Range) Contains(v float64) bool { return v >= r.From && v <= r.To }

// Within returns the items whose numeric field lies in r, in input order.
// Items without such a field are left out.
//
//	query.Within(ds.Employees(), "salary", query.Range{From: 4000, To: 4100})
//	query.Within(ds.Projects(), "budget", query.Range{From: 0, To: 1e6})
func Within[T dataset.Measurable](items []T, field string, r Range) []T {
	measure := func(item T) (float64, bool) { return item.Measure(field) }
	return collections.From(items).WhereBetween(measure, r.From, r.To).All()
}

// WithinMap is [Within] for untyped records. field is a dot-notation path
// such as "salary" or "stats.score"; values that are missing or not numbers
// are left out.
func WithinMap(records []map[string]any, field string, r Range) []map[string]any {
	return arr.Filter(records, func(rec map[string]any, _ int) bool {
		v, ok := arr.Float(rec, field)
		return ok && r.Contains(v)
	})
}
