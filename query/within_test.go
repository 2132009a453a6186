package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/roster/dataset"
	"github.com/hasbyte1/roster/query"
)

func TestWithinSalary(t *testing.T) {
	ds := loadStaff(t)
	got := query.Within(ds.Employees(), "salary", query.Range{From: 4000, To: 4100})
	assert.Equal(t, []int{101, 102}, ids(got))
}

func TestWithinIsInclusive(t *testing.T) {
	ds := loadStaff(t)

	lower := query.Within(ds.Employees(), "salary", query.Range{From: 3999.99, To: 3999.99})
	assert.Equal(t, []int{106}, ids(lower))

	upper := query.Within(ds.Employees(), "salary", query.Range{From: 0, To: 4100.01})
	assert.Equal(t, []int{101, 102, 106, 107}, ids(upper))
}

func TestWithinBudget(t *testing.T) {
	ds := loadStaff(t)

	tests := []struct {
		to   float64
		want []string
	}{
		{1e5, []string{"Atlas", "Draco"}},
		{1e6, []string{"Atlas", "Borealis", "Draco"}},
		{1e7, []string{"Atlas", "Borealis", "Cygnus", "Draco"}},
	}
	for _, tt := range tests {
		got := query.Within(ds.Projects(), "budget", query.Range{From: 0, To: tt.to})
		names := make([]string, len(got))
		for i, p := range got {
			names[i] = p.Name
		}
		assert.Equal(t, tt.want, names, "budget up to %v", tt.to)
	}
}

func TestWithinUnknownFieldMatchesNothing(t *testing.T) {
	ds := loadStaff(t)
	assert.Empty(t, query.Within(ds.Employees(), "budget", query.Range{From: 0, To: 1e9}))
}

func TestWithinEmptyRange(t *testing.T) {
	ds := loadStaff(t)
	assert.Empty(t, query.Within(ds.Employees(), "salary", query.Range{From: 5000, To: 4000}))
	assert.Empty(t, query.Within([]dataset.Employee{}, "salary", query.Range{From: 0, To: 1e9}))
}

func TestWithinMap(t *testing.T) {
	records := []map[string]any{
		{"name": "a", "stats": map[string]any{"score": 10}},
		{"name": "b", "stats": map[string]any{"score": 20.5}},
		{"name": "c", "stats": map[string]any{"score": "30"}},
		{"name": "d"},
		{"name": "e", "stats": map[string]any{"score": 30}},
	}
	got := query.WithinMap(records, "stats.score", query.Range{From: 10, To: 30})

	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r["name"].(string)
	}
	assert.Equal(t, []string{"a", "b", "e"}, names)
	assert.Len(t, records, 5)
}

func TestRangeContains(t *testing.T) {
	r := query.Range{From: 1, To: 2}
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(0.999))
	assert.False(t, r.Contains(2.001))
}
