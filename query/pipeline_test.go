package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/roster/fn"
	"github.com/hasbyte1/roster/query"
)

func TestPipelineStages(t *testing.T) {
	ds := loadStaff(t)

	germans := query.EmployeesByNationality("DE")(ds.Employees())
	assert.Equal(t, []int{102, 103, 108}, ids(germans))

	salaries := query.Salaries(germans)
	assert.Equal(t, []float64{4100, 6200, 5500}, salaries)
	assert.Equal(t, 15800.0, query.Sum(salaries))
	assert.Equal(t, 7900.0, query.Half(query.Sum(salaries)))
	assert.Equal(t, 0.0, query.Sum(nil))
}

func TestPipelineComposesLikeNestedCalls(t *testing.T) {
	ds := loadStaff(t)
	byPL := query.EmployeesByNationality("PL")

	piped := fn.Pipe3(byPL, query.Salaries, query.Sum)(ds.Employees())
	nested := query.Sum(query.Salaries(byPL(ds.Employees())))
	assert.Equal(t, nested, piped)
}

func TestAnyNationalityKeepsEveryone(t *testing.T) {
	ds := loadStaff(t)
	assert.Len(t, query.EmployeesByNationality(query.AnyNationality)(ds.Employees()), 8)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.125, 0.13},
		{5954.8466, 5954.85},
		{5966.668333, 5966.67},
		{4919.998, 4920},
		{1.005, 1.01},
		{2.675, 2.68},
		{1000.005, 1000.01},
		{5954.845, 5954.85},
		{-1.005, -1.01},
		{12, 12},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, query.Round2(tt.in), "Round2(%v)", tt.in)
	}
}
