package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/hasbyte1/roster/arr"
	"github.com/hasbyte1/roster/dataset"
	"github.com/hasbyte1/roster/fn"
)

// AnyNationality matches every employee in [EmployeesByNationality].
const AnyNationality = ""

// EmployeesByNationality returns a filter keeping only the employees of the
// given nationality. It is a pipeline stage for [fn.Pipe3] and friends.
func EmployeesByNationality(nationality string) func([]dataset.Employee) []dataset.Employee {
	match := isNationality(nationality)
	return func(employees []dataset.Employee) []dataset.Employee {
		return arr.Filter(employees, func(e dataset.Employee, _ int) bool { return match(e) })
	}
}

func isNationality(nationality string) func(dataset.Employee) bool {
	if nationality == AnyNationality {
		always := fn.Always(true)
		return func(e dataset.Employee) bool { return always(e) }
	}
	return func(e dataset.Employee) bool { return e.Nationality == nationality }
}

// Salaries returns the salary of every employee, in order.
func Salaries(employees []dataset.Employee) []float64 {
	return arr.Pluck(employees, salaryOf)
}

// Sum adds up ns.
func Sum(ns []float64) float64 {
	return arr.Sum(ns, func(n float64) float64 { return n })
}

// Half returns n / 2.
func Half(n float64) float64 { return n / 2 }

// Round2 rounds to two decimal places, halves away from zero. The half is
// judged on the shortest decimal form of v, so 1.005 rounds to 1.01 even
// though its binary value lies just below.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return math.Round(v*100) / 100
	}
	scaled, err := strconv.ParseFloat(mant+"e"+strconv.Itoa(e+2), 64)
	if err != nil {
		return math.Round(v*100) / 100
	}
	return math.Round(scaled) / 100
}

func salaryOf(e dataset.Employee) float64 { return e.Salary }

func skillsOf(e dataset.Employee) []string { return e.Skills }

func earnsAtLeast(amount float64) func(dataset.Employee) bool {
	return func(e dataset.Employee) bool { return e.Salary >= amount }
}

func knows(skill string) func(dataset.Employee) bool {
	return func(e dataset.Employee) bool { return e.HasSkill(skill) }
}
