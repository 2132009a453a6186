// Package arr holds small generic helpers for plain Go slices and a
// dot-notation reader for nested map[string]any records.
//
// None of the slice helpers modifies its input:
//
//	germans  := arr.Filter(employees, func(e dataset.Employee, _ int) bool { return e.Nationality == "DE" })
//	salaries := arr.Pluck(germans, func(e dataset.Employee) float64 { return e.Salary })
//	ids      := arr.Unique([]int{104, 101, 103, 101})
//
// Untyped records, for example a JSON document decoded into map[string]any,
// are read with dot-separated paths:
//
//	city, ok := arr.Get(m, "personalInfo.address.city")
//	salary, ok := arr.Float(m, "salary")
package arr
