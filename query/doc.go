// Package query answers questions about a [dataset.Dataset]: who earns within
// a range, which skills a project team covers, how salaries average out per
// skill, which skills and office countries rank highest.
//
// Queries are pure. They never modify the dataset and return equal results
// for equal arguments. The dataset is injected into an [Engine]; nothing in
// this package reaches for shared global state.
//
//	eng := query.New(ds, query.WithLogger(log), query.WithTieBreak(query.Alphabetical))
//	skills, err := eng.ProjectUniqueSkills(projectID, true)
//	avg, err := eng.AverageSalaryBySkill("Oracle")
//	top := eng.MostKnownSkills(3)
//
// The range filters [Within] and [WithinMap], and the salary pipeline
// building blocks ([EmployeesByNationality], [Salaries], [Sum], [Half]) work
// on plain slices and need no Engine.
package query
