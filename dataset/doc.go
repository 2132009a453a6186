// Package dataset holds the read-only staffing records the query layer runs
// against: employees, the projects they are staffed on, and the offices they
// work from.
//
// A [Dataset] is built once, either from records with [New] or from a JSON or
// YAML document with [Load] / [Decode], and never changes afterwards. Building
// it checks that every project manager and team member resolves to an
// employee and that every office is a [city, country] pair.
//
//	ds, err := dataset.Load("staff.json")
//	if err != nil { ... }
//	emp, err := ds.EmployeeByID(651065)
//	proj, err := ds.ProjectByID("86c0cd06-bd83-4d50-82d7-d1c10743ec48")
//
// Accessors hand out copies of the record slices, but the records share
// their nested slices (skills, team ids) with the dataset. Callers must not
// modify them.
package dataset
