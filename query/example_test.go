package query_test

import (
	"fmt"

	"github.com/hasbyte1/roster/dataset"
	"github.com/hasbyte1/roster/query"
)

func ExampleEngine_MostKnownSkills() {
	ds, err := dataset.Load("../dataset/testdata/staff.json")
	if err != nil {
		panic(err)
	}
	for _, s := range query.New(ds).MostKnownSkills(3) {
		fmt.Println(s.Skill, s.Count)
	}
	// Output:
	// HTML 6
	// scrum 5
	// testing 4
}

func ExampleEngine_SortedOffices() {
	ds, err := dataset.Load("../dataset/testdata/staff.json")
	if err != nil {
		panic(err)
	}
	e := query.New(ds, query.WithTieBreak(query.Alphabetical))
	fmt.Println(e.SortedOffices())
	// Output: [Poland Germany United States of America United Kingdom]
}

func ExampleWithin() {
	ds, err := dataset.Load("../dataset/testdata/staff.json")
	if err != nil {
		panic(err)
	}
	for _, emp := range query.Within(ds.Employees(), "salary", query.Range{From: 4000, To: 4100}) {
		fmt.Println(emp.FullName(), emp.Salary)
	}
	// Output:
	// Marta Kruszewski 4000
	// Hans Biesenbach 4100
}
