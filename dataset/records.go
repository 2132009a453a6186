package dataset

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/roster/arr"
)

// Measurable is implemented by records that expose numeric fields by name.
// It is the capability the range filters in package query rely on.
type Measurable interface {
	// Measure returns the numeric value of field and whether the record has
	// such a numeric field.
	Measure(field string) (float64, bool)
}

// Employee is a member of staff.
type Employee struct {
	ID           int          `json:"id" yaml:"id"`
	FirstName    string       `json:"firstName" yaml:"firstName"`
	LastName     string       `json:"lastName" yaml:"lastName"`
	Nationality  string       `json:"nationality" yaml:"nationality"`
	Salary       float64      `json:"salary" yaml:"salary" validate:"gt=0"`
	Skills       []string     `json:"skills" yaml:"skills" validate:"dive,required"`
	PersonalInfo PersonalInfo `json:"personalInfo" yaml:"personalInfo"`
	Office       Office       `json:"office" yaml:"office" validate:"dive,required"`
}

// PersonalInfo is the private contact data of an employee.
type PersonalInfo struct {
	Address Address `json:"address" yaml:"address"`
	Phone   string  `json:"phone" yaml:"phone"`
	Email   string  `json:"email" yaml:"email" validate:"omitempty,email"`
}

// Address is a postal address.
type Address struct {
	Street string `json:"street,omitempty" yaml:"street,omitempty"`
	City   string `json:"city" yaml:"city"`
}

// FullName returns "FirstName LastName".
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// HasSkill reports whether the employee knows skill. Skill names are
// compared exactly, including case.
func (e Employee) HasSkill(skill string) bool {
	return arr.ContainsValue(e.Skills, skill)
}

// EmailDomain returns the domain part of the personal email address, or ""
// when the address has none.
func (e Employee) EmailDomain() string {
	at := strings.LastIndexByte(e.PersonalInfo.Email, '@')
	if at < 0 {
		return ""
	}
	return e.PersonalInfo.Email[at+1:]
}

// Measure implements [Measurable] for "id" and "salary".
func (e Employee) Measure(field string) (float64, bool) {
	switch field {
	case "id":
		return float64(e.ID), true
	case "salary":
		return e.Salary, true
	}
	return 0, false
}

// Project is a piece of work staffed by a manager and a team.
// The manager is not implicitly a team member.
type Project struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Budget        float64 `json:"budget" yaml:"budget" validate:"gte=0"`
	ManagerID     int     `json:"managerId" yaml:"managerId"`
	TeamMemberIDs []int   `json:"teamMemberIds" yaml:"teamMemberIds"`
}

// Measure implements [Measurable] for "budget".
func (p Project) Measure(field string) (float64, bool) {
	if field == "budget" {
		return p.Budget, true
	}
	return 0, false
}

// Office is the [city, country] pair an employee works from. Both parts are
// required.
type Office [2]string

// NewOffice builds an Office.
func NewOffice(city, country string) Office { return Office{city, country} }

// City returns element 0 of the pair.
func (o Office) City() string { return o[0] }

// Country returns element 1 of the pair. It is the grouping key when offices
// are ranked by headcount.
func (o Office) Country() string { return o[1] }

// UnmarshalJSON accepts exactly two strings.
func (o *Office) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOffice, err)
	}
	return o.set(pair)
}

// UnmarshalYAML accepts a sequence of exactly two strings.
func (o *Office) UnmarshalYAML(node *yaml.Node) error {
	var pair []string
	if err := node.Decode(&pair); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOffice, err)
	}
	return o.set(pair)
}

func (o *Office) set(pair []string) error {
	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d elements", ErrMalformedOffice, len(pair))
	}
	*o = Office{pair[0], pair[1]}
	return nil
}
