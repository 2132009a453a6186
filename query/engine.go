package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hasbyte1/roster/arr"
	"github.com/hasbyte1/roster/collections"
	"github.com/hasbyte1/roster/dataset"
	"github.com/hasbyte1/roster/fn"
)

// Engine runs queries against one dataset. It keeps no mutable state beyond
// memoised tallies of the immutable dataset and is safe for concurrent use.
type Engine struct {
	ds  *dataset.Dataset
	log zerolog.Logger
	tie TieBreak

	skillTallies  func() *collections.Collection[collections.Tally[string]]
	officeTallies func() *collections.Collection[collections.Tally[string]]
}

// Option configures an [Engine].
type Option func(*Engine)

// WithLogger sets the logger queries report to. The default discards output.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithTieBreak sets how ranking queries order entries with equal counts.
// The default is [FirstSeen].
func WithTieBreak(t TieBreak) Option {
	return func(e *Engine) { e.tie = t }
}

// New creates an Engine over ds.
func New(ds *dataset.Dataset, opts ...Option) *Engine {
	e := &Engine{ds: ds, log: zerolog.Nop(), tie: FirstSeen}
	for _, opt := range opts {
		opt(e)
	}
	e.skillTallies = fn.OnceFunc(func() *collections.Collection[collections.Tally[string]] {
		return collections.CountEach(collections.From(ds.Employees()), skillsOf)
	})
	e.officeTallies = fn.OnceFunc(func() *collections.Collection[collections.Tally[string]] {
		return collections.CountBy(collections.From(ds.Employees()), func(emp dataset.Employee) string {
			return emp.Office.Country()
		})
	})
	return e
}

// Dataset returns the dataset the engine queries.
func (e *Engine) Dataset() *dataset.Dataset { return e.ds }

// ─────────────────────────────────────────────────────────────────────────────
// Lookups
// ─────────────────────────────────────────────────────────────────────────────

// EmployeeByID returns the employee with id or [dataset.ErrEmployeeNotFound].
func (e *Engine) EmployeeByID(id int) (dataset.Employee, error) {
	return e.ds.EmployeeByID(id)
}

// ByNationality returns every employee of the given nationality, in dataset order.
func (e *Engine) ByNationality(nationality string) []dataset.Employee {
	return EmployeesByNationality(nationality)(e.ds.Employees())
}

// FirstByNationality returns the first employee of the given nationality,
// or [ErrNoMatch].
func (e *Engine) FirstByNationality(nationality string) (dataset.Employee, error) {
	emp, err := collections.From(e.ds.Employees()).FirstOrFail(isNationality(nationality))
	if errors.Is(err, collections.ErrNoMatchingItems) {
		return emp, fmt.Errorf("%w: nationality %q", ErrNoMatch, nationality)
	}
	return emp, err
}

// ByEmailDomain returns the employees whose personal email address is at
// domain, compared case-insensitively.
func (e *Engine) ByEmailDomain(domain string) []dataset.Employee {
	return arr.Filter(e.ds.Employees(), func(emp dataset.Employee, _ int) bool {
		return strings.EqualFold(emp.EmailDomain(), domain)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Project teams
// ─────────────────────────────────────────────────────────────────────────────

// TeamSkillQuery asks whether anyone on a project team knows a skill.
type TeamSkillQuery struct {
	ProjectID        string
	Skill            string
	IncludingManager bool
}

// Team resolves a project's team members, preceded by its manager when
// includingManager is set. Each employee appears once.
func (e *Engine) Team(projectID string, includingManager bool) ([]dataset.Employee, error) {
	p, err := e.ds.ProjectByID(projectID)
	if err != nil {
		return nil, err
	}
	var head []int
	if includingManager {
		head = []int{p.ManagerID}
	}
	ids := arr.Unique(collections.Flatten(collections.New(head, p.TeamMemberIDs)).All())

	team := make([]dataset.Employee, 0, len(ids))
	for _, id := range ids {
		emp, err := e.ds.EmployeeByID(id)
		if err != nil {
			return nil, fmt.Errorf("query: project %s: %w", p.ID, err)
		}
		team = append(team, emp)
	}
	e.log.Debug().
		Str("project", p.ID).
		Bool("includingManager", includingManager).
		Int("members", len(team)).
		Msg("resolved project team")
	return team, nil
}

// ProjectUniqueSkills returns every skill known on the project team, each
// once, in the order first met walking the team (manager first when
// included, then members in listed order, each member's skills in their
// own order).
func (e *Engine) ProjectUniqueSkills(projectID string, includingManager bool) ([]string, error) {
	team, err := e.Team(projectID, includingManager)
	if err != nil {
		return nil, err
	}
	skills := collections.FlatMap(collections.From(team), func(emp dataset.Employee, _ int) []string {
		return skillsOf(emp)
	})
	return collections.Unique(skills, func(s string) string { return s }).All(), nil
}

// SomeoneKnowsSkill reports whether at least one team member (and the
// manager, when q.IncludingManager is set) knows q.Skill exactly.
func (e *Engine) SomeoneKnowsSkill(q TeamSkillQuery) (bool, error) {
	team, err := e.Team(q.ProjectID, q.IncludingManager)
	if err != nil {
		return false, err
	}
	return collections.From(team).Contains(knows(q.Skill)), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregations
// ─────────────────────────────────────────────────────────────────────────────

// AverageSalaryBySkill returns the mean salary of the employees who know
// skill, rounded to two decimals. Fails with [ErrNoMatch] when nobody does.
func (e *Engine) AverageSalaryBySkill(skill string) (float64, error) {
	avg, err := collections.From(e.ds.Employees()).Where(knows(skill)).Average(salaryOf)
	if errors.Is(err, collections.ErrEmptyCollection) {
		e.log.Debug().Str("skill", skill).Msg("no employee knows skill")
		return 0, fmt.Errorf("%w: nobody knows %q", ErrNoMatch, skill)
	}
	if err != nil {
		return 0, err
	}
	return Round2(avg), nil
}

// HalfSalaryOf returns half the salary total of one nationality.
func (e *Engine) HalfSalaryOf(nationality string) float64 {
	return fn.Pipe4(EmployeesByNationality(nationality), Salaries, Sum, Half)(e.ds.Employees())
}

// TotalSalaryOf returns the salary total of one nationality.
func (e *Engine) TotalSalaryOf(nationality string) float64 {
	return fn.Pipe3(EmployeesByNationality(nationality), Salaries, Sum)(e.ds.Employees())
}

// BonusRule grants Rate × salary to employees of Nationality earning
// strictly less than SalaryBelow.
type BonusRule struct {
	Nationality string
	SalaryBelow float64
	Rate        float64
}

// TotalBonus returns the bonus total under rule, rounded to two decimals.
func (e *Engine) TotalBonus(rule BonusRule) float64 {
	eligible := collections.From(e.ByNationality(rule.Nationality)).
		Where(fn.Negate(earnsAtLeast(rule.SalaryBelow)))
	total := collections.Reduce(collections.Pluck(eligible, salaryOf), func(acc, salary float64, _ int) float64 {
		return acc + salary*rule.Rate
	}, 0)
	return Round2(total)
}

// TotalBonusLoop computes the same figure as [Engine.TotalBonus] with a
// plain loop.
func (e *Engine) TotalBonusLoop(rule BonusRule) float64 {
	employees := e.ds.Employees()
	var total float64
	for i := 0; i < len(employees); i++ {
		emp := employees[i]
		if rule.Nationality != AnyNationality && emp.Nationality != rule.Nationality {
			continue
		}
		if emp.Salary < rule.SalaryBelow {
			total += emp.Salary * rule.Rate
		}
	}
	return Round2(total)
}

// HighestPaid returns the best-paid employee of a nationality, or
// [ErrNoMatch]. The first of equally paid employees wins.
func (e *Engine) HighestPaid(nationality string) (dataset.Employee, error) {
	emp, err := collections.MaxBy(e.ByNationality(nationality), salaryOf)
	if err != nil {
		return emp, fmt.Errorf("%w: nationality %q: %v", ErrNoMatch, nationality, err)
	}
	return emp, nil
}

// LowestPaid returns the worst-paid employee of a nationality, or
// [ErrNoMatch]. The first of equally paid employees wins.
func (e *Engine) LowestPaid(nationality string) (dataset.Employee, error) {
	emp, err := collections.MinBy(e.ByNationality(nationality), salaryOf)
	if err != nil {
		return emp, fmt.Errorf("%w: nationality %q: %v", ErrNoMatch, nationality, err)
	}
	return emp, nil
}

// RichestPhone returns the phone number of [Engine.HighestPaid].
func (e *Engine) RichestPhone(nationality string) (string, error) {
	richest, err := e.HighestPaid(nationality)
	if err != nil {
		return "", err
	}
	return richest.PersonalInfo.Phone, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Rankings
// ─────────────────────────────────────────────────────────────────────────────

// SkillCount is the number of employees who know a skill.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// OfficeCount is the number of employees working in a country's offices.
type OfficeCount struct {
	Country   string `json:"country"`
	Headcount int    `json:"headcount"`
}

// MostKnownSkills returns the n skills known by the most employees, most
// known first. Each employee counts once per skill. Ties follow the engine's
// [TieBreak].
func (e *Engine) MostKnownSkills(n int) []SkillCount {
	if n <= 0 {
		return []SkillCount{}
	}
	top := e.ranked(e.skillTallies()).Take(n)
	return collections.Map(top, func(t collections.Tally[string], _ int) SkillCount {
		return SkillCount{Skill: t.Key, Count: t.Count}
	}).All()
}

// OfficesByHeadcount groups employees by office country and returns the
// countries by descending headcount. Ties follow the engine's [TieBreak].
func (e *Engine) OfficesByHeadcount() []OfficeCount {
	return collections.Map(e.ranked(e.officeTallies()), func(t collections.Tally[string], _ int) OfficeCount {
		return OfficeCount{Country: t.Key, Headcount: t.Count}
	}).All()
}

// SortedOffices returns just the country names of [Engine.OfficesByHeadcount].
func (e *Engine) SortedOffices() []string {
	return arr.Pluck(e.OfficesByHeadcount(), func(o OfficeCount) string { return o.Country })
}

func (e *Engine) ranked(tallies *collections.Collection[collections.Tally[string]]) *collections.Collection[collections.Tally[string]] {
	return tallies.Sort(collections.ByCountDesc(e.tie.keyLess()))
}
