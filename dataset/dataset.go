package dataset

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Dataset is an immutable, indexed set of employees and projects.
// It is safe for concurrent use.
type Dataset struct {
	employees []Employee
	projects  []Project
	byEmp     map[int]int
	byProj    map[string]int
}

// document is the on-disk shape of a dataset.
type document struct {
	Employees []Employee `json:"employees" yaml:"employees"`
	Projects  []Project  `json:"projects" yaml:"projects"`
}

// New builds a Dataset from records, which are copied. It fails when ids are
// duplicated, a project id is not a UUID, a record field is out of range or
// missing, such as a zero salary or an empty office ([ErrInvalidRecord]), or
// a project references an employee that does not exist.
func New(employees []Employee, projects []Project) (*Dataset, error) {
	d := &Dataset{
		employees: slices.Clone(employees),
		projects:  slices.Clone(projects),
		byEmp:     make(map[int]int, len(employees)),
		byProj:    make(map[string]int, len(projects)),
	}
	for i, e := range d.employees {
		if err := checkRecord("employee", e.ID, e); err != nil {
			return nil, err
		}
		if _, dup := d.byEmp[e.ID]; dup {
			return nil, fmt.Errorf("%w: employee %d", ErrDuplicateID, e.ID)
		}
		d.byEmp[e.ID] = i
	}
	for i, p := range d.projects {
		key, err := projectKey(p.ID)
		if err != nil {
			return nil, err
		}
		if err := checkRecord("project", p.ID, p); err != nil {
			return nil, err
		}
		if _, dup := d.byProj[key]; dup {
			return nil, fmt.Errorf("%w: project %s", ErrDuplicateID, p.ID)
		}
		d.byProj[key] = i
		if err := d.checkRefs(p); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dataset) checkRefs(p Project) error {
	if _, ok := d.byEmp[p.ManagerID]; !ok {
		return fmt.Errorf("%w: project %s manager %d", ErrDanglingReference, p.ID, p.ManagerID)
	}
	for _, id := range p.TeamMemberIDs {
		if _, ok := d.byEmp[id]; !ok {
			return fmt.Errorf("%w: project %s member %d", ErrDanglingReference, p.ID, id)
		}
	}
	return nil
}

// projectKey normalises a project id to its canonical UUID form.
func projectKey(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidProjectID, id, err)
	}
	return u.String(), nil
}

// Employees returns every employee in load order.
func (d *Dataset) Employees() []Employee { return slices.Clone(d.employees) }

// Projects returns every project in load order.
func (d *Dataset) Projects() []Project { return slices.Clone(d.projects) }

// EmployeeByID returns the employee with the given id, or
// [ErrEmployeeNotFound].
func (d *Dataset) EmployeeByID(id int) (Employee, error) {
	i, ok := d.byEmp[id]
	if !ok {
		return Employee{}, fmt.Errorf("%w: %d", ErrEmployeeNotFound, id)
	}
	return d.employees[i], nil
}

// ProjectByID returns the project with the given id. The id may be in any
// UUID spelling that [uuid.Parse] accepts. Fails with [ErrInvalidProjectID]
// or [ErrProjectNotFound].
func (d *Dataset) ProjectByID(id string) (Project, error) {
	key, err := projectKey(id)
	if err != nil {
		return Project{}, err
	}
	i, ok := d.byProj[key]
	if !ok {
		return Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return d.projects[i], nil
}

// Fingerprint returns the hex BLAKE2b-256 digest of the dataset's JSON
// encoding. Two datasets with equal records have equal fingerprints, so it
// can be compared before and after a query to prove nothing was modified.
func (d *Dataset) Fingerprint() (string, error) {
	b, err := json.Marshal(document{Employees: d.employees, Projects: d.projects})
	if err != nil {
		return "", fmt.Errorf("dataset: encode for fingerprint: %w", err)
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
