package dataset

import "errors"

var (
	// ErrEmployeeNotFound is returned when an employee id does not resolve.
	ErrEmployeeNotFound = errors.New("dataset: employee not found")

	// ErrProjectNotFound is returned when a project id does not resolve.
	ErrProjectNotFound = errors.New("dataset: project not found")

	// ErrInvalidProjectID is returned when a project id is not a UUID.
	ErrInvalidProjectID = errors.New("dataset: invalid project id")

	// ErrDuplicateID is returned when two records of the same kind share an id.
	ErrDuplicateID = errors.New("dataset: duplicate id")

	// ErrDanglingReference is returned when a project refers to an employee
	// that does not exist.
	ErrDanglingReference = errors.New("dataset: dangling employee reference")

	// ErrInvalidRecord is returned when a record field holds an impossible
	// value, such as a negative salary or a malformed email address.
	ErrInvalidRecord = errors.New("dataset: invalid record")

	// ErrMalformedOffice is returned when an office is not a [city, country] pair.
	ErrMalformedOffice = errors.New("dataset: office must be a [city, country] pair")

	// ErrUnsupportedFormat is returned for documents that are neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("dataset: unsupported document format")
)
