package query

import "errors"

var (
	// ErrNoMatch is returned when a query needs at least one matching record
	// and none exists, e.g. averaging the salaries for an unknown skill.
	ErrNoMatch = errors.New("query: no matching records")

	// ErrUnknownTieBreak is returned by ParseTieBreak for unknown names.
	ErrUnknownTieBreak = errors.New("query: unknown tie-break policy")
)
