package fn

import "errors"

// Sentinel errors returned by [Method] and [MethodTable].
var (
	// ErrMethodNotFound is returned when the subject has no method with the
	// requested name.
	ErrMethodNotFound = errors.New("fn: method not found")

	// ErrNotCallable is returned when the named method exists but cannot be
	// called with the subject as its only input.
	ErrNotCallable = errors.New("fn: method is not callable without arguments")

	// ErrResultType is returned when the method's result cannot be used as
	// the requested result type.
	ErrResultType = errors.New("fn: unexpected method result type")
)
