package fn

import (
	"fmt"
	"reflect"
	"sync"
)

// Method returns a function that calls the exported method name on whatever
// subject it is given, with the subject as receiver, and returns its result.
//
//	hello := fn.Method[string]("Hello")
//	hello(dog)  // dog.Hello()
//	hello(john) // john.Hello()
//
// The method must take no arguments (or only a variadic one) and return a
// single value assignable to R. Otherwise the call fails with
// [ErrMethodNotFound], [ErrNotCallable] or [ErrResultType].
func Method[R any](name string) func(subject any) (R, error) {
	return func(subject any) (R, error) {
		var zero R
		if subject == nil {
			return zero, fmt.Errorf("%w: %q on nil subject", ErrMethodNotFound, name)
		}
		m := reflect.ValueOf(subject).MethodByName(name)
		if !m.IsValid() {
			return zero, fmt.Errorf("%w: %q on %T", ErrMethodNotFound, name, subject)
		}
		mt := m.Type()
		if mt.NumIn() > 1 || (mt.NumIn() == 1 && !mt.IsVariadic()) {
			return zero, fmt.Errorf("%w: %T.%s takes %d arguments", ErrNotCallable, subject, name, mt.NumIn())
		}
		if mt.NumOut() != 1 {
			return zero, fmt.Errorf("%w: %T.%s returns %d values", ErrResultType, subject, name, mt.NumOut())
		}
		if !mt.Out(0).AssignableTo(reflect.TypeOf((*R)(nil)).Elem()) {
			return zero, fmt.Errorf("%w: %T.%s returns %s", ErrResultType, subject, name, mt.Out(0))
		}
		var r R
		reflect.ValueOf(&r).Elem().Set(m.Call(nil)[0])
		return r, nil
	}
}

// MustMethod is like [Method] but panics instead of returning an error.
func MustMethod[R any](name string) func(subject any) R {
	call := Method[R](name)
	return func(subject any) R {
		r, err := call(subject)
		if err != nil {
			panic(err)
		}
		return r
	}
}

// MethodTable is an explicit registry of named methods for subjects of type
// S. It serves the same purpose as [Method] without reflection: behaviour is
// looked up by name in a table of function values instead of on the
// subject's method set.
//
//	greetings := fn.NewMethodTable[Animal, string]().
//	    Register("hello", func(a Animal) string { return "bark, bark, " + a.Name })
//	hello := greetings.Lookup("hello")
//	msg, err := hello(fluffy)
//
// A MethodTable is safe for concurrent use.
type MethodTable[S, R any] struct {
	mu      sync.RWMutex
	methods map[string]func(S) R
}

// NewMethodTable creates an empty table.
func NewMethodTable[S, R any]() *MethodTable[S, R] {
	return &MethodTable[S, R]{methods: make(map[string]func(S) R)}
}

// Register adds or replaces the method called name and returns t so calls
// can be chained.
func (t *MethodTable[S, R]) Register(name string, method func(S) R) *MethodTable[S, R] {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.methods[name] = method
	return t
}

// Has reports whether a method called name is registered.
func (t *MethodTable[S, R]) Has(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.methods[name]
	return ok
}

// Call invokes the method called name on subject.
// Returns [ErrMethodNotFound] if nothing is registered under name.
func (t *MethodTable[S, R]) Call(name string, subject S) (R, error) {
	t.mu.RLock()
	method, ok := t.methods[name]
	t.mu.RUnlock()
	if !ok {
		var zero R
		return zero, fmt.Errorf("%w: %q", ErrMethodNotFound, name)
	}
	return method(subject), nil
}

// Lookup returns a function that calls the method called name on its
// subject. The name is resolved on every call, so methods registered after
// Lookup are still found.
func (t *MethodTable[S, R]) Lookup(name string) func(S) (R, error) {
	return func(subject S) (R, error) { return t.Call(name, subject) }
}
