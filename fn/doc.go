// Package fn provides small, generic higher-order functions that wrap an
// arbitrary function and hand back a new one with an altered calling
// contract.
//
// # Combinators
//
//   - [Always] ignores its arguments and returns a fixed value.
//   - [Unary] and [UnaryIndexed] let only the first argument through.
//   - [Negate] inverts a predicate.
//   - [Once] runs the wrapped function on the first call only.
//   - [Method] and [MethodTable] invert method calls: method(subject)
//     instead of subject.method().
//   - [Pipe], [Pipe2], [Pipe3], [Pipe4] and [PipeAny] compose functions
//     left to right.
//
// Composition reads in execution order:
//
//	halfOfTotal := fn.Pipe3(
//	    query.Salaries,
//	    query.Sum,
//	    query.Half,
//	)
//	halfOfTotal(employees)
//
// # Concurrency
//
// Every combinator is stateless except [Once], whose latch is private to the
// returned wrapper and guarded by [sync.Once]. Wrappers may be shared across
// goroutines.
package fn
