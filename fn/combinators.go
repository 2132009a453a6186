package fn

import "sync"

// Always returns a function that ignores all of its arguments and returns v.
//
//	always5 := fn.Always(5)
//	always5()        // 5
//	always5(1, 2, 3) // 5
func Always[T any](v T) func(...any) T {
	return func(...any) T { return v }
}

// Unary wraps a variadic f so that only the first argument ever reaches it.
// Extra positional arguments supplied by the caller are dropped.
//
//	parse := func(s string, base ...int) int { ... }
//	fn.Unary(parse)("10", 2) // parse("10")
func Unary[A, B, R any](f func(A, ...B) R) func(A, ...B) R {
	return func(a A, _ ...B) R { return f(a) }
}

// UnaryIndexed adapts f to the (item, index) callback shape used by
// collections.Map and friends, discarding the index.
func UnaryIndexed[A, R any](f func(A, ...int) R) func(A, int) R {
	return func(a A, _ int) R { return f(a) }
}

// Negate returns a predicate that reports the opposite of p.
func Negate[A any](p func(A) bool) func(A) bool {
	return func(a A) bool { return !p(a) }
}

// NegateN is [Negate] for predicates taking any number of arguments.
func NegateN[A any](p func(...A) bool) func(...A) bool {
	return func(args ...A) bool { return !p(args...) }
}

// Once returns a wrapper that invokes f on its first call only, forwarding
// the arguments of that call. Every later call returns the first result
// without invoking f again, whatever arguments it receives.
//
// Two calls to Once with the same f produce independent wrappers.
func Once[R any](f func(...any) R) func(...any) R {
	var (
		once   sync.Once
		result R
	)
	return func(args ...any) R {
		once.Do(func() { result = f(args...) })
		return result
	}
}

// OnceFunc is the zero-argument form of [Once].
func OnceFunc[R any](f func() R) func() R {
	return sync.OnceValue(f)
}
