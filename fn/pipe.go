package fn

// Pipe composes functions of a single type left to right:
// Pipe(f, g, h)(x) == h(g(f(x))).
//
// With no functions the result is the identity.
func Pipe[T any](fns ...func(T) T) func(T) T {
	stages := make([]func(T) T, len(fns))
	copy(stages, fns)
	return func(x T) T {
		for _, f := range stages {
			x = f(x)
		}
		return x
	}
}

// Pipe2 composes two stages whose types may differ: Pipe2(f, g)(x) == g(f(x)).
//
//	roundedSqrt := fn.Pipe2(math.Sqrt, math.Round)
//	roundedSqrt(12.5) // 4
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Pipe3 composes three stages: Pipe3(f, g, h)(x) == h(g(f(x))).
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D { return h(g(f(a))) }
}

// Pipe4 composes four stages: Pipe4(f, g, h, k)(x) == k(h(g(f(x)))).
func Pipe4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D, k func(D) E) func(A) E {
	return func(a A) E { return k(h(g(f(a)))) }
}

// PipeAny composes untyped stages. The first stage receives every argument
// passed to the returned function; each later stage receives the single
// result of its predecessor.
func PipeAny(first func(...any) any, rest ...func(any) any) func(...any) any {
	stages := make([]func(any) any, len(rest))
	copy(stages, rest)
	return func(args ...any) any {
		v := first(args...)
		for _, f := range stages {
			v = f(v)
		}
		return v
	}
}
