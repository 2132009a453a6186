package arr

// ContainsValue reports whether items holds value. Values are compared with
// ==, so strings match exactly, including case.
func ContainsValue[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// Filter returns the elements for which fn(item, index) returns true, in
// their original order. items is left untouched.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Pluck extracts a value of type U from each element of type T.
func Pluck[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Unique drops repeated values, keeping the first occurrence of each.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	return Filter(items, func(item T, _ int) bool {
		if _, dup := seen[item]; dup {
			return false
		}
		seen[item] = struct{}{}
		return true
	})
}

// Sum adds up fn(item) over items.
func Sum[T any](items []T, fn func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += fn(item)
	}
	return total
}
