package arr

import "strings"

// Get reads the value at a dot-notation path such as
// "personalInfo.address.city" from nested map[string]any records, the shape
// a decoded JSON employee has. It reports false when any segment is missing
// or a segment other than the last is not itself a map.
func Get(m map[string]any, path string) (any, bool) {
	head, rest, nested := strings.Cut(path, ".")
	val, ok := m[head]
	if !ok || !nested {
		return val, ok
	}
	inner, ok := val.(map[string]any)
	if !ok {
		return nil, false
	}
	return Get(inner, rest)
}

// Float reads the value at path as a number. It reports false when the path
// is missing or holds anything other than a Go numeric value, so strings
// such as "4000" are not numbers here.
func Float(m map[string]any, path string) (float64, bool) {
	v, _ := Get(m, path)
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	default:
		return 0, false
	}
}
