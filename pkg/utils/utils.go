package utils

// Deduplicate returns elems without repeated values, keeping the first occurrence of each
func Deduplicate[T comparable](elems []T) []T {
	seen := make(map[T]struct{}, len(elems))
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Converts any struct to a pointer to that struct
func Ptr[T any](item T) *T {
	return &item
}

// NilIfEmpty returns nil for an empty string, otherwise a pointer to s
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
