package utils

// Map applies f to each element of elems and returns the results in order.
func Map[T, U any](elems []T, f func(int, T) U) []U {
	result := make([]U, len(elems))
	for i, v := range elems {
		result[i] = f(i, v)
	}
	return result
}

// Clone returns a copy of elems that never aliases it. A nil input yields an
// empty, non-nil slice.
func Clone[T any](elems []T) []T {
	out := make([]T, len(elems))
	copy(out, elems)
	return out
}
