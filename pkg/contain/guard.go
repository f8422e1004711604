package contain

// dupGuard rejects expected collections containing a repeated
// element. Policies that model multiset or positional equality
// skip it, because duplicates are meaningful there rather than
// malformed input. The scan is quadratic: equality may be
// caller-supplied, so elements cannot be hashed.
func dupGuard[T comparable](
	kind Kind,
	expected []T,
	eq func(a, b T) bool,
) error {
	for i := 1; i < len(expected); i++ {
		for j := 0; j < i; j++ {
			if eq(expected[j], expected[i]) {
				return &DuplicateError{
					Kind:  kind,
					Value: expected[i],
				}
			}
		}
	}
	return nil
}

// containsFunc reports whether xs holds an element equal to v
// under eq.
func containsFunc[T any](
	xs []T,
	v T,
	eq func(a, b T) bool,
) bool {
	for _, x := range xs {
		if eq(x, v) {
			return true
		}
	}
	return false
}

// indexFunc returns the first index of v within xs under eq,
// or -1 when absent.
func indexFunc[T any](
	xs []T,
	v T,
	eq func(a, b T) bool,
) int {
	for i, x := range xs {
		if eq(x, v) {
			return i
		}
	}
	return -1
}
