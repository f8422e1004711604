package contain

import "fmt"

// DuplicateError reports a repeated element in the expected
// collection passed to a duplicate-checked policy. It is a
// construction-time caller error, distinct from a non-matching
// comparison (which is an ordinary Outcome, never an error).
type DuplicateError struct {
	// Kind is the policy that rejected the argument.
	Kind Kind

	// Value is the element that appeared more than once.
	Value any
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf(
		"%s: duplicate expected element: %v",
		e.Kind, e.Value,
	)
}
