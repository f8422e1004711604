package contain

import (
	"fmt"
	"strings"

	"digital.vasic.matchers/pkg/match"
)

// phrasing holds the verb phrases a policy uses to describe
// its two outcomes. failed explains a non-match, held explains
// a match; both pair with the rendered collections so either
// orientation can be surfaced depending on negation.
type phrasing struct {
	failed string
	held   string
	suffix string
}

// outcome renders the two sentences for a verdict. Messages
// open with the rendered actual value, so the plain and
// mid-sentence variants coincide.
func (p phrasing) outcome(
	matched bool,
	actual, expected string,
) match.Outcome {
	suffix := ""
	if p.suffix != "" {
		suffix = " " + p.suffix
	}
	return match.NewOutcome(
		matched,
		fmt.Sprintf(
			"%s %s %s%s", actual, p.failed, expected, suffix,
		),
		fmt.Sprintf(
			"%s %s %s%s", actual, p.held, expected, suffix,
		),
	)
}

// renderExpected formats an expected collection as a
// parenthesised comma list: (1, 2, 3).
func renderExpected[T any](expected []T) string {
	parts := make([]string, len(expected))
	for i, e := range expected {
		parts[i] = fmt.Sprintf("%v", e)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// renderActual formats the actual collection with the default
// Go slice rendering: [1 2 3].
func renderActual[T any](actual []T) string {
	return fmt.Sprintf("%v", actual)
}
