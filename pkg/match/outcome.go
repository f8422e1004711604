// Package match defines the matcher algebra shared by the
// containment policies: an Outcome value carrying a verdict
// plus paired human-readable explanations, a generic Matcher
// abstraction, and the Not, And and Or combinators.
package match

// Outcome is the immutable result of applying a Matcher to a
// value. The plain messages are complete sentences suitable
// for standalone display; the mid-sentence variants are
// fragments suitable for embedding after a joiner word such as
// "but" or "and".
type Outcome struct {
	// Matched reports whether the check held.
	Matched bool `json:"matched"`

	// FailureMessage explains why the check failed. It is
	// meaningful when Matched is false.
	FailureMessage string `json:"failure_message"`

	// NegatedFailureMessage describes the state that held.
	// It is meaningful when Matched is true and doubles as
	// the failure explanation for the negated check.
	NegatedFailureMessage string `json:"negated_failure_message"`

	// MidSentenceFailureMessage is FailureMessage phrased for
	// embedding inside a larger composed sentence.
	MidSentenceFailureMessage string `json:"mid_sentence_failure_message"`

	// MidSentenceNegatedFailureMessage is the mid-sentence
	// form of NegatedFailureMessage.
	MidSentenceNegatedFailureMessage string `json:"mid_sentence_negated_failure_message"`
}

// NewOutcome builds an Outcome whose mid-sentence messages
// equal the plain ones. The containment policies emit messages
// that open with the rendered actual value, so the two forms
// coincide for them.
func NewOutcome(
	matched bool,
	failure, negated string,
) Outcome {
	return Outcome{
		Matched:                          matched,
		FailureMessage:                   failure,
		NegatedFailureMessage:            negated,
		MidSentenceFailureMessage:        failure,
		MidSentenceNegatedFailureMessage: negated,
	}
}

// NewOutcomeFull builds an Outcome with all four message
// variants spelled out separately.
func NewOutcomeFull(
	matched bool,
	failure, negated, midFailure, midNegated string,
) Outcome {
	return Outcome{
		Matched:                          matched,
		FailureMessage:                   failure,
		NegatedFailureMessage:            negated,
		MidSentenceFailureMessage:        midFailure,
		MidSentenceNegatedFailureMessage: midNegated,
	}
}
