package match

import "fmt"

// compose joins two message fragments with a joiner word:
// "{a}, {joiner} {b}".
func compose(joiner, a, b string) string {
	return fmt.Sprintf("%s, %s %s", a, joiner, b)
}

// Not returns a Matcher that inverts m: the verdict flips and
// the failure/negated message pairs swap, for both the plain
// and the mid-sentence variants. Not is an involution:
// Not(Not(m)) yields the same Outcomes as m.
func Not[T any](m Matcher[T]) Matcher[T] {
	return MatcherFunc[T](func(actual T) Outcome {
		o := m.Match(actual)
		return Outcome{
			Matched:                          !o.Matched,
			FailureMessage:                   o.NegatedFailureMessage,
			NegatedFailureMessage:            o.FailureMessage,
			MidSentenceFailureMessage:        o.MidSentenceNegatedFailureMessage,
			MidSentenceNegatedFailureMessage: o.MidSentenceFailureMessage,
		}
	})
}

// And returns a Matcher that holds when both operands hold.
// Both operands are always evaluated; only the messages
// short-circuit. If the left operand failed, its Outcome is
// returned verbatim. Otherwise the verdict is the right
// operand's and the messages splice the left operand's negated
// text with the right operand's mid-sentence text, so a
// compound failure reads "left held, but right did not".
func And[T any](left, right Matcher[T]) Matcher[T] {
	return MatcherFunc[T](func(actual T) Outcome {
		lo := left.Match(actual)
		ro := right.Match(actual)

		if !lo.Matched {
			return lo
		}

		return Outcome{
			Matched: ro.Matched,
			FailureMessage: compose(
				"but",
				lo.NegatedFailureMessage,
				ro.MidSentenceFailureMessage,
			),
			NegatedFailureMessage: compose(
				"and",
				lo.NegatedFailureMessage,
				ro.MidSentenceNegatedFailureMessage,
			),
			MidSentenceFailureMessage: compose(
				"but",
				lo.MidSentenceNegatedFailureMessage,
				ro.MidSentenceFailureMessage,
			),
			MidSentenceNegatedFailureMessage: compose(
				"and",
				lo.MidSentenceNegatedFailureMessage,
				ro.MidSentenceNegatedFailureMessage,
			),
		}
	})
}

// Or returns a Matcher that holds when either operand holds.
// Both operands are always evaluated. If the left operand
// held, its Outcome is returned with the message pairs swapped
// (its negated text is the explanation for the overall
// verdict). Otherwise the verdict is the right operand's and
// the messages splice the left operand's failure text with the
// right operand's mid-sentence text.
func Or[T any](left, right Matcher[T]) Matcher[T] {
	return MatcherFunc[T](func(actual T) Outcome {
		lo := left.Match(actual)
		ro := right.Match(actual)

		if lo.Matched {
			return Outcome{
				Matched:                          true,
				FailureMessage:                   lo.NegatedFailureMessage,
				NegatedFailureMessage:            lo.FailureMessage,
				MidSentenceFailureMessage:        lo.MidSentenceNegatedFailureMessage,
				MidSentenceNegatedFailureMessage: lo.MidSentenceFailureMessage,
			}
		}

		return Outcome{
			Matched: ro.Matched,
			FailureMessage: compose(
				"and",
				lo.FailureMessage,
				ro.MidSentenceFailureMessage,
			),
			NegatedFailureMessage: compose(
				"and",
				lo.FailureMessage,
				ro.MidSentenceNegatedFailureMessage,
			),
			MidSentenceFailureMessage: compose(
				"and",
				lo.MidSentenceFailureMessage,
				ro.MidSentenceFailureMessage,
			),
			MidSentenceNegatedFailureMessage: compose(
				"and",
				lo.MidSentenceFailureMessage,
				ro.MidSentenceNegatedFailureMessage,
			),
		}
	})
}
