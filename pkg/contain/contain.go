// Package contain implements the containment comparison
// policies. Each policy is built once from an expected
// collection and yields a match.Matcher over an ordered actual
// collection. Construction validates the expected collection;
// matching never fails for well-formed input.
package contain

import (
	"fmt"

	"digital.vasic.matchers/pkg/match"
)

// Kind names a containment policy.
type Kind string

const (
	// KindSameElements requires the actual and expected
	// collections to hold the same elements with the same
	// multiplicities, order irrelevant.
	KindSameElements Kind = "same_elements"

	// KindSameIteratedElements requires the two collections
	// to be pairwise equal in iteration order.
	KindSameIteratedElements Kind = "same_iterated_elements"

	// KindAllOf requires every expected element to occur
	// somewhere in the actual collection.
	KindAllOf Kind = "all_of"

	// KindInOrder requires the expected elements to occur in
	// the actual collection as a subsequence, in order.
	KindInOrder Kind = "in_order"

	// KindOneOf requires at least one expected element to
	// occur in the actual collection.
	KindOneOf Kind = "one_of"

	// KindOnly requires every actual element to be drawn from
	// the expected collection.
	KindOnly Kind = "only"

	// KindInOrderOnly requires the actual collection to be
	// exactly a sequence of contiguous runs of the expected
	// elements, in the expected order.
	KindInOrderOnly Kind = "in_order_only"

	// KindNoneOf requires the two collections to be disjoint.
	KindNoneOf Kind = "none_of"
)

// Kinds lists all containment policy kinds.
func Kinds() []Kind {
	return []Kind{
		KindSameElements,
		KindSameIteratedElements,
		KindAllOf,
		KindInOrder,
		KindOneOf,
		KindOnly,
		KindInOrderOnly,
		KindNoneOf,
	}
}

// New builds the policy named by kind for the given expected
// collection. Kinds are resolved through an explicit switch,
// never reflection. It returns a *DuplicateError when a
// duplicate-checked kind receives a repeated expected element,
// and a plain error for an unknown kind.
func New[T comparable](
	kind Kind,
	expected []T,
	opts ...Option[T],
) (match.Matcher[[]T], error) {
	switch kind {
	case KindSameElements:
		return SameElementsAs(expected, opts...)
	case KindSameIteratedElements:
		return SameIteratedElementsAs(expected, opts...)
	case KindAllOf:
		return AllOf(expected, opts...)
	case KindInOrder:
		return InOrder(expected, opts...)
	case KindOneOf:
		return OneOf(expected, opts...)
	case KindOnly:
		return Only(expected, opts...)
	case KindInOrderOnly:
		return InOrderOnly(expected, opts...)
	case KindNoneOf:
		return NoneOf(expected, opts...)
	default:
		return nil, fmt.Errorf(
			"unknown containment kind: %s", kind,
		)
	}
}
