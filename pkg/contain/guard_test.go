package contain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guardedKinds are the six policies that reject duplicate
// expected elements at construction time.
var guardedKinds = []Kind{
	KindAllOf,
	KindInOrder,
	KindOneOf,
	KindOnly,
	KindInOrderOnly,
	KindNoneOf,
}

func TestNew_GuardedKinds_RejectDuplicates(t *testing.T) {
	for _, kind := range guardedKinds {
		t.Run(string(kind), func(t *testing.T) {
			_, err := New(kind, []int{1, 1})

			var dup *DuplicateError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, kind, dup.Kind)
			assert.Equal(t, 1, dup.Value)
		})
	}
}

func TestNew_GuardedKinds_AcceptDistinctElements(t *testing.T) {
	for _, kind := range guardedKinds {
		t.Run(string(kind), func(t *testing.T) {
			m, err := New(kind, []int{1, 2, 3})
			require.NoError(t, err)
			require.NotNil(t, m)
		})
	}
}

func TestNew_UnguardedKinds_AcceptDuplicates(t *testing.T) {
	for _, kind := range []Kind{
		KindSameElements,
		KindSameIteratedElements,
	} {
		t.Run(string(kind), func(t *testing.T) {
			m, err := New(kind, []int{1, 1})
			require.NoError(t, err)
			require.NotNil(t, m)
		})
	}
}

func TestDuplicateError_NamesKindAndValue(t *testing.T) {
	err := &DuplicateError{Kind: KindInOrder, Value: 7}

	assert.Equal(t,
		"in_order: duplicate expected element: 7",
		err.Error())
}

func TestDupGuard_ReportsFirstRecurrence(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	err := dupGuard(KindAllOf, []int{1, 2, 3, 2, 1}, eq)

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 2, dup.Value)
}

func TestDupGuard_EmptyAndSingleton(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	assert.NoError(t, dupGuard(KindAllOf, nil, eq))
	assert.NoError(t, dupGuard(KindAllOf, []int{1}, eq))
}
