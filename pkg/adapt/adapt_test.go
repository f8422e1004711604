package adapt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/contain"
)

func TestKeys_SortedAscending(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}

	assert.Equal(t, []string{"a", "b", "c"}, Keys(m))
}

func TestKeys_EmptyMap(t *testing.T) {
	assert.Empty(t, Keys(map[int]string{}))
}

func TestValues_OrderedByKey(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}

	assert.Equal(t, []int{1, 2, 3}, Values(m))
}

func TestSetElements_Sorted(t *testing.T) {
	s := map[int]struct{}{
		5: {},
		1: {},
		3: {},
	}

	assert.Equal(t, []int{1, 3, 5}, SetElements(s))
}

func TestPairs_OrderedByKey(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1}

	assert.Equal(t, []Pair[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
	}, Pairs(m))
}

// Adapted collections flow straight into the containment
// policies.
func TestAdapters_FeedPolicies(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}

	all, err := contain.AllOf([]string{"a", "c"})
	require.NoError(t, err)
	assert.True(t, all.Match(Keys(m)).Matched)

	same, err := contain.SameElementsAs([]int{3, 2, 1})
	require.NoError(t, err)
	assert.True(t, same.Match(Values(m)).Matched)

	pairs, err := contain.OneOf([]Pair[string, int]{
		{Key: "b", Value: 2},
	})
	require.NoError(t, err)
	assert.True(t, pairs.Match(Pairs(m)).Matched)
}
