package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddRemoveContains(t *testing.T) {
	set := NewSet(1, 2)
	set.Add(3)
	set.Remove(1)
	set.Remove(42)

	assert.False(t, set.Contains(1))
	assert.True(t, set.Contains(2))
	assert.True(t, set.Contains(3))
	assert.Len(t, set, 2)
}

func TestSetDifference(t *testing.T) {
	difference := NewSet(1, 2, 3).Difference(NewSet(2, 4))

	assert.Equal(t, NewSet(1, 3), difference)
}

func TestSetUnionAndSorted(t *testing.T) {
	set := NewSet(5, 1)
	set.Union(NewSet(3, 1))

	assert.Equal(t, []int{1, 3, 5}, set.Sorted(func(a, b int) bool { return a < b }))
}
