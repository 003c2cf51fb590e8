package set

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	var s Set[int]
	require.False(t, s.Has(1))

	require.True(t, s.Insert(1))
	require.True(t, s.Insert(2))
	require.False(t, s.Insert(1))

	require.Equal(t, 2, s.Len())
	require.Equal(t, []int{1, 2}, slices.Sorted(s.Values()))

	s.Remove(1)
	require.False(t, s.Has(1))

	s.Clear()
	require.Equal(t, 0, s.Len())
}
