package HashSet

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSet_InsertRemove(t *testing.T) {
	s := New[int](0)

	require.True(t, s.Insert(1))
	require.False(t, s.Insert(1))
	require.True(t, s.Has(1))
	require.Equal(t, uint(1), s.Size())

	require.True(t, s.Remove(1))
	require.False(t, s.Remove(1))
	require.False(t, s.Has(1))
	require.Equal(t, uint(0), s.Size())
}

func TestHashSet_Of(t *testing.T) {
	s := Of(3, 1, 2, 3)

	require.Equal(t, uint(3), s.Size())
	all := s.Items()
	slices.Sort(all)
	require.Equal(t, []int{1, 2, 3}, all)
}

func TestHashSet_Range(t *testing.T) {
	s := Of(1, 2, 3, 4)

	seen := 0
	s.Range(func(int) bool {
		seen++
		return true
	})
	require.Equal(t, 4, seen)

	seen = 0
	s.Range(func(int) bool {
		seen++
		return false
	})
	require.Equal(t, 1, seen)
}

func TestHashSet_UnionWith(t *testing.T) {
	s := Of(1, 2)
	s.UnionWith(Of(2, 3, 4))

	all := s.Items()
	slices.Sort(all)
	require.Equal(t, []int{1, 2, 3, 4}, all)
}

func TestHashSet_IntersectWith(t *testing.T) {
	s := Of(1, 2, 3, 4)
	s.IntersectWith(Of(2, 4, 6))

	all := s.Items()
	slices.Sort(all)
	require.Equal(t, []int{2, 4}, all)
}

func TestHashSet_ExceptWith(t *testing.T) {
	s := Of(1, 2, 3, 4)
	s.ExceptWith(Of(2, 4, 6))

	all := s.Items()
	slices.Sort(all)
	require.Equal(t, []int{1, 3}, all)
}

func TestHashSet_Clear(t *testing.T) {
	s := Of(1, 2, 3)
	s.Clear()

	require.Equal(t, uint(0), s.Size())
	require.False(t, s.Has(1))
	require.True(t, s.Insert(1))
}
