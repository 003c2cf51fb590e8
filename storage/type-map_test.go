package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeMap(t *testing.T) {
	m := NewTypeMap[string]()

	_, replaced := m.Insert(TypeInfoOf[uint8](), "u8")
	require.False(t, replaced)

	m.Insert(TypeInfoOf[uint64](), "u64")

	previous, replaced := m.Insert(TypeInfoOf[uint8](), "byte")
	require.True(t, replaced)
	require.Equal(t, "u8", previous)

	value, ok := m.Get(TypeInfoOf[uint8]())
	require.True(t, ok)
	require.Equal(t, "byte", value)

	require.True(t, m.Contains(TypeInfoOf[uint64]()))
	require.False(t, m.Contains(TypeInfoOf[string]()))
	require.Nil(t, m.GetPtr(TypeInfoOf[string]()))

	*m.GetPtr(TypeInfoOf[uint64]()) = "quad"

	var keys []*TypeInfo
	var values []string
	for ty, value := range m.All() {
		keys = append(keys, ty)
		values = append(values, value)
	}

	require.Equal(t, []*TypeInfo{TypeInfoOf[uint64](), TypeInfoOf[uint8]()}, keys)
	require.Equal(t, []string{"quad", "byte"}, values)

	removed, ok := m.Remove(TypeInfoOf[uint8]())
	require.True(t, ok)
	require.Equal(t, "byte", removed)
	require.Equal(t, 1, m.Len())

	_, ok = m.Remove(TypeInfoOf[uint8]())
	require.False(t, ok)
}

func TestTypeMap_ZeroValue(t *testing.T) {
	var m TypeMap[int]
	require.Equal(t, 0, m.Len())

	_, ok := m.Get(TypeInfoOf[int]())
	require.False(t, ok)

	m.Insert(TypeInfoOf[int](), 1)
	require.Equal(t, 1, m.Len())
}
