package storage

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPack(t *testing.T) {
	packed, err := Pack(Of3(uint8(1), uint64(2), strings.Repeat("x", 64)))
	require.NoError(t, err)

	require.Equal(t, 3, packed.Len())
	require.Equal(t, TypeInfoOf[string]().Size(), packed.Stride())

	runtime.GC()

	ty, ptr := packed.Get(0)
	require.Same(t, TypeInfoOf[uint8](), ty)
	require.Equal(t, uint8(1), *(*uint8)(ptr))

	ty, ptr = packed.Get(1)
	require.Same(t, TypeInfoOf[uint64](), ty)
	require.Equal(t, uint64(2), *(*uint64)(ptr))

	ty, ptr = packed.Get(2)
	require.Same(t, TypeInfoOf[string](), ty)
	require.Equal(t, strings.Repeat("x", 64), *(*string)(ptr))

	require.PanicsWithError(t, (&IndexOutOfBoundsError{Len: 3, Index: 3}).Error(), func() {
		packed.Get(3)
	})
}

func TestPack_StrideIsAligned(t *testing.T) {
	packed, err := Pack(Of2([3]byte{1, 2, 3}, uint16(7)))
	require.NoError(t, err)
	require.Equal(t, uintptr(4), packed.Stride())

	_, ptr := packed.Get(1)
	require.Zero(t, uintptr(ptr)%2)
	require.Equal(t, uint16(7), *(*uint16)(ptr))
}

func TestPack_Put(t *testing.T) {
	var dropped int

	packed, err := Pack(Of2(droppable{Name: "a", dropped: &dropped}, marker{}))
	require.NoError(t, err)

	var c collected
	require.NoError(t, packed.Put(c.put))
	require.Equal(t, []any{droppable{Name: "a", dropped: &dropped}, marker{}}, c.values)

	// a packed bundle never drops its values
	require.Equal(t, 0, dropped)

	var consumed *BundleConsumedError
	require.True(t, errors.As(packed.Put(c.put), &consumed))

	require.Panics(t, func() { packed.Get(0) })
}

func TestPack_Empty(t *testing.T) {
	packed, err := Pack(Empty{})
	require.NoError(t, err)
	require.Equal(t, 0, packed.Len())
	require.Equal(t, uintptr(0), packed.Stride())
}

func TestPack_Values(t *testing.T) {
	packed, err := Pack(ValuesOf(int32(-1), "dynamic"))
	require.NoError(t, err)

	_, ptr := packed.Get(1)
	require.Equal(t, "dynamic", *(*string)(ptr))
}
