package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErasedBox(t *testing.T) {
	box := NewErasedBox("hello")
	require.Same(t, TypeInfoOf[string](), box.TypeInfo())

	value, err := Unbox[string](box)
	require.NoError(t, err)
	require.Equal(t, "hello", value)

	ptr, err := UnboxMut[string](box)
	require.NoError(t, err)
	*ptr = "world"

	value, _ = Unbox[string](box)
	require.Equal(t, "world", value)

	_, err = Unbox[int](box)

	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	require.False(t, mismatch.Insertion)
}

func TestErasedBox_FromPointer(t *testing.T) {
	source := [3]uint16{1, 2, 3}
	box := NewErasedBoxFrom(unsafePointerTo(&source), TypeInfoOf[[3]uint16]())

	// the box holds its own copy
	source[0] = 100

	value, err := Unbox[[3]uint16](box)
	require.NoError(t, err)
	require.Equal(t, [3]uint16{1, 2, 3}, value)
}

func TestErasedBox_Drop(t *testing.T) {
	var dropped int

	box := NewErasedBox(droppable{Name: "res", dropped: &dropped})
	box.Drop()
	require.Equal(t, 1, dropped)
	require.Nil(t, box.Ptr())

	// dropping twice is a no-op
	box.Drop()
	require.Equal(t, 1, dropped)

	_, err := Unbox[droppable](box)

	var emptyErr *EmptySlotError
	require.True(t, errors.As(err, &emptyErr))
}

func TestErasedBox_ZeroSized(t *testing.T) {
	box := NewErasedBox(marker{})
	require.Equal(t, 0, box.buf.allocations)

	_, err := Unbox[marker](box)
	require.NoError(t, err)
}
