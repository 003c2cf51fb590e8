package storage

import (
	"errors"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type collected struct {
	types  []*TypeInfo
	values []any
}

func (c *collected) put(ptr unsafe.Pointer, ty *TypeInfo) error {
	c.types = append(c.types, ty)
	c.values = append(c.values, reflect.NewAt(ty.Type(), ptr).Elem().Interface())
	return nil
}

func TestBundle_Generated(t *testing.T) {
	bundle := Of3(uint32(5), float32(2.5), "text")

	expectedTypes := []*TypeInfo{TypeInfoOf[uint32](), TypeInfoOf[float32](), TypeInfoOf[string]()}
	require.Equal(t, expectedTypes, bundle.Types())

	var c collected
	require.NoError(t, bundle.Put(c.put))
	require.Equal(t, expectedTypes, c.types)
	require.Equal(t, []any{uint32(5), float32(2.5), "text"}, c.values)

	// values were moved out of the bundle
	require.Equal(t, "", bundle.V2)

	// types are still available after consumption
	require.Equal(t, expectedTypes, bundle.Types())

	var consumed *BundleConsumedError
	require.True(t, errors.As(bundle.Put(c.put), &consumed))
}

func TestBundle_PutStopsOnError(t *testing.T) {
	bundle := Of2(1, "two")

	var calls int
	err := bundle.Put(func(ptr unsafe.Pointer, ty *TypeInfo) error {
		calls += 1
		return errors.New("rejected")
	})

	require.EqualError(t, err, "rejected")
	require.Equal(t, 1, calls)
}

func TestBundle_Empty(t *testing.T) {
	var bundle Bundle = Empty{}
	require.Empty(t, bundle.Types())
	require.NoError(t, bundle.Put(func(unsafe.Pointer, *TypeInfo) error {
		panic("must not be called")
	}))
}

func TestValues(t *testing.T) {
	values := ValuesOf(uint8(1), "two")
	Append(values, [2]int{3, 4})

	require.Equal(t, 3, values.Len())
	require.Equal(t,
		[]*TypeInfo{TypeInfoOf[uint8](), TypeInfoOf[string](), TypeInfoOf[[2]int]()},
		values.Types(),
	)

	var c collected
	require.NoError(t, values.Put(c.put))
	require.Equal(t, []any{uint8(1), "two", [2]int{3, 4}}, c.values)

	var consumed *BundleConsumedError
	require.True(t, errors.As(values.Put(c.put), &consumed))

	values.Reset()
	require.Equal(t, 0, values.Len())
	require.NoError(t, Append(values, 1.5).Put(c.put))
	require.Equal(t, 1.5, c.values[3])
}

func TestCheckDistinct(t *testing.T) {
	require.NoError(t, CheckDistinct(Of3(1, "a", 2.0).Types()))

	err := CheckDistinct(Of3(1, "a", 2).Types())

	var duplicate *DuplicateTypeError
	require.True(t, errors.As(err, &duplicate))
	require.Same(t, TypeInfoOf[int](), duplicate.Type)
}
