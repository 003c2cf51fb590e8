package storage

import (
	"reflect"
	"unsafe"

	"github.com/oliverbestmann/nina/internal/set"
)

//go:generate go run ../internal/cmd/bundlegen -out bundle_generated.go

// Bundle is an ordered list of values of different types that are
// handed over to a storage together.
type Bundle interface {
	// Types returns the type of each value in the bundle, in order.
	// It does not consume the bundle.
	Types() []*TypeInfo

	// Put passes a pointer to each value together with its type to fn, in order.
	// Ownership of the value moves to fn: the bundle forgets each value after fn
	// returned. Put consumes the bundle, calling it a second time fails.
	Put(fn func(ptr unsafe.Pointer, ty *TypeInfo) error) error
}

// Empty is the Bundle without any values.
type Empty struct{}

func (Empty) Types() []*TypeInfo {
	return nil
}

func (Empty) Put(func(ptr unsafe.Pointer, ty *TypeInfo) error) error {
	return nil
}

type erasedValue struct {
	ty  *TypeInfo
	ptr unsafe.Pointer
}

// Values is a Bundle that is assembled at runtime.
type Values struct {
	values   []erasedValue
	consumed bool
}

// ValuesOf builds a Values bundle from the dynamic types of the given values.
func ValuesOf(values ...any) *Values {
	var v Values
	for _, value := range values {
		v.AppendAny(value)
	}

	return &v
}

// Append adds a value of type T to the bundle.
func Append[T any](v *Values, value T) *Values {
	v.values = append(v.values, erasedValue{ty: TypeInfoOf[T](), ptr: unsafe.Pointer(&value)})
	return v
}

// AppendAny adds a copy of value to the bundle, typed by its dynamic type.
func (v *Values) AppendAny(value any) *Values {
	if value == nil {
		panic("storage: can not add untyped nil to a bundle")
	}

	rValue := reflect.ValueOf(value)

	copied := reflect.New(rValue.Type())
	copied.Elem().Set(rValue)

	v.values = append(v.values, erasedValue{
		ty:  TypeInfoFor(rValue.Type()),
		ptr: copied.UnsafePointer(),
	})

	return v
}

// AppendErased adds the value ptr points to. The value is not copied until
// the bundle is consumed, ptr must stay valid until then.
func (v *Values) AppendErased(ptr unsafe.Pointer, ty *TypeInfo) *Values {
	v.values = append(v.values, erasedValue{ty: ty, ptr: ptr})
	return v
}

func (v *Values) Len() int {
	return len(v.values)
}

// Reset clears the bundle so it can be filled again.
func (v *Values) Reset() {
	clear(v.values)
	v.values = v.values[:0]
	v.consumed = false
}

func (v *Values) Types() []*TypeInfo {
	types := make([]*TypeInfo, 0, len(v.values))
	for _, value := range v.values {
		types = append(types, value.ty)
	}

	return types
}

func (v *Values) Put(fn func(ptr unsafe.Pointer, ty *TypeInfo) error) error {
	if v.consumed {
		return &BundleConsumedError{}
	}

	v.consumed = true

	for idx, value := range v.values {
		if err := fn(value.ptr, value.ty); err != nil {
			return err
		}

		v.values[idx].ptr = nil
	}

	return nil
}

// CheckDistinct verifies that no type appears twice in the given list.
func CheckDistinct(types []*TypeInfo) error {
	if len(types) < 2 {
		return nil
	}

	var seen set.Set[TypeId]
	for _, ty := range types {
		if !seen.Insert(ty.Id()) {
			return &DuplicateTypeError{Type: ty}
		}
	}

	return nil
}
