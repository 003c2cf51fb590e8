package storage

import (
	"slices"
	"unsafe"
)

// ErasedVec is a growable array of values of a single type that is only known at runtime.
// Next to every value, it tracks if the slot holds a live value. Slots created by Pad
// do not hold a value until they are written using Set or SetErased.
type ErasedVec struct {
	buf    rawBuffer
	len    int
	filled []bool
}

func NewErasedVec(ty *TypeInfo) *ErasedVec {
	return &ErasedVec{buf: newRawBuffer(ty)}
}

func NewErasedVecOf[T any]() *ErasedVec {
	return NewErasedVec(TypeInfoOf[T]())
}

func (v *ErasedVec) TypeInfo() *TypeInfo {
	return v.buf.ty
}

func (v *ErasedVec) Len() int {
	return v.len
}

func (v *ErasedVec) Cap() int {
	return v.buf.cap
}

func (v *ErasedVec) IsFilled(index int) bool {
	v.checkIndex(index)
	return v.filled[index]
}

// Ptr returns a pointer to the slot at the given index.
func (v *ErasedVec) Ptr(index int) unsafe.Pointer {
	v.checkIndex(index)
	return v.buf.ptr(index)
}

// PushErased appends the value ptr points to. The value is copied into the vec,
// the caller must not drop the source afterward.
func (v *ErasedVec) PushErased(ptr unsafe.Pointer, ty *TypeInfo) error {
	if err := mustBeType(v.buf.ty, ty, true); err != nil {
		return err
	}

	v.reserve()

	index := v.len
	v.len += 1
	v.filled = append(v.filled, true)

	ty.copyValue(v.buf.ptr(index), ptr)

	return nil
}

// Pad appends an empty slot. The slot holds the zero value but is not marked as filled.
func (v *ErasedVec) Pad() {
	v.reserve()

	index := v.len
	v.len += 1
	v.filled = append(v.filled, false)

	if v.buf.ty.Size() > 0 {
		v.buf.ty.zeroValue(v.buf.ptr(index))
	}
}

// InsertErased inserts the value at the given index, shifting all values after it to the right.
func (v *ErasedVec) InsertErased(ptr unsafe.Pointer, ty *TypeInfo, index int) error {
	if err := mustBeType(v.buf.ty, ty, true); err != nil {
		return err
	}

	if index < 0 || index > v.len {
		panic(&IndexOutOfBoundsError{Len: v.len, Index: index})
	}

	v.reserve()

	v.buf.shiftRight(index, v.len-index)
	v.len += 1
	v.filled = slices.Insert(v.filled, index, true)

	ty.copyValue(v.buf.ptr(index), ptr)

	return nil
}

// SetErased overwrites the slot at the given index without dropping the previous value.
func (v *ErasedVec) SetErased(index int, ptr unsafe.Pointer, ty *TypeInfo) error {
	if err := mustBeType(v.buf.ty, ty, true); err != nil {
		return err
	}

	v.checkIndex(index)

	ty.copyValue(v.buf.ptr(index), ptr)
	v.filled[index] = true

	return nil
}

// ResetErased drops the value at the given index, if any, and then writes the new value.
func (v *ErasedVec) ResetErased(index int, ty *TypeInfo, ptr unsafe.Pointer) error {
	if err := mustBeType(v.buf.ty, ty, true); err != nil {
		return err
	}

	v.checkIndex(index)

	if v.filled[index] {
		ty.Drop(v.buf.ptr(index))
	}

	ty.copyValue(v.buf.ptr(index), ptr)
	v.filled[index] = true

	return nil
}

// Drop drops every filled value and releases the memory. The vec is empty afterward.
func (v *ErasedVec) Drop() {
	ty := v.buf.ty

	for index, filled := range v.filled[:v.len] {
		if filled {
			ty.Drop(v.buf.ptr(index))
		}
	}

	v.buf.release()
	v.len = 0
	v.filled = nil
}

func (v *ErasedVec) reserve() {
	if v.len < v.buf.cap {
		return
	}

	if err := v.buf.grow(); err != nil {
		panic(err)
	}
}

func (v *ErasedVec) checkIndex(index int) {
	if index < 0 || index >= v.len {
		panic(&IndexOutOfBoundsError{Len: v.len, Index: index})
	}
}

func Push[T any](v *ErasedVec, value T) error {
	return v.PushErased(unsafe.Pointer(&value), TypeInfoOf[T]())
}

func Insert[T any](v *ErasedVec, index int, value T) error {
	return v.InsertErased(unsafe.Pointer(&value), TypeInfoOf[T](), index)
}

func Set[T any](v *ErasedVec, index int, value T) error {
	return v.SetErased(index, unsafe.Pointer(&value), TypeInfoOf[T]())
}

// Get returns a copy of the value at the given index.
func Get[T any](v *ErasedVec, index int) (T, error) {
	ptr, err := GetMut[T](v, index)
	if err != nil {
		var zero T
		return zero, err
	}

	return *ptr, nil
}

// GetMut returns a pointer to the value at the given index. The pointer is valid
// until the vec grows.
func GetMut[T any](v *ErasedVec, index int) (*T, error) {
	if err := mustBeType(v.buf.ty, TypeInfoOf[T](), false); err != nil {
		return nil, err
	}

	v.checkIndex(index)

	if !v.filled[index] {
		return nil, &EmptySlotError{Index: index}
	}

	return (*T)(v.buf.ptr(index)), nil
}

// GetUnchecked returns the value at the given index without validating the type.
// It returns the zero value for slots that were padded but never set.
func GetUnchecked[T any](v *ErasedVec, index int) T {
	return *GetMutUnchecked[T](v, index)
}

func GetMutUnchecked[T any](v *ErasedVec, index int) *T {
	v.checkIndex(index)
	return (*T)(v.buf.ptr(index))
}
