package storage

import "unsafe"

// ErasedBox holds exactly one value of a type that is only known at runtime.
type ErasedBox struct {
	buf    rawBuffer
	filled bool
}

func NewErasedBox[T any](value T) *ErasedBox {
	return NewErasedBoxFrom(unsafe.Pointer(&value), TypeInfoOf[T]())
}

// NewErasedBoxFrom copies the value ptr points to into a new box.
// The caller must not drop the source afterward.
func NewErasedBoxFrom(ptr unsafe.Pointer, ty *TypeInfo) *ErasedBox {
	b := &ErasedBox{buf: newRawBuffer(ty)}

	if ty.Size() > 0 {
		if err := b.buf.growExact(1); err != nil {
			panic(err)
		}
	}

	ty.copyValue(b.buf.ptr(0), ptr)
	b.filled = true

	return b
}

func (b *ErasedBox) TypeInfo() *TypeInfo {
	return b.buf.ty
}

// Ptr returns a pointer to the boxed value, or nil if the box was dropped.
func (b *ErasedBox) Ptr() unsafe.Pointer {
	if !b.filled {
		return nil
	}

	return b.buf.ptr(0)
}

// Drop drops the boxed value and releases the memory.
func (b *ErasedBox) Drop() {
	if !b.filled {
		return
	}

	b.buf.ty.Drop(b.buf.ptr(0))
	b.buf.release()
	b.filled = false
}

// Unbox returns a copy of the value held by the box.
func Unbox[T any](b *ErasedBox) (T, error) {
	ptr, err := UnboxMut[T](b)
	if err != nil {
		var zero T
		return zero, err
	}

	return *ptr, nil
}

func UnboxMut[T any](b *ErasedBox) (*T, error) {
	if err := mustBeType(b.buf.ty, TypeInfoOf[T](), false); err != nil {
		return nil, err
	}

	if !b.filled {
		return nil, &EmptySlotError{Index: 0}
	}

	return (*T)(b.buf.ptr(0)), nil
}
