package storage

import (
	"math"
	"reflect"
	"unsafe"
)

// all zero sized values share this address
var zeroSized struct{}

// rawBuffer owns the memory for a number of values of a single type. The memory
// is held by a reflect slice of the element type, so the garbage collector
// sees every pointer stored in it.
type rawBuffer struct {
	ty *TypeInfo

	// slice of values with len == cap, nil until the first growth
	slice reflect.Value

	// memory points to the data of the slice
	memory unsafe.Pointer

	cap int

	// layout of the current allocation
	layout Layout

	// number of allocations performed, only used for testing
	allocations int
}

func newRawBuffer(ty *TypeInfo) rawBuffer {
	b := rawBuffer{ty: ty}

	if ty.Size() == 0 {
		// zero sized types never allocate
		b.cap = math.MaxInt
		b.memory = unsafe.Pointer(&zeroSized)
	}

	return b
}

func (b *rawBuffer) grow() error {
	if b.ty.Size() == 0 {
		return &CapacityOverflowError{Type: b.ty}
	}

	if b.cap == 0 {
		return b.growExact(1)
	}

	newCap := b.cap * 2
	if newCap < b.cap {
		newCap = math.MaxInt
	}

	return b.growExact(newCap)
}

func (b *rawBuffer) growExact(capacity int) error {
	if b.ty.Size() == 0 {
		return &CapacityOverflowError{Type: b.ty}
	}

	if capacity <= b.cap {
		return nil
	}

	layout, err := b.ty.ArrayLayout(capacity)
	if err != nil {
		return &AllocError{Type: b.ty, Capacity: capacity, Err: err}
	}

	slice := reflect.MakeSlice(reflect.SliceOf(b.ty.Type()), capacity, capacity)
	if b.cap > 0 {
		reflect.Copy(slice, b.slice)
	}

	b.slice = slice
	b.memory = slice.UnsafePointer()
	b.cap = capacity
	b.layout = layout
	b.allocations += 1

	return nil
}

// ptr returns a pointer to the value at the given index. The index is not checked.
func (b *rawBuffer) ptr(index int) unsafe.Pointer {
	return unsafe.Add(b.memory, uintptr(index)*b.ty.Size())
}

// shiftRight moves count values starting at index one slot to the right.
func (b *rawBuffer) shiftRight(index, count int) {
	if b.ty.Size() == 0 || count == 0 {
		return
	}

	reflect.Copy(
		b.slice.Slice(index+1, index+1+count),
		b.slice.Slice(index, index+count),
	)
}

// release gives up the allocation. Values are not dropped.
func (b *rawBuffer) release() {
	if b.ty.Size() == 0 || b.cap == 0 {
		return
	}

	b.slice = reflect.Value{}
	b.memory = nil
	b.cap = 0
	b.layout = Layout{}
}
