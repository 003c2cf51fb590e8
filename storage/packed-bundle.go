package storage

import (
	"fmt"
	"reflect"
	"unsafe"
)

// PackedBundle holds the values of a Bundle in a single allocation. Every value
// occupies a slot of the same size, large enough for the largest value and aligned
// to the largest alignment of all values.
//
// A PackedBundle never drops the values it holds. They are expected to be moved
// out exactly once using Put.
type PackedBundle struct {
	types   []*TypeInfo
	offsets []uintptr
	stride  uintptr

	// typed memory backing all slots
	backing reflect.Value
	memory  unsafe.Pointer

	consumed bool
}

// Pack consumes the bundle and copies its values into a new PackedBundle.
func Pack(bundle Bundle) (*PackedBundle, error) {
	types := bundle.Types()

	var stride uintptr
	var align uintptr = 1

	for _, ty := range types {
		stride = max(stride, ty.Size())
		align = max(align, ty.Align())
	}

	// round up so that every slot starts at an aligned offset
	stride = (stride + align - 1) &^ (align - 1)

	p := &PackedBundle{
		types:  types,
		stride: stride,
	}

	if len(types) > 0 {
		p.allocate()
	}

	var idx int
	err := bundle.Put(func(ptr unsafe.Pointer, ty *TypeInfo) error {
		if idx >= len(types) {
			return fmt.Errorf("bundle yielded more than %d values", len(types))
		}

		if err := mustBeType(types[idx], ty, true); err != nil {
			return err
		}

		ty.copyValue(p.slot(idx), ptr)
		idx += 1

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("pack bundle: %w", err)
	}

	return p, nil
}

func (p *PackedBundle) allocate() {
	fields := make([]reflect.StructField, 0, 2*len(p.types))

	for idx, ty := range p.types {
		fields = append(fields,
			reflect.StructField{
				Name: fmt.Sprintf("V%d", idx),
				Type: ty.Type(),
			},
			reflect.StructField{
				Name: fmt.Sprintf("Pad%d", idx),
				Type: reflect.ArrayOf(int(p.stride-ty.Size()), reflect.TypeFor[byte]()),
			},
		)
	}

	layoutType := reflect.StructOf(fields)

	p.offsets = make([]uintptr, len(p.types))
	for idx := range p.types {
		p.offsets[idx] = layoutType.Field(2 * idx).Offset
	}

	p.backing = reflect.New(layoutType)
	p.memory = p.backing.UnsafePointer()
}

func (p *PackedBundle) slot(index int) unsafe.Pointer {
	return unsafe.Add(p.memory, p.offsets[index])
}

func (p *PackedBundle) Len() int {
	return len(p.types)
}

func (p *PackedBundle) Stride() uintptr {
	return p.stride
}

func (p *PackedBundle) Types() []*TypeInfo {
	return p.types
}

// Get returns the type and a pointer to the value at the given index.
func (p *PackedBundle) Get(index int) (*TypeInfo, unsafe.Pointer) {
	if index < 0 || index >= len(p.types) {
		panic(&IndexOutOfBoundsError{Len: len(p.types), Index: index})
	}

	if p.memory == nil {
		panic("storage: packed bundle was released")
	}

	return p.types[index], p.slot(index)
}

// Put moves every value out of the packed bundle, in order.
func (p *PackedBundle) Put(fn func(ptr unsafe.Pointer, ty *TypeInfo) error) error {
	if p.consumed {
		return &BundleConsumedError{}
	}

	p.consumed = true

	defer p.Release()

	for idx, ty := range p.types {
		if err := fn(p.slot(idx), ty); err != nil {
			return err
		}
	}

	return nil
}

// Release frees the backing memory without dropping any of the values.
func (p *PackedBundle) Release() {
	p.backing = reflect.Value{}
	p.memory = nil
}
