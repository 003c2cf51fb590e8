package storage

import (
	"cmp"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"reflect"
	"slices"
	"sync/atomic"
	"unsafe"
)

type TypeId uint32

// Layout describes the memory footprint of a value or a contiguous array of values.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// Dropper is implemented by values that own resources which must be released
// before their memory is discarded. Drop is called on a pointer to the stored value.
type Dropper interface {
	Drop()
}

// TypeInfo describes one concrete Go type. A TypeInfo is created once per type
// and lives for the rest of the process, two TypeInfo values describe the same
// type iff they are the same pointer.
type TypeInfo struct {
	id     TypeId
	name   string
	typ    reflect.Type
	layout Layout

	// hasPointers indicates that a value of the type contains pointers, e.g.
	// by having a field of type *T, a string, a slice or a map value.
	hasPointers bool

	copyValue func(dst, src unsafe.Pointer)
	zeroValue func(ptr unsafe.Pointer)

	// only set if *T implements Dropper
	dropValue func(ptr unsafe.Pointer)
}

func (ty *TypeInfo) Id() TypeId {
	return ty.id
}

func (ty *TypeInfo) Name() string {
	return ty.name
}

func (ty *TypeInfo) Type() reflect.Type {
	return ty.typ
}

func (ty *TypeInfo) Layout() Layout {
	return ty.layout
}

func (ty *TypeInfo) Size() uintptr {
	return ty.layout.Size
}

func (ty *TypeInfo) Align() uintptr {
	return ty.layout.Align
}

func (ty *TypeInfo) HasPointers() bool {
	return ty.hasPointers
}

func (ty *TypeInfo) String() string {
	return ty.name
}

func (ty *TypeInfo) Equal(other *TypeInfo) bool {
	return ty == other || (ty != nil && other != nil && ty.id == other.id)
}

// Compare orders types by alignment, largest first. Types with the same
// alignment are ordered by their id.
func (ty *TypeInfo) Compare(other *TypeInfo) int {
	if c := cmp.Compare(other.layout.Align, ty.layout.Align); c != 0 {
		return c
	}

	return cmp.Compare(ty.id, other.id)
}

// Drop releases the value stored at ptr. If the type implements Dropper,
// its Drop method is called first. Afterward, the memory is reset to the
// zero value so that it does not keep any references alive.
func (ty *TypeInfo) Drop(ptr unsafe.Pointer) {
	if ty.dropValue != nil {
		ty.dropValue(ptr)
	}

	if ty.layout.Size > 0 {
		ty.zeroValue(ptr)
	}
}

// ArrayLayout computes the layout of n contiguous values of this type.
func (ty *TypeInfo) ArrayLayout(n int) (Layout, error) {
	size := ty.layout.Size

	if n < 0 || size != 0 && n > (math.MaxInt-int(ty.layout.Align-1))/int(size) {
		return Layout{}, &LayoutError{Type: ty, Count: n}
	}

	return Layout{Size: size * uintptr(n), Align: ty.layout.Align}, nil
}

// SortTypes sorts the given types using TypeInfo.Compare.
func SortTypes(types []*TypeInfo) {
	slices.SortFunc(types, (*TypeInfo).Compare)
}

var typeInfos atomic.Pointer[map[unsafe.Pointer]*TypeInfo]

func init() {
	// initialize the lookup table
	typeInfos.Store(&map[unsafe.Pointer]*TypeInfo{})
}

// TypeInfoOf returns the TypeInfo for T.
func TypeInfoOf[T any]() *TypeInfo {
	reflectType := reflect.TypeFor[T]()
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := (*typeInfos.Load())[ptrToType]; ok {
		return cached
	}

	return ensureTypeInfo(ptrToType, func(id TypeId) *TypeInfo {
		ty := newTypeInfo(id, reflectType)

		if ty.hasPointers {
			ty.copyValue = typedCopy[T]
		}

		ty.zeroValue = typedZero[T]

		if _, ok := any((*T)(nil)).(Dropper); ok {
			ty.dropValue = typedDrop[T]
		}

		return ty
	})
}

// TypeInfoFor returns the TypeInfo for the given reflect.Type. It returns the
// same instance as TypeInfoOf if called with the same type.
func TypeInfoFor(reflectType reflect.Type) *TypeInfo {
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := (*typeInfos.Load())[ptrToType]; ok {
		return cached
	}

	return ensureTypeInfo(ptrToType, func(id TypeId) *TypeInfo {
		ty := newTypeInfo(id, reflectType)

		if ty.hasPointers {
			ty.copyValue = func(dst, src unsafe.Pointer) {
				reflect.NewAt(reflectType, dst).Elem().Set(reflect.NewAt(reflectType, src).Elem())
			}
		}

		ty.zeroValue = func(ptr unsafe.Pointer) {
			reflect.NewAt(reflectType, ptr).Elem().SetZero()
		}

		if reflect.PointerTo(reflectType).Implements(reflect.TypeFor[Dropper]()) {
			ty.dropValue = func(ptr unsafe.Pointer) {
				reflect.NewAt(reflectType, ptr).Interface().(Dropper).Drop()
			}
		}

		return ty
	})
}

func newTypeInfo(id TypeId, reflectType reflect.Type) *TypeInfo {
	ty := &TypeInfo{
		id:   id,
		typ:  reflectType,
		name: reflectType.String(),
		layout: Layout{
			Size:  reflectType.Size(),
			Align: uintptr(reflectType.Align()),
		},
		hasPointers: typeHasPointers(reflectType),
	}

	if !ty.hasPointers {
		size := ty.layout.Size
		ty.copyValue = func(dst, src unsafe.Pointer) {
			rawCopy(dst, src, size)
		}
	}

	return ty
}

func ensureTypeInfo(ptrToType unsafe.Pointer, makeType func(id TypeId) *TypeInfo) *TypeInfo {
	for {
		previousTypes := typeInfos.Load()
		if cached, ok := (*previousTypes)[ptrToType]; ok {
			return cached
		}

		newType := makeType(TypeId(len(*previousTypes) + 1))

		newTypes := maps.Clone(*previousTypes)
		newTypes[ptrToType] = newType

		if typeInfos.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New type registered",
				slog.String("name", newType.name),
				slog.Int("id", int(newType.id)),
			)

			return newType
		}
	}
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.String, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true

	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())

	case reflect.Struct:
		for idx := range t.NumField() {
			if typeHasPointers(t.Field(idx).Type) {
				return true
			}
		}

		return false

	default:
		return false
	}
}

type buf *[math.MaxInt32]byte

func rawCopy(to, from unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}

	dst := (*buf(to))[:size]
	src := (*buf(from))[:size]
	copy(dst, src)
}

func typedCopy[T any](dst, src unsafe.Pointer) {
	*(*T)(dst) = *(*T)(src)
}

func typedZero[T any](ptr unsafe.Pointer) {
	var zero T
	*(*T)(ptr) = zero
}

func typedDrop[T any](ptr unsafe.Pointer) {
	any((*T)(ptr)).(Dropper).Drop()
}

func mustBeType(expected, actual *TypeInfo, insertion bool) error {
	if expected.Equal(actual) {
		return nil
	}

	return &TypeMismatchError{Expected: expected, Actual: actual, Insertion: insertion}
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout{size=%d, align=%d}", l.Size, l.Align)
}
