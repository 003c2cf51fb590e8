package storage

import (
	"iter"
	"maps"
	"slices"
)

type typeMapEntry[V any] struct {
	ty    *TypeInfo
	value V
}

// TypeMap maps a TypeInfo to a value. Entries are keyed by the TypeId, which
// the Go runtime hashes without looking at the TypeInfo itself.
type TypeMap[V any] struct {
	entries map[TypeId]*typeMapEntry[V]
}

func NewTypeMap[V any]() *TypeMap[V] {
	return &TypeMap[V]{entries: map[TypeId]*typeMapEntry[V]{}}
}

// Insert stores the value for the given type and returns the previous value, if any.
func (m *TypeMap[V]) Insert(ty *TypeInfo, value V) (V, bool) {
	if m.entries == nil {
		m.entries = map[TypeId]*typeMapEntry[V]{}
	}

	previous, ok := m.entries[ty.Id()]
	m.entries[ty.Id()] = &typeMapEntry[V]{ty: ty, value: value}

	if !ok {
		var zero V
		return zero, false
	}

	return previous.value, true
}

func (m *TypeMap[V]) Get(ty *TypeInfo) (V, bool) {
	entry, ok := m.entries[ty.Id()]
	if !ok {
		var zero V
		return zero, false
	}

	return entry.value, true
}

// GetPtr returns a pointer to the value stored for the given type, or nil.
func (m *TypeMap[V]) GetPtr(ty *TypeInfo) *V {
	entry, ok := m.entries[ty.Id()]
	if !ok {
		return nil
	}

	return &entry.value
}

func (m *TypeMap[V]) Contains(ty *TypeInfo) bool {
	_, ok := m.entries[ty.Id()]
	return ok
}

func (m *TypeMap[V]) Remove(ty *TypeInfo) (V, bool) {
	entry, ok := m.entries[ty.Id()]
	if !ok {
		var zero V
		return zero, false
	}

	delete(m.entries, ty.Id())
	return entry.value, true
}

func (m *TypeMap[V]) Len() int {
	return len(m.entries)
}

// All yields all entries ordered by TypeInfo.Compare.
func (m *TypeMap[V]) All() iter.Seq2[*TypeInfo, V] {
	return func(yield func(*TypeInfo, V) bool) {
		entries := slices.Collect(maps.Values(m.entries))
		slices.SortFunc(entries, func(a, b *typeMapEntry[V]) int {
			return a.ty.Compare(b.ty)
		})

		for _, entry := range entries {
			if !yield(entry.ty, entry.value) {
				return
			}
		}
	}
}
