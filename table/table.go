package table

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/oliverbestmann/nina/storage"
)

type column struct {
	values *storage.ErasedVec
	bit    int
}

// Table stores components in one column per registered component type. Every
// column has one slot per entity. A Bitmask per entity records which of the
// slots currently hold a component.
//
// A Table must not be used concurrently. Use a World to share a Table
// between goroutines.
type Table struct {
	byType  storage.TypeMap[*column]
	columns []*column

	masks []Bitmask
	alive []bool

	// the entity returned by the most recent call to CreateEntity
	current    EntityId
	hasCurrent bool
}

func New() *Table {
	return &Table{}
}

// RegisterComponent adds a column for the given type. The type is assigned the
// next free bit, in registration order.
func (t *Table) RegisterComponent(ty *storage.TypeInfo) error {
	if t.byType.Contains(ty) {
		return &AlreadyRegisteredError{Type: ty}
	}

	if len(t.columns) >= MaxComponentTypes {
		return &TooManyComponentsError{Type: ty}
	}

	col := &column{
		values: storage.NewErasedVec(ty),
		bit:    len(t.columns),
	}

	// the new column needs a slot for every existing entity
	for range t.masks {
		col.values.Pad()
	}

	t.byType.Insert(ty, col)
	t.columns = append(t.columns, col)

	slog.Debug(
		"Component type registered",
		slog.String("type", ty.Name()),
		slog.Int("bit", col.bit),
	)

	return nil
}

func Register[T any](t *Table) error {
	return t.RegisterComponent(storage.TypeInfoOf[T]())
}

// ComponentTypes returns the registered types in registration order.
func (t *Table) ComponentTypes() []*storage.TypeInfo {
	types := make([]*storage.TypeInfo, 0, len(t.columns))
	for _, col := range t.columns {
		types = append(types, col.values.TypeInfo())
	}

	return types
}

// CreateEntity returns the lowest free entity slot, or appends a new slot
// to every column if all slots are taken. The new entity becomes the target
// of WithComponent and WithComponents.
func (t *Table) CreateEntity() EntityId {
	entityId, ok := t.reuseSlot()
	if !ok {
		for _, col := range t.columns {
			col.values.Pad()
		}

		entityId = EntityId(len(t.masks))
		t.masks = append(t.masks, Bitmask{})
		t.alive = append(t.alive, true)
	}

	t.current = entityId
	t.hasCurrent = true

	return entityId
}

func (t *Table) reuseSlot() (EntityId, bool) {
	for idx, alive := range t.alive {
		if !alive {
			t.alive[idx] = true
			t.masks[idx] = Bitmask{}
			return EntityId(idx), true
		}
	}

	return 0, false
}

// WithComponents writes all values of the bundle into the entity most recently
// returned by CreateEntity.
func (t *Table) WithComponents(bundle storage.Bundle) error {
	entityId, err := t.currentEntity()
	if err != nil {
		return err
	}

	return t.AddComponents(entityId, bundle)
}

func WithComponent[T any](t *Table, value T) error {
	entityId, err := t.currentEntity()
	if err != nil {
		return err
	}

	return t.AddComponentErased(entityId, storage.TypeInfoOf[T](), unsafe.Pointer(&value))
}

func (t *Table) currentEntity() (EntityId, error) {
	if !t.hasCurrent || !t.Exists(t.current) {
		return t.current, &EntityNotFoundError{Entity: t.current}
	}

	return t.current, nil
}

// AddComponentErased copies the value ptr points to into the entity's slot of the
// column for ty. A value that is still held by the slot is dropped first.
func (t *Table) AddComponentErased(entityId EntityId, ty *storage.TypeInfo, ptr unsafe.Pointer) error {
	col, err := t.column(ty)
	if err != nil {
		return err
	}

	if err := t.checkEntity(entityId); err != nil {
		return err
	}

	row := int(entityId)
	mask := &t.masks[row]

	// a slot keeps its value after DeleteComponent until it is written again
	if mask.Has(col.bit) || col.values.IsFilled(row) {
		err = col.values.ResetErased(row, ty, ptr)
	} else {
		err = col.values.SetErased(row, ptr, ty)
	}

	if err != nil {
		return err
	}

	mask.Set(col.bit)

	return nil
}

func AddComponent[T any](t *Table, entityId EntityId, value T) error {
	return t.AddComponentErased(entityId, storage.TypeInfoOf[T](), unsafe.Pointer(&value))
}

// AddComponents writes all values of the bundle into the entity. Nothing is written
// if one of the types is not registered or appears more than once.
func (t *Table) AddComponents(entityId EntityId, bundle storage.Bundle) error {
	types := bundle.Types()

	if err := storage.CheckDistinct(types); err != nil {
		return err
	}

	for _, ty := range types {
		if _, err := t.column(ty); err != nil {
			return err
		}
	}

	if err := t.checkEntity(entityId); err != nil {
		return err
	}

	return bundle.Put(func(ptr unsafe.Pointer, ty *storage.TypeInfo) error {
		return t.AddComponentErased(entityId, ty, ptr)
	})
}

// DeleteComponentErased removes the component from the entity. The value stays in
// the column until the slot is written again or the table is dropped.
func (t *Table) DeleteComponentErased(entityId EntityId, ty *storage.TypeInfo) error {
	col, err := t.column(ty)
	if err != nil {
		return err
	}

	if err := t.checkEntity(entityId); err != nil {
		return err
	}

	t.masks[entityId].Clear(col.bit)

	return nil
}

func DeleteComponent[T any](t *Table, entityId EntityId) error {
	return t.DeleteComponentErased(entityId, storage.TypeInfoOf[T]())
}

// DeleteEntity frees the entity slot for reuse by CreateEntity.
func (t *Table) DeleteEntity(entityId EntityId) error {
	if err := t.checkEntity(entityId); err != nil {
		return err
	}

	t.masks[entityId] = Bitmask{}
	t.alive[entityId] = false

	return nil
}

func (t *Table) HasComponentErased(entityId EntityId, ty *storage.TypeInfo) (bool, error) {
	col, err := t.column(ty)
	if err != nil {
		return false, err
	}

	if err := t.checkEntity(entityId); err != nil {
		return false, err
	}

	return t.masks[entityId].Has(col.bit), nil
}

func HasComponent[T any](t *Table, entityId EntityId) (bool, error) {
	return t.HasComponentErased(entityId, storage.TypeInfoOf[T]())
}

// GetComponent returns a copy of the entities component of type T.
func GetComponent[T any](t *Table, entityId EntityId) (T, error) {
	ptr, err := GetComponentMut[T](t, entityId)
	if err != nil {
		var zero T
		return zero, err
	}

	return *ptr, nil
}

// GetComponentMut returns a pointer to the entities component of type T.
// The pointer is valid until the next entity is appended to the table.
func GetComponentMut[T any](t *Table, entityId EntityId) (*T, error) {
	ty := storage.TypeInfoOf[T]()

	col, err := t.column(ty)
	if err != nil {
		return nil, err
	}

	if err := t.checkEntity(entityId); err != nil {
		return nil, err
	}

	if !t.masks[entityId].Has(col.bit) {
		return nil, &ComponentNotFoundError{Entity: entityId, Type: ty}
	}

	return storage.GetMutUnchecked[T](col.values, int(entityId)), nil
}

// Bitmask returns the Bitmask with only the bit of the given type set.
func (t *Table) Bitmask(ty *storage.TypeInfo) (Bitmask, error) {
	col, err := t.column(ty)
	if err != nil {
		return Bitmask{}, err
	}

	return BitmaskOfBit(col.bit), nil
}

func BitmaskOf[T any](t *Table) (Bitmask, error) {
	return t.Bitmask(storage.TypeInfoOf[T]())
}

// EntityMask returns the components present on the entity.
func (t *Table) EntityMask(entityId EntityId) (Bitmask, error) {
	if err := t.checkEntity(entityId); err != nil {
		return Bitmask{}, err
	}

	return t.masks[entityId], nil
}

// Exists returns true if the entity was created and not yet deleted.
func (t *Table) Exists(entityId EntityId) bool {
	return int(entityId) < len(t.alive) && t.alive[entityId]
}

// Len returns the number of entity slots, including free ones.
func (t *Table) Len() int {
	return len(t.masks)
}

// Drop drops every value still held by any column and removes all entities.
// Component registrations are kept.
func (t *Table) Drop() {
	for _, col := range t.byType.All() {
		col.values.Drop()
	}

	t.masks = nil
	t.alive = nil
	t.hasCurrent = false
}

func (t *Table) column(ty *storage.TypeInfo) (*column, error) {
	col, ok := t.byType.Get(ty)
	if !ok {
		return nil, &NotRegisteredError{Type: ty}
	}

	return col, nil
}

func (t *Table) checkEntity(entityId EntityId) error {
	if !t.Exists(entityId) {
		return &EntityNotFoundError{Entity: entityId}
	}

	return nil
}

func (t *Table) String() string {
	return fmt.Sprintf("Table{components=%d, slots=%d}", len(t.columns), len(t.masks))
}
