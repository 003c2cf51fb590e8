// Package nina is an in-memory entity component store.
//
// Components are stored in type erased columns, one column per registered
// component type, indexed by entity. A World wraps the storage and allows many
// concurrent readers or a single writer at any time.
package nina

import (
	"sync"

	"github.com/oliverbestmann/nina/internal/assert"
	"github.com/oliverbestmann/nina/internal/typedpool"
	"github.com/oliverbestmann/nina/storage"
	"github.com/oliverbestmann/nina/table"
)

type EntityId = table.EntityId

var valuesPool = typedpool.New[storage.Values]((*storage.Values).Reset)

// Filter selects entities by the component types they have and do not have.
type Filter struct {
	With    []*storage.TypeInfo
	Without []*storage.TypeInfo
}

// World holds all entities and resources.
type World struct {
	noCopy noCopy

	mu        sync.RWMutex
	table     *table.Table
	resources *Resources
}

// NewWorld creates a new empty world.
func NewWorld() *World {
	return &World{
		table:     table.New(),
		resources: &Resources{},
	}
}

// Update calls fn with exclusive access to the table.
func (w *World) Update(fn func(t *table.Table) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return fn(w.table)
}

// View calls fn with shared access to the table. fn must not modify the table.
func (w *World) View(fn func(t *table.Table) error) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return fn(w.table)
}

// WithResources calls fn with exclusive access to the worlds resources.
func (w *World) WithResources(fn func(r *Resources) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return fn(w.resources)
}

func (w *World) RegisterComponent(ty *storage.TypeInfo) error {
	return w.Update(func(t *table.Table) error {
		return t.RegisterComponent(ty)
	})
}

func RegisterComponent[T any](w *World) error {
	return w.RegisterComponent(storage.TypeInfoOf[T]())
}

// Spawn creates a new entity with the given components. Components must be passed as values,
// not as pointers. If any of the components can not be added, no entity is created.
func (w *World) Spawn(components ...any) (EntityId, error) {
	values := valuesPool.Get()
	defer valuesPool.Put(values)

	for _, component := range components {
		assert.IsNonPointerValue(component)
		values.AppendAny(component)
	}

	return w.SpawnBundle(values)
}

// SpawnBundle creates a new entity with the components of the bundle.
func (w *World) SpawnBundle(bundle storage.Bundle) (EntityId, error) {
	var entityId EntityId

	err := w.Update(func(t *table.Table) error {
		entityId = t.CreateEntity()

		if err := t.WithComponents(bundle); err != nil {
			_ = t.DeleteEntity(entityId)
			return err
		}

		return nil
	})

	return entityId, err
}

// Insert adds or replaces components of an existing entity.
func (w *World) Insert(entityId EntityId, components ...any) error {
	values := valuesPool.Get()
	defer valuesPool.Put(values)

	for _, component := range components {
		assert.IsNonPointerValue(component)
		values.AppendAny(component)
	}

	return w.InsertBundle(entityId, values)
}

func (w *World) InsertBundle(entityId EntityId, bundle storage.Bundle) error {
	return w.Update(func(t *table.Table) error {
		return t.AddComponents(entityId, bundle)
	})
}

func (w *World) Remove(entityId EntityId, ty *storage.TypeInfo) error {
	return w.Update(func(t *table.Table) error {
		return t.DeleteComponentErased(entityId, ty)
	})
}

func RemoveComponent[T any](w *World, entityId EntityId) error {
	return w.Remove(entityId, storage.TypeInfoOf[T]())
}

func (w *World) Despawn(entityId EntityId) error {
	return w.Update(func(t *table.Table) error {
		return t.DeleteEntity(entityId)
	})
}

// Get returns a copy of the entities component of type T.
func Get[T any](w *World, entityId EntityId) (T, error) {
	var value T

	err := w.View(func(t *table.Table) error {
		var err error
		value, err = table.GetComponent[T](t, entityId)
		return err
	})

	return value, err
}

func Has[T any](w *World, entityId EntityId) (bool, error) {
	var has bool

	err := w.View(func(t *table.Table) error {
		var err error
		has, err = table.HasComponent[T](t, entityId)
		return err
	})

	return has, err
}

// Query calls fn for every entity matching the filter while holding shared access.
// The entity must not be used after fn returns.
func (w *World) Query(filter Filter, fn func(entity table.QueryEntity) error) error {
	return w.View(func(t *table.Table) error {
		return runQuery(t, filter, fn)
	})
}

// QueryMut is like Query, but holds exclusive access so that fn may modify components.
func (w *World) QueryMut(filter Filter, fn func(entity table.QueryEntity) error) error {
	return w.Update(func(t *table.Table) error {
		return runQuery(t, filter, fn)
	})
}

func runQuery(t *table.Table, filter Filter, fn func(entity table.QueryEntity) error) error {
	q := table.NewQuery(t)

	for _, ty := range filter.With {
		if err := q.WithComponent(ty); err != nil {
			return err
		}
	}

	for _, ty := range filter.Without {
		if err := q.WithoutComponent(ty); err != nil {
			return err
		}
	}

	for entity := range q.Iter() {
		if err := fn(entity); err != nil {
			return err
		}
	}

	return nil
}

// Close drops all components and resources held by the world.
func (w *World) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.table.Drop()
	w.resources.Drop()
}
