package table

import (
	"iter"

	"github.com/oliverbestmann/nina/storage"
)

// Query selects all entities that have every included and none of the
// excluded component types.
type Query struct {
	table   *Table
	include Bitmask
	exclude Bitmask
}

func NewQuery(t *Table) *Query {
	return &Query{table: t}
}

// WithComponent requires matched entities to have a component of the given type.
func (q *Query) WithComponent(ty *storage.TypeInfo) error {
	bit, err := q.table.Bitmask(ty)
	if err != nil {
		return err
	}

	q.include = q.include.Or(bit)
	return nil
}

// WithoutComponent requires matched entities to not have a component of the given type.
func (q *Query) WithoutComponent(ty *storage.TypeInfo) error {
	bit, err := q.table.Bitmask(ty)
	if err != nil {
		return err
	}

	q.exclude = q.exclude.Or(bit)
	return nil
}

func With[T any](q *Query) error {
	return q.WithComponent(storage.TypeInfoOf[T]())
}

func Without[T any](q *Query) error {
	return q.WithoutComponent(storage.TypeInfoOf[T]())
}

// Run returns all matching entities in ascending order.
func (q *Query) Run() []QueryEntity {
	var entities []QueryEntity
	for entity := range q.Iter() {
		entities = append(entities, entity)
	}

	return entities
}

// Iter yields all matching entities in ascending order. The table must not
// be modified during iteration.
func (q *Query) Iter() iter.Seq[QueryEntity] {
	return func(yield func(QueryEntity) bool) {
		t := q.table

		for idx, mask := range t.masks {
			if !t.alive[idx] || !mask.Matches(q.include, q.exclude) {
				continue
			}

			if !yield(QueryEntity{Id: EntityId(idx), table: t}) {
				return
			}
		}
	}
}

// QueryEntity is an entity matched by a Query. It is only valid
// as long as the table is not modified.
type QueryEntity struct {
	Id    EntityId
	table *Table
}

// Has returns true if the entity holds a component of the given type.
func (e QueryEntity) Has(ty *storage.TypeInfo) bool {
	col, ok := e.table.byType.Get(ty)
	return ok && e.table.masks[e.Id].Has(col.bit)
}

// Component returns a copy of the entities component of type T.
func Component[T any](e QueryEntity) (T, error) {
	ptr, err := ComponentMut[T](e)
	if err != nil {
		var zero T
		return zero, err
	}

	return *ptr, nil
}

// ComponentMut returns a pointer to the entities component of type T.
func ComponentMut[T any](e QueryEntity) (*T, error) {
	ty := storage.TypeInfoOf[T]()

	col, ok := e.table.byType.Get(ty)
	if !ok {
		return nil, &NotRegisteredError{Type: ty}
	}

	// the entity might have changed since the query was run
	if !e.table.masks[e.Id].Has(col.bit) {
		return nil, &ComponentNotFoundError{Entity: e.Id, Type: ty}
	}

	return storage.GetMutUnchecked[T](col.values, int(e.Id)), nil
}
