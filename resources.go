package nina

import (
	"fmt"

	"github.com/oliverbestmann/nina/storage"
)

type ResourceNotFoundError struct {
	Type *storage.TypeInfo
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("no resource of type %s", e.Type)
}

// Resources holds at most one value per type.
type Resources struct {
	values storage.TypeMap[*storage.ErasedBox]
}

// AddResource stores the value as the resource of type T. A previous
// resource of the same type is dropped.
func AddResource[T any](r *Resources, value T) {
	previous, replaced := r.values.Insert(storage.TypeInfoOf[T](), storage.NewErasedBox(value))
	if replaced {
		previous.Drop()
	}
}

func HasResource[T any](r *Resources) bool {
	return r.values.Contains(storage.TypeInfoOf[T]())
}

// Resource returns a copy of the resource of type T.
func Resource[T any](r *Resources) (T, error) {
	ptr, err := ResourceMut[T](r)
	if err != nil {
		var zero T
		return zero, err
	}

	return *ptr, nil
}

func ResourceMut[T any](r *Resources) (*T, error) {
	ty := storage.TypeInfoOf[T]()

	box, ok := r.values.Get(ty)
	if !ok {
		return nil, &ResourceNotFoundError{Type: ty}
	}

	return storage.UnboxMut[T](box)
}

// RemoveResource removes the resource of type T and returns it. The value is
// not dropped, ownership moves to the caller.
func RemoveResource[T any](r *Resources) (T, error) {
	ty := storage.TypeInfoOf[T]()

	box, ok := r.values.Remove(ty)
	if !ok {
		var zero T
		return zero, &ResourceNotFoundError{Type: ty}
	}

	return storage.Unbox[T](box)
}

func (r *Resources) Len() int {
	return r.values.Len()
}

// Drop drops all resources.
func (r *Resources) Drop() {
	for ty, box := range r.values.All() {
		box.Drop()
		r.values.Remove(ty)
	}
}
