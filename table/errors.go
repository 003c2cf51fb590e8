package table

import (
	"fmt"

	"github.com/oliverbestmann/nina/storage"
)

type NotRegisteredError struct {
	Type *storage.TypeInfo
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("component type %s is not registered", e.Type)
}

type AlreadyRegisteredError struct {
	Type *storage.TypeInfo
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("component type %s is already registered", e.Type)
}

type TooManyComponentsError struct {
	Type *storage.TypeInfo
}

func (e *TooManyComponentsError) Error() string {
	return fmt.Sprintf("can not register %s: a table holds at most %d component types", e.Type, MaxComponentTypes)
}

type EntityNotFoundError struct {
	Entity EntityId
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %s does not exist", e.Entity)
}

type ComponentNotFoundError struct {
	Entity EntityId
	Type   *storage.TypeInfo
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("entity %s has no component of type %s", e.Entity, e.Type)
}
