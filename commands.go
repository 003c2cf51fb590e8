package nina

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/nina/storage"
	"github.com/oliverbestmann/nina/table"
)

type Command func(t *table.Table) error

// CommandBuffer records changes to a table to apply them later, in the order
// they were recorded.
type CommandBuffer struct {
	queue []Command
}

func (c *CommandBuffer) Queue(command Command) *CommandBuffer {
	c.queue = append(c.queue, command)
	return c
}

// Spawn records the creation of an entity with the components of the bundle.
// The bundle is consumed immediately.
func (c *CommandBuffer) Spawn(bundle storage.Bundle) error {
	packed, err := storage.Pack(bundle)
	if err != nil {
		return err
	}

	c.Queue(func(t *table.Table) error {
		entityId := t.CreateEntity()

		if err := t.WithComponents(packed); err != nil {
			_ = t.DeleteEntity(entityId)
			return err
		}

		return nil
	})

	return nil
}

// Insert records adding the components of the bundle to an entity.
// The bundle is consumed immediately.
func (c *CommandBuffer) Insert(entityId EntityId, bundle storage.Bundle) error {
	packed, err := storage.Pack(bundle)
	if err != nil {
		return err
	}

	c.Queue(func(t *table.Table) error {
		return t.AddComponents(entityId, packed)
	})

	return nil
}

func QueueInsertComponent[T any](c *CommandBuffer, entityId EntityId, value T) *CommandBuffer {
	return c.Queue(func(t *table.Table) error {
		return table.AddComponent(t, entityId, value)
	})
}

func (c *CommandBuffer) Remove(entityId EntityId, types ...*storage.TypeInfo) *CommandBuffer {
	return c.Queue(func(t *table.Table) error {
		for _, ty := range types {
			if err := t.DeleteComponentErased(entityId, ty); err != nil {
				return err
			}
		}

		return nil
	})
}

func QueueRemoveComponent[T any](c *CommandBuffer, entityId EntityId) *CommandBuffer {
	return c.Remove(entityId, storage.TypeInfoOf[T]())
}

func (c *CommandBuffer) Despawn(entityId EntityId) *CommandBuffer {
	return c.Queue(func(t *table.Table) error {
		return t.DeleteEntity(entityId)
	})
}

func (c *CommandBuffer) Len() int {
	return len(c.queue)
}

func (c *CommandBuffer) Clear() {
	clear(c.queue)
	c.queue = c.queue[:0]
}

// Run applies all recorded commands to the world while holding exclusive access.
// It stops at the first failing command. The buffer is empty afterward, even if
// a command failed.
func (c *CommandBuffer) Run(w *World) error {
	defer c.Clear()

	return w.Update(func(t *table.Table) error {
		for idx, command := range c.queue {
			if err := command(t); err != nil {
				return fmt.Errorf("command %d of %d: %w", idx+1, len(c.queue), err)
			}
		}

		slog.Debug("Command buffer applied", slog.Int("commands", len(c.queue)))

		return nil
	})
}
