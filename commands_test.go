package nina

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/nina/storage"
	"github.com/oliverbestmann/nina/table"
	"github.com/stretchr/testify/require"
)

func TestCommandBuffer(t *testing.T) {
	w := newWorld(t)

	first, err := w.Spawn(Position{X: 1})
	require.NoError(t, err)

	var commands CommandBuffer

	require.NoError(t, commands.Spawn(storage.Of2(Position{X: 2}, Label{Text: "spawned"})))
	require.NoError(t, commands.Insert(first, storage.Of1(Velocity{X: 3})))
	QueueInsertComponent(&commands, first, Label{Text: "first"})
	QueueRemoveComponent[Position](&commands, first)

	require.Equal(t, 4, commands.Len())

	// nothing is applied before Run
	has, err := Has[Velocity](w, first)
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, commands.Run(w))
	require.Equal(t, 0, commands.Len())

	label, err := Get[Label](w, 1)
	require.NoError(t, err)
	require.Equal(t, "spawned", label.Text)

	vel, err := Get[Velocity](w, first)
	require.NoError(t, err)
	require.Equal(t, Velocity{X: 3}, vel)

	has, err = Has[Position](w, first)
	require.NoError(t, err)
	require.False(t, has)

	commands.Despawn(first)
	require.NoError(t, commands.Run(w))

	// the freed slot is reused by the next spawn
	require.NoError(t, commands.Spawn(storage.Of1(Frozen{})))
	require.NoError(t, commands.Run(w))

	has, err = Has[Frozen](w, first)
	require.NoError(t, err)
	require.True(t, has)
}

func TestCommandBuffer_StopsAtFirstError(t *testing.T) {
	w := newWorld(t)

	var commands CommandBuffer
	commands.Despawn(7)
	QueueInsertComponent(&commands, 0, Position{})

	err := commands.Run(w)

	var notFound *table.EntityNotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, EntityId(7), notFound.Entity)
	require.Equal(t, 0, commands.Len())
}

func TestCommandBuffer_SpawnFailureLeavesNoEntity(t *testing.T) {
	w := newWorld(t)

	var commands CommandBuffer
	require.NoError(t, commands.Spawn(storage.Of2(Position{}, "not registered")))

	var notRegistered *table.NotRegisteredError
	require.True(t, errors.As(commands.Run(w), &notRegistered))

	entityId, err := w.Spawn(Position{})
	require.NoError(t, err)
	require.Equal(t, EntityId(0), entityId)
}

func TestCommandBuffer_Clear(t *testing.T) {
	w := newWorld(t)

	var commands CommandBuffer
	require.NoError(t, commands.Spawn(storage.Of1(Position{})))
	commands.Clear()

	require.NoError(t, commands.Run(w))

	_, err := Get[Position](w, 0)

	var notFound *table.EntityNotFoundError
	require.True(t, errors.As(err, &notFound))
}
