package table

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/oliverbestmann/nina/storage"
	"github.com/stretchr/testify/require"
)

type C int64
type D [2]uint8

func TestQuery_NotRegistered(t *testing.T) {
	tbl := newTable(t)
	q := NewQuery(tbl)

	var notRegistered *NotRegisteredError
	require.True(t, errors.As(With[Frozen](q), &notRegistered))
	require.True(t, errors.As(Without[Frozen](q), &notRegistered))
}

func TestQuery_MatchesBitmaskFilter(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	types := []*storage.TypeInfo{
		storage.TypeInfoOf[A](),
		storage.TypeInfoOf[B](),
		storage.TypeInfoOf[C](),
		storage.TypeInfoOf[D](),
	}

	tbl := New()
	for _, ty := range types {
		require.NoError(t, tbl.RegisterComponent(ty))
	}

	for range 200 {
		entityId := tbl.CreateEntity()

		if rng.IntN(2) == 0 {
			require.NoError(t, AddComponent(tbl, entityId, A(entityId)))
		}

		if rng.IntN(2) == 0 {
			require.NoError(t, AddComponent(tbl, entityId, B(entityId)))
		}

		if rng.IntN(2) == 0 {
			require.NoError(t, AddComponent(tbl, entityId, C(entityId)))
		}

		if rng.IntN(2) == 0 {
			require.NoError(t, AddComponent(tbl, entityId, D{uint8(entityId), 1}))
		}

		if rng.IntN(10) == 0 {
			require.NoError(t, tbl.DeleteEntity(entityId))
		}
	}

	// every combination of included and excluded types
	for filter := range 81 {
		q := NewQuery(tbl)

		var include, exclude Bitmask

		code := filter
		for bit, ty := range types {
			switch code % 3 {
			case 1:
				require.NoError(t, q.WithComponent(ty))
				include.Set(bit)
			case 2:
				require.NoError(t, q.WithoutComponent(ty))
				exclude.Set(bit)
			}

			code /= 3
		}

		var expected []EntityId
		for idx := range tbl.Len() {
			entityId := EntityId(idx)
			if !tbl.Exists(entityId) {
				continue
			}

			mask, err := tbl.EntityMask(entityId)
			require.NoError(t, err)

			if mask.And(include.Or(exclude)) == include {
				expected = append(expected, entityId)
			}
		}

		var actual []EntityId
		for _, entity := range q.Run() {
			actual = append(actual, entity.Id)

			for bit, ty := range types {
				if include.Has(bit) {
					require.True(t, entity.Has(ty))
				}

				if exclude.Has(bit) {
					require.False(t, entity.Has(ty))
				}
			}
		}

		require.True(t, slices.IsSorted(actual))
		require.Equal(t, expected, actual, "filter %d", filter)
	}
}

func TestQueryEntity_Revalidates(t *testing.T) {
	tbl := newTable(t)

	tbl.CreateEntity()
	require.NoError(t, WithComponent(tbl, A(3)))

	q := NewQuery(tbl)
	require.NoError(t, With[A](q))

	entities := q.Run()
	require.Len(t, entities, 1)

	ptr, err := ComponentMut[A](entities[0])
	require.NoError(t, err)
	*ptr += 1

	require.NoError(t, DeleteComponent[A](tbl, entities[0].Id))

	_, err = Component[A](entities[0])

	var notFound *ComponentNotFoundError
	require.True(t, errors.As(err, &notFound))

	_, err = Component[Frozen](entities[0])

	var notRegistered *NotRegisteredError
	require.True(t, errors.As(err, &notRegistered))
}

func TestQuery_IterStopsEarly(t *testing.T) {
	tbl := newTable(t)

	for idx := range 10 {
		tbl.CreateEntity()
		require.NoError(t, WithComponent(tbl, A(idx)))
	}

	q := NewQuery(tbl)
	require.NoError(t, With[A](q))

	var seen []EntityId
	for entity := range q.Iter() {
		seen = append(seen, entity.Id)
		if len(seen) == 3 {
			break
		}
	}

	require.Equal(t, []EntityId{0, 1, 2}, seen)
}
