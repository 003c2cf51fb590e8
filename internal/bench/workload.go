package bench

import (
	"context"
	"fmt"

	"github.com/oliverbestmann/nina"
	"github.com/oliverbestmann/nina/internal/config"
	"github.com/oliverbestmann/nina/storage"
	"github.com/oliverbestmann/nina/table"
	"go.uber.org/zap"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Name struct {
	Value string
}

type Frozen struct{}

type Report struct {
	Rounds   int
	Entities int

	// entities updated by the movement query in the last round
	Moved int

	Stats Stats
}

var movingFilter = nina.Filter{
	With: []*storage.TypeInfo{
		storage.TypeInfoOf[Position](),
		storage.TypeInfoOf[Velocity](),
	},
	Without: []*storage.TypeInfo{
		storage.TypeInfoOf[Frozen](),
	},
}

// Run executes the workload described by cfg on a fresh World.
func Run(ctx context.Context, cfg config.WorkloadConfig, log *zap.Logger) (*Report, error) {
	w := nina.NewWorld()
	defer w.Close()

	for _, ty := range []*storage.TypeInfo{
		storage.TypeInfoOf[Position](),
		storage.TypeInfoOf[Velocity](),
		storage.TypeInfoOf[Name](),
		storage.TypeInfoOf[Frozen](),
	} {
		if err := w.RegisterComponent(ty); err != nil {
			return nil, fmt.Errorf("register %s: %w", ty, err)
		}
	}

	report := &Report{
		Entities: cfg.Entities,
		Stats:    NewStats(),
	}

	sw := report.Stats.Measure("spawn")
	for idx := range cfg.Entities {
		if _, err := w.SpawnBundle(bundleOf(cfg, idx)); err != nil {
			return nil, fmt.Errorf("spawn entity %d: %w", idx, err)
		}
	}
	sw.Stop()

	var commands nina.CommandBuffer

	for round := range cfg.Iterations {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		moved, err := move(w, &report.Stats)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}

		if cfg.DeleteEvery > 0 {
			if err := churn(w, &commands, cfg, round, &report.Stats); err != nil {
				return nil, fmt.Errorf("round %d: %w", round, err)
			}
		}

		report.Rounds += 1
		report.Moved = moved

		log.Debug("Round finished", zap.Int("round", round), zap.Int("moved", moved))
	}

	return report, nil
}

func bundleOf(cfg config.WorkloadConfig, idx int) storage.Bundle {
	pos := Position{X: float64(idx)}
	vel := Velocity{X: 1, Y: float64(idx % 5)}

	switch {
	case idx%7 == 0:
		return storage.Of3(pos, vel, Frozen{})
	case cfg.WithNames:
		return storage.Of3(pos, vel, Name{Value: fmt.Sprintf("entity-%d", idx)})
	default:
		return storage.Of2(pos, vel)
	}
}

func move(w *nina.World, stats *Stats) (int, error) {
	defer stats.Measure("move").Stop()

	var moved int
	err := w.QueryMut(movingFilter, func(entity table.QueryEntity) error {
		pos, err := table.ComponentMut[Position](entity)
		if err != nil {
			return err
		}

		vel, err := table.Component[Velocity](entity)
		if err != nil {
			return err
		}

		pos.X += vel.X
		pos.Y += vel.Y
		moved += 1

		return nil
	})

	return moved, err
}

// churn despawns every n-th entity and spawns the same number of new ones,
// which take over the freed slots.
func churn(w *nina.World, commands *nina.CommandBuffer, cfg config.WorkloadConfig, round int, stats *Stats) error {
	defer stats.Measure("churn").Stop()

	var count int
	for idx := round % cfg.DeleteEvery; idx < cfg.Entities; idx += cfg.DeleteEvery {
		commands.Despawn(nina.EntityId(idx))
		count += 1
	}

	for idx := range count {
		if err := commands.Spawn(bundleOf(cfg, idx)); err != nil {
			return err
		}
	}

	return commands.Run(w)
}
