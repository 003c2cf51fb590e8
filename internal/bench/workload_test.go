package bench

import (
	"context"
	"testing"
	"time"

	"github.com/oliverbestmann/nina/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRun(t *testing.T) {
	cfg := config.WorkloadConfig{
		Entities:    70,
		Iterations:  5,
		DeleteEvery: 4,
		WithNames:   true,
	}

	report, err := Run(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.Equal(t, 5, report.Rounds)
	require.Equal(t, 70, report.Entities)

	// every 7th entity is frozen, churn keeps that ratio roughly but not exactly
	require.Positive(t, report.Moved)
	require.Less(t, report.Moved, 70)

	require.Equal(t, []string{"spawn", "move", "churn"}, report.Stats.PhaseOrder)
	require.Equal(t, 5, report.Stats.ByPhase["move"].Count)
	require.Equal(t, 5, report.Stats.ByPhase["churn"].Count)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, config.WorkloadConfig{Entities: 3, Iterations: 10}, zaptest.NewLogger(t))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, report.Rounds)
}

func TestTimings(t *testing.T) {
	var timings Timings
	timings = timings.Add(10 * time.Millisecond)
	timings = timings.Add(30 * time.Millisecond)
	timings = timings.Add(20 * time.Millisecond)

	require.Equal(t, 3, timings.Count)
	require.Equal(t, 10*time.Millisecond, timings.Min)
	require.Equal(t, 30*time.Millisecond, timings.Max)
	require.Equal(t, 20*time.Millisecond, timings.Latest)
	require.Equal(t, 60*time.Millisecond, timings.Total)
	require.Greater(t, timings.MovingAverage, 10*time.Millisecond)
	require.Less(t, timings.MovingAverage, 20*time.Millisecond)
}
