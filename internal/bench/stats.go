package bench

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
	Total         time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d
	t.Total += d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

func (t Timings) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("count", t.Count)
	enc.AddDuration("avg", t.MovingAverage)
	enc.AddDuration("min", t.Min)
	enc.AddDuration("max", t.Max)
	enc.AddDuration("total", t.Total)
	return nil
}

// Stats collects Timings per phase of a workload.
type Stats struct {
	ByPhase    map[string]Timings
	PhaseOrder []string
}

func NewStats() Stats {
	return Stats{ByPhase: map[string]Timings{}}
}

func (s *Stats) Measure(phase string) Stopwatch {
	startTime := time.Now()

	if _, ok := s.ByPhase[phase]; !ok {
		s.PhaseOrder = append(s.PhaseOrder, phase)
		s.ByPhase[phase] = Timings{}
	}

	return Stopwatch{
		Stop: func() {
			duration := time.Since(startTime)
			s.ByPhase[phase] = s.ByPhase[phase].Add(duration)
		},
	}
}

type Stopwatch struct {
	Stop func()
}
