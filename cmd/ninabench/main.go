// Command ninabench runs a synthetic workload against a nina World and reports timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oliverbestmann/nina/internal/bench"
	"github.com/oliverbestmann/nina/internal/config"
	"github.com/oliverbestmann/nina/internal/logging"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", os.Getenv("NINA_CONFIG"), "path to a toml or yaml workload file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		cfg = loaded
	}

	log, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	defer func() { _ = log.Sync() }()

	// route the debug output of the library into zap
	logging.Install(log)

	switch cfg.Profile.Mode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile.Path), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.Profile.Path), profile.Quiet).Stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("Starting workload",
		zap.Int("entities", cfg.Workload.Entities),
		zap.Int("iterations", cfg.Workload.Iterations),
		zap.Int("delete_every", cfg.Workload.DeleteEvery),
	)

	report, err := bench.Run(ctx, cfg.Workload, log)
	if err != nil {
		return fmt.Errorf("run workload: %w", err)
	}

	fields := []zap.Field{
		zap.Int("rounds", report.Rounds),
		zap.Int("moved", report.Moved),
	}

	for _, phase := range report.Stats.PhaseOrder {
		fields = append(fields, zap.Object(phase, report.Stats.ByPhase[phase]))
	}

	log.Info("Workload finished", fields...)

	return nil
}
