// Command soak plays unattended sessions with the autopilot and reports how
// they ended. It needs no display.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"thunderstrike/game"
	"thunderstrike/metrics"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (or set "+game.ConfigEnv+")")
	sessions := flag.Int("sessions", 8, "number of sessions to play")
	maxFrames := flag.Int("max-frames", 60*60*10, "frame cap per session")
	parallel := flag.Int("parallel", runtime.NumCPU(), "sessions played at once")
	seed := flag.Uint64("seed", 0, "seed of the first session, 0 picks one from the clock")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address while running")
	report := flag.String("report", "", "write the results as YAML to this file, - for stdout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, *configPath, *sessions, *maxFrames, *parallel, *seed, *metricsAddr, *report); err != nil {
		logger.Error("soak failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath string, sessions, maxFrames, parallel int, seed uint64, metricsAddr, report string) error {
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	runner := &Runner{Config: cfg, MaxFrames: maxFrames, Parallel: parallel, Log: logger}
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		if runner.Recorder, err = metrics.NewRecorder(reg); err != nil {
			return err
		}
		srv := metrics.Serve(metricsAddr, reg, logger)
		defer srv.Close()
	}

	logger.Info("soak starting", "sessions", sessions, "parallel", parallel, "seed", seed, "max_frames", maxFrames)
	results, err := runner.Run(ctx, sessions, seed)
	if err != nil {
		return err
	}

	outcomes := map[string]int{}
	best := 0
	for _, r := range results {
		outcomes[r.Outcome]++
		best = max(best, r.Score)
	}
	logger.Info("soak done", "outcomes", outcomes, "best_score", best)

	return writeReport(report, results)
}

func writeReport(path string, results []Result) error {
	if path == "" {
		return nil
	}
	out, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if path == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
