package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"

	"thunderstrike/game"
	"thunderstrike/metrics"
	"thunderstrike/profiling"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (or set "+game.ConfigEnv+")")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	metricsAddr := flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	profileDir := flag.String("profile-dir", "", "capture CPU profiles of slow steps into this directory")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	dumpConfig := flag.Bool("dump-config", false, "print the effective configuration as YAML and exit")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "bad -log-level: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *configPath, *seed, *metricsAddr, *profileDir, *dumpConfig); err != nil {
		logger.Error("thunderstrike exited", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath string, seed uint64, metricsAddr, profileDir string, dumpConfig bool) error {
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if dumpConfig {
		out, err := game.MarshalConfig(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "seed", seed, "arena", fmt.Sprintf("%.0fx%.0f", cfg.ArenaWidth, cfg.ArenaHeight))

	sim, err := game.NewSimulation(cfg,
		rand.New(rand.NewPCG(seed, 1)),
		game.WithEffectsRand(rand.New(rand.NewPCG(seed, 2))),
		game.WithLogger(logger.With("component", "simulation")))
	if err != nil {
		return err
	}
	session := game.NewSession(sim, logger.With("component", "session"))

	var recorder *metrics.Recorder
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		recorder, err = metrics.NewRecorder(reg)
		if err != nil {
			return err
		}
		srv := metrics.Serve(metricsAddr, reg, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	var profiler *profiling.Profiler
	if profileDir != "" {
		profiler, err = profiling.New(profileDir, logger.With("component", "profiler"))
		if err != nil {
			return err
		}
		defer profiler.Wait()
	}

	ebiten.SetWindowSize(int(cfg.ArenaWidth), int(cfg.ArenaHeight))
	ebiten.SetWindowTitle("Thunder Strike")
	ebiten.SetWindowResizable(true)

	return ebiten.RunGame(NewApp(session, recorder, profiler, logger))
}
