package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"thunderstrike/game"
	"thunderstrike/metrics"
)

// frameTime is the fixed clock step of a soak run
const frameTime = time.Second / 60

// Result summarizes one autopilot session
type Result struct {
	Index   int           `yaml:"index"`
	Session uuid.UUID     `yaml:"session"`
	Seed    uint64        `yaml:"seed"`
	Outcome string        `yaml:"outcome"`
	Frames  int           `yaml:"frames"`
	Score   int           `yaml:"score"`
	Elapsed time.Duration `yaml:"elapsed"`
}

// Runner plays sessions headlessly on a virtual 60 Hz clock
type Runner struct {
	Config    game.Config
	MaxFrames int
	Parallel  int
	Recorder  *metrics.Recorder // optional
	Log       *slog.Logger
}

// Run plays count sessions, seeding session i with seed+i. Results come
// back in session order.
func (r *Runner) Run(ctx context.Context, count int, seed uint64) ([]Result, error) {
	results := make([]Result, count)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, r.Parallel))

	for i := range count {
		eg.Go(func() error {
			res, err := r.play(ctx, seed+uint64(i))
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			res.Index = i
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) play(ctx context.Context, seed uint64) (Result, error) {
	started := time.Now()
	sim, err := game.NewSimulation(r.Config,
		rand.New(rand.NewPCG(seed, 1)),
		game.WithEffectsRand(rand.New(rand.NewPCG(seed, 2))))
	if err != nil {
		return Result{}, err
	}
	sess := game.NewSession(sim, nil)
	pilot := game.NewAutopilot()
	sess.Start()

	frame := 0
	for ; frame < r.MaxFrames && !sess.Phase().Terminal(); frame++ {
		if frame%60 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		before := sess.Phase()
		t0 := time.Now()
		res := sess.Tick(time.Duration(frame)*frameTime, pilot.Keys(sim.World()))
		r.observe(res, time.Since(t0), before, sess.Phase())
	}

	// A boss kill followed by death still ends in victory once the timer fires
	for ; sess.Phase() == game.PhaseGameOver && sim.World().VictoryPending(); frame++ {
		sess.Tick(time.Duration(frame)*frameTime, 0)
		r.observe(game.StepResult{}, 0, game.PhaseGameOver, sess.Phase())
	}

	outcome := sess.Phase().String()
	if !sess.Phase().Terminal() {
		outcome = "timeout"
	}
	res := Result{
		Session: sim.World().SessionID,
		Seed:    seed,
		Outcome: outcome,
		Frames:  frame,
		Score:   sess.Score(),
		Elapsed: time.Since(started),
	}
	r.Log.Info("session finished",
		"session", res.Session,
		"seed", seed,
		"outcome", res.Outcome,
		"frames", res.Frames,
		"score", res.Score,
		"elapsed", res.Elapsed)
	return res, nil
}

func (r *Runner) observe(res game.StepResult, elapsed time.Duration, before, after game.Phase) {
	if r.Recorder == nil {
		return
	}
	r.Recorder.Observe(res, elapsed)
	if before != game.PhaseVictory && after == game.PhaseVictory {
		r.Recorder.Transition(game.TransitionVictory)
	}
}
