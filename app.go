package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"thunderstrike/game"
	"thunderstrike/metrics"
	"thunderstrike/profiling"
)

// App adapts a game session to ebiten's Update/Draw loop
type App struct {
	session  *game.Session
	recorder *metrics.Recorder   // nil when metrics are off
	profiler *profiling.Profiler // nil when profiling is off
	log      *slog.Logger
	debug    debugState

	start    time.Time
	arenaW   float64
	arenaH   float64
	slowStep time.Duration
}

// NewApp wires a session to the optional metrics recorder and profiler
func NewApp(session *game.Session, recorder *metrics.Recorder, profiler *profiling.Profiler, logger *slog.Logger) *App {
	cfg := session.Simulation().Config()
	budget := time.Second / time.Duration(ebiten.TPS())
	return &App{
		session:  session,
		recorder: recorder,
		profiler: profiler,
		log:      logger,
		start:    time.Now(),
		arenaW:   cfg.ArenaWidth,
		arenaH:   cfg.ArenaHeight,
		slowStep: time.Duration(float64(budget) * slowStepFraction),
	}
}

// Update runs one tick of the session
func (a *App) Update() error {
	handleWindowKeys()
	a.debug.update()
	if startPressed() && a.session.Phase() != game.PhasePlaying {
		a.session.Start()
	}

	before := a.session.Phase()
	now := time.Since(a.start)
	t0 := time.Now()
	res := a.session.Tick(now, readKeys())
	elapsed := time.Since(t0)

	if a.recorder != nil {
		a.recorder.Observe(res, elapsed)
		if before != game.PhaseVictory && a.session.Phase() == game.PhaseVictory {
			a.recorder.Transition(game.TransitionVictory)
		}
	}
	if res.World != nil && elapsed > a.slowStep {
		a.captureSlowStep(res.World, elapsed)
	}
	return nil
}

func (a *App) captureSlowStep(w *game.World, elapsed time.Duration) {
	if a.profiler == nil {
		return
	}
	reason := fmt.Sprintf("step%dus-enemies%d-bullets%d-particles%d",
		elapsed.Microseconds(), len(w.Enemies), len(w.Bullets), len(w.Particles))
	err := a.profiler.Capture(reason)
	switch {
	case err == nil:
		a.log.Warn("slow step", "elapsed", elapsed, "budget", a.slowStep, "frame", w.Frame)
	case errors.Is(err, profiling.ErrCooldown), errors.Is(err, profiling.ErrBusy):
	default:
		a.log.Error("profile capture failed", "err", err)
	}
}

// Draw renders the current phase
func (a *App) Draw(screen *ebiten.Image) {
	w := a.session.Simulation().World()
	phase := a.session.Phase()

	drawWorld(screen, w, phase == game.PhasePlaying || phase == game.PhaseVictory)
	if phase == game.PhasePlaying || phase == game.PhaseVictory {
		drawHUD(screen, w, a.arenaW, a.arenaH)
	}

	a.debug.draw(screen, w, a.session.Simulation().Spawner().Level(w.Player.Score), a.arenaW, a.arenaH)

	switch phase {
	case game.PhaseMenu:
		drawMenu(screen, a.session.HighScore(), a.arenaW, a.arenaH)
	case game.PhaseGameOver:
		drawGameOver(screen, a.session.Score(), a.session.HighScore(), a.arenaW, a.arenaH)
	case game.PhaseVictory:
		drawVictory(screen, a.session.Score(), a.session.HighScore(), a.arenaW, a.arenaH)
	}
}

// Layout keeps the logical screen at arena size; ebiten scales the window
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.arenaW), int(a.arenaH)
}
