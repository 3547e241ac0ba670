package game

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

// Transition is a request from the simulation to change the screen the
// presentation layer shows
type Transition int

const (
	TransitionNone Transition = iota
	TransitionGameOver
	TransitionVictory
)

func (t Transition) String() string {
	switch t {
	case TransitionGameOver:
		return "game-over"
	case TransitionVictory:
		return "victory"
	default:
		return "none"
	}
}

// StepResult is what one simulation step hands back to the presentation layer
type StepResult struct {
	// World is the updated state. Callers read it and must not modify it.
	World *World

	// Score is the player's score after the step
	Score int

	// Transition is at most one screen change requested by this step
	Transition Transition

	// Events lists what happened during the step, in order
	Events []Event
}

// Option customizes a Simulation
type Option func(*Simulation)

// WithEffectsRand gives cosmetic randomness (particles, stars) its own source,
// so gameplay draws stay reproducible regardless of how many particles spawn.
func WithEffectsRand(r Rand) Option {
	return func(s *Simulation) {
		s.fx = r
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) {
		s.log = l
	}
}

// Simulation is the frame-driven game engine. It owns the World and is not
// safe for concurrent use; all calls must come from the frame loop.
type Simulation struct {
	cfg Config

	// rng drives gameplay decisions, fx drives cosmetics
	rng Rand
	fx  Rand
	log *slog.Logger

	world      *World
	spawner    *Spawner
	collisions *CollisionSystem

	// events collects what happens during the current step
	events []Event
}

// NewSimulation validates cfg and builds a simulation with a fresh session
func NewSimulation(cfg Config, rng Rand, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("simulation needs a random source")
	}

	s := &Simulation{
		cfg: cfg,
		rng: rng,
		fx:  rng,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fx == nil || s.log == nil {
		return nil, errors.New("simulation options left a nil dependency")
	}

	s.spawner = NewSpawner(cfg, rng)
	s.collisions = NewCollisionSystem(s)
	s.world = newWorld(cfg, newStarField(cfg, s.fx))
	return s, nil
}

// Config returns the configuration the simulation runs with
func (s *Simulation) Config() Config {
	return s.cfg
}

// World returns the current state for reading
func (s *Simulation) World() *World {
	return s.world
}

// Spawner returns the spawner, e.g. to display the current difficulty level
func (s *Simulation) Spawner() *Spawner {
	return s.spawner
}

// Reset starts a new session. Every collection, flag and timer is replaced,
// including a pending victory. The star field carries over.
func (s *Simulation) Reset() {
	stars := s.world.Stars
	s.world.victory.Cancel()
	s.world = newWorld(s.cfg, stars)
	s.events = nil
	s.log.Debug("session reset", "session", s.world.SessionID)
}

// Step advances the simulation one frame. now is the frame timestamp and
// keys are the inputs held during the frame. Within a step the phases run in
// a fixed order: motion, spawn, collision, cleanup, then the death check.
func (s *Simulation) Step(now time.Duration, keys Keys) StepResult {
	s.events = nil
	w := s.world

	w.Frame++
	s.move(now, keys)
	s.spawn()
	s.collisions.CheckCollisions(now)
	s.cleanup()
	s.tickMessage()
	transition := s.collisions.checkPlayerDeath()

	return StepResult{
		World:      w,
		Score:      w.Player.Score,
		Transition: transition,
		Events:     s.events,
	}
}

// PollTimers fires deferred work that is due at now. It does not depend on
// Step being called, so the caller keeps polling after play has stopped.
func (s *Simulation) PollTimers(now time.Duration) Transition {
	if s.world.victory.Poll(now) {
		s.log.Info("victory", "session", s.world.SessionID, "score", s.world.Player.Score)
		return TransitionVictory
	}
	return TransitionNone
}
