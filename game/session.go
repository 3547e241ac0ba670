package game

import (
	"io"
	"log/slog"
	"time"
)

// Phase is the screen the game is on
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a session
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// Session sits between the frame loop and the simulation. It tracks which
// screen is showing, resets the world on every entry into play, applies the
// transitions the simulation requests, and keeps the in-memory high score.
type Session struct {
	sim   *Simulation
	log   *slog.Logger
	phase Phase

	score     int
	highScore int
}

// NewSession wraps a simulation, starting on the menu. A nil logger discards.
func NewSession(sim *Simulation, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{sim: sim, log: logger, phase: PhaseMenu}
}

// Phase returns the current screen
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the score of the current or last session
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score reached since the program started
func (s *Session) HighScore() int {
	return s.highScore
}

// Simulation returns the wrapped simulation
func (s *Session) Simulation() *Simulation {
	return s.sim
}

// Start enters play. Coming from any other phase the world is reset; while
// already playing it does nothing.
func (s *Session) Start() {
	if s.phase == PhasePlaying {
		return
	}
	s.sim.Reset()
	s.score = 0
	s.enter(PhasePlaying)
}

// Tick runs one frame. The simulation only steps while playing, but the
// victory timer is polled in every phase so a boss kill still ends in
// victory after the loop has moved on. The step result is zero outside play.
func (s *Session) Tick(now time.Duration, keys Keys) StepResult {
	var res StepResult
	if s.phase == PhasePlaying {
		res = s.sim.Step(now, keys)
		s.score = res.Score
		if res.Transition == TransitionGameOver {
			s.enter(PhaseGameOver)
		}
	} else {
		s.sim.ScrollStars()
	}

	if s.sim.PollTimers(now) == TransitionVictory {
		switch s.phase {
		case PhasePlaying, PhaseGameOver:
			s.enter(PhaseVictory)
		default:
			s.log.Debug("victory ignored", "phase", s.phase)
		}
	}
	return res
}

func (s *Session) enter(phase Phase) {
	from := s.phase
	s.phase = phase
	if phase.Terminal() && s.score > s.highScore {
		s.highScore = s.score
	}
	s.log.Info("phase change",
		"from", from,
		"to", phase,
		"session", s.sim.World().SessionID,
		"score", s.score,
		"high_score", s.highScore)
}
