package game

import "github.com/google/uuid"

// World is the authoritative state of one session. The Simulation that owns
// it is its only writer; everyone else reads it between steps.
type World struct {
	// SessionID identifies the play-through; it changes on every reset
	SessionID uuid.UUID

	Player    Player
	Enemies   []*Enemy // spawn order
	Bullets   []*Bullet
	Particles []*Particle
	Stars     []Star

	// Frame counts steps since the last reset
	Frame int

	// BossSpawned latches once the boss has been introduced this session
	BossSpawned bool

	// BossActive is true while the boss is alive in Enemies
	BossActive bool

	// Message is the banner shown during the boss-defeat sequence, if any
	Message *Message

	// victory fires the transition to the victory screen after the boss dies
	victory Timer

	// gameOver latches once the game-over transition has been reported
	gameOver bool
}

// newWorld builds a fresh session state
func newWorld(cfg Config, stars []Star) *World {
	return &World{
		SessionID: uuid.New(),
		Player:    newPlayer(cfg),
		Enemies:   make([]*Enemy, 0, 32),
		Bullets:   make([]*Bullet, 0, 256),
		Particles: make([]*Particle, 0, 512),
		Stars:     stars,
	}
}

// Boss returns the boss if it is in play
func (w *World) Boss() *Enemy {
	for _, e := range w.Enemies {
		if e.IsBoss() {
			return e
		}
	}
	return nil
}

// VictoryPending reports whether the boss-defeat timer is still running
func (w *World) VictoryPending() bool {
	return w.victory.Pending()
}

// GameOver reports whether the player has been destroyed this session
func (w *World) GameOver() bool {
	return w.gameOver
}
