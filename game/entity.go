package game

import "time"

// Body is the physical part shared by the player, enemies, and bullets
type Body struct {
	// Top-left corner in arena coordinates (y grows downward)
	X, Y float64

	// Size of the bounding box
	Width, Height float64

	// Velocity in pixels per frame
	VX, VY float64

	// Health points; may drop below zero before the owner is removed
	HP    float64
	MaxHP float64
}

// Bounds returns the collision box
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Center returns the midpoint of the collision box
func (b *Body) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Player is the ship under the user's control
type Player struct {
	Body

	// Score never decreases during a session
	Score int

	// Timestamps of the last shot of each weapon
	LastShot    time.Duration
	LastMissile time.Duration
}

func newPlayer(cfg Config) Player {
	return Player{
		Body: Body{
			X:      cfg.ArenaWidth/2 - cfg.Player.Size/2,
			Y:      cfg.ArenaHeight - cfg.Player.StartOffsetY,
			Width:  cfg.Player.Size,
			Height: cfg.Player.Size,
			HP:     cfg.Player.MaxHP,
			MaxHP:  cfg.Player.MaxHP,
		},
	}
}

// Enemy is a hostile ship. What it does each frame depends on its Behavior.
type Enemy struct {
	Body

	// Reward is added to the player's score when the enemy dies
	Reward int

	// Behavior is either *Grunt or *Boss
	Behavior Behavior
}

// Kind returns the variant tag of the enemy
func (e *Enemy) Kind() EnemyKind {
	return e.Behavior.Kind()
}

// IsBoss reports whether the enemy is the boss
func (e *Enemy) IsBoss() bool {
	_, ok := e.Behavior.(*Boss)
	return ok
}

// Alive reports whether the enemy still has hit points
func (e *Enemy) Alive() bool {
	return e.HP > 0
}

// Behavior is the per-variant state and update logic of an enemy.
// The set of implementations is closed: *Grunt and *Boss.
type Behavior interface {
	Kind() EnemyKind
	update(s *Simulation, e *Enemy)
}

// Grunt drives the standard enemies. They carry no state beyond their kind.
type Grunt struct {
	kind EnemyKind
}

// Kind implements Behavior
func (g *Grunt) Kind() EnemyKind {
	return g.kind
}

// Boss drives the boss. AttackTimer counts combat frames and paces its attacks.
type Boss struct {
	AttackTimer int
	phase       BossPhase
}

// Kind implements Behavior
func (b *Boss) Kind() EnemyKind {
	return EnemyBoss
}

// Bullet is a projectile fired by the player or an enemy
type Bullet struct {
	Body

	Damage float64
	Kind   BulletKind

	// Active is cleared when the bullet leaves the arena or hits something.
	// Inactive bullets take no further part in motion or collision.
	Active bool
}

// Particle is a purely cosmetic spark
type Particle struct {
	X, Y   float64
	VX, VY float64

	// Life runs from 1 down to 0, losing Decay each frame
	Life  float64
	Decay float64
	Size  float64
	Tint  Tint
}

// Star is a background point that scrolls down and wraps
type Star struct {
	X, Y       float64
	Size       float64
	Speed      float64
	Brightness float64
}

// Message is a banner shown for a number of frames
type Message struct {
	Text   string
	Frames int
}
