package game

import "math"

// Autopilot plays the game without a human. It steers under its target,
// sidesteps hostile bullets about to reach the ship, and fires missiles
// at the boss and at bombers.
type Autopilot struct {
	// DodgeRange is how far above the ship a hostile bullet counts as a threat
	DodgeRange float64

	// DodgeMargin widens the ship's footprint when looking for threats
	DodgeMargin float64

	// Deadband is the horizontal error tolerated before steering
	Deadband float64
}

// NewAutopilot returns an autopilot with sensible defaults
func NewAutopilot() *Autopilot {
	return &Autopilot{
		DodgeRange:  120,
		DodgeMargin: 10,
		Deadband:    4,
	}
}

// Keys decides the inputs for the next step
func (a *Autopilot) Keys(w *World) Keys {
	p := &w.Player
	px, _ := p.Center()

	var keys Keys
	if threat := a.threat(w); threat != nil {
		bx, _ := threat.Center()
		if bx < px {
			return keys.With(KeyRight)
		}
		return keys.With(KeyLeft)
	}

	target := a.target(w)
	if target == nil {
		return keys
	}
	tx, _ := target.Center()
	switch {
	case tx < px-a.Deadband:
		keys = keys.With(KeyLeft)
	case tx > px+a.Deadband:
		keys = keys.With(KeyRight)
	}
	if k := target.Kind(); k == EnemyBoss || k == EnemyBomber {
		keys = keys.With(KeyMissile)
	}
	return keys
}

// threat returns the closest hostile bullet descending into the ship's column
func (a *Autopilot) threat(w *World) *Bullet {
	p := &w.Player
	left := p.X - a.DodgeMargin
	right := p.X + p.Width + a.DodgeMargin

	var closest *Bullet
	best := math.Inf(1)
	for _, b := range w.Bullets {
		if !b.Active || !b.Kind.Hostile() || b.VY <= 0 {
			continue
		}
		if b.X+b.Width < left || b.X > right {
			continue
		}
		gap := p.Y - (b.Y + b.Height)
		if gap < -p.Height || gap > a.DodgeRange {
			continue
		}
		if gap < best {
			best = gap
			closest = b
		}
	}
	return closest
}

// target picks the boss when it is up, otherwise the lowest enemy still
// above the ship
func (a *Autopilot) target(w *World) *Enemy {
	if boss := w.Boss(); boss != nil && boss.Alive() {
		return boss
	}
	var lowest *Enemy
	for _, e := range w.Enemies {
		if !e.Alive() || e.Y+e.Height > w.Player.Y {
			continue
		}
		if lowest == nil || e.Y > lowest.Y {
			lowest = e
		}
	}
	return lowest
}
