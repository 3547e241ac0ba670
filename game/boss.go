package game

import "math"

// BossPhase is the state of the boss's attack state machine
type BossPhase int

const (
	BossEntry  BossPhase = iota // descending into the arena, holding fire
	BossCombat                  // swaying and attacking
)

func (p BossPhase) String() string {
	if p == BossCombat {
		return "combat"
	}
	return "entry"
}

// Phase returns the current state of the boss
func (b *Boss) Phase() BossPhase {
	return b.phase
}

// update advances the boss one frame. The boss never leaves combat on its
// own; death is handled by collision resolution.
func (b *Boss) update(s *Simulation, e *Enemy) {
	cfg := s.cfg.Boss
	if e.Y < cfg.EntryY {
		e.Y += e.VY
		return
	}
	if b.phase == BossEntry {
		b.phase = BossCombat
		e.VY = 0
		s.log.Debug("boss engaging", "session", s.world.SessionID, "frame", s.world.Frame)
	}

	e.VX = math.Sin(float64(s.world.Frame)*cfg.SwayFrequency) * cfg.SwayAmplitude
	e.X = clamp(e.X+e.VX, 0, s.cfg.ArenaWidth-e.Width)

	// Both patterns run off the same counter but are checked independently
	b.AttackTimer++
	if b.AttackTimer%cfg.AimedPeriod == 0 {
		s.fireAimedShot(e)
	}
	if b.AttackTimer%cfg.SpreadPeriod == 0 {
		s.fireSpread(e)
	}
}

// aimAt returns the unit vector from (fromX, fromY) to (toX, toY).
// Coincident points aim straight down.
func aimAt(fromX, fromY, toX, toY float64) (float64, float64) {
	dx := toX - fromX
	dy := toY - fromY
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return 0, 1
	}
	return dx / mag, dy / mag
}

// fireAimedShot fires one heavy bullet from the boss toward the player's centre
func (s *Simulation) fireAimedShot(e *Enemy) {
	cfg := s.cfg.Boss
	bx, by := e.Center()
	px, py := s.world.Player.Center()
	dirX, dirY := aimAt(bx, by, px, py)

	size := cfg.AimedSize
	s.addBullet(newBullet(BulletBossMain,
		e.X+e.Width/2-size/2, e.Y+e.Height-size, size, size,
		dirX*cfg.AimedSpeed, dirY*cfg.AimedSpeed, cfg.AimedDamage))
}

// fireSpread fires a fan of bullets with evenly spaced horizontal speeds
func (s *Simulation) fireSpread(e *Enemy) {
	cfg := s.cfg.Boss
	size := cfg.SpreadSize
	mid := float64(cfg.SpreadCount-1) / 2
	for i := 0; i < cfg.SpreadCount; i++ {
		s.addBullet(newBullet(BulletBossSpread,
			e.X+e.Width/2-size/2, e.Y+e.Height/2, size, size,
			(float64(i)-mid)*cfg.SpreadStepVX, cfg.SpreadVY, cfg.SpreadDamage))
	}
}
