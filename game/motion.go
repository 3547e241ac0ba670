package game

import "time"

// movePlayer applies held direction keys. Each axis is clamped to the arena
// on its own, so diagonal movement is faster than straight movement.
func (s *Simulation) movePlayer(keys Keys) {
	p := &s.world.Player
	speed := s.cfg.Player.Speed

	if keys.Has(KeyUp) {
		p.Y = max(0, p.Y-speed)
	}
	if keys.Has(KeyDown) {
		p.Y = min(s.cfg.ArenaHeight-p.Height, p.Y+speed)
	}
	if keys.Has(KeyLeft) {
		p.X = max(0, p.X-speed)
	}
	if keys.Has(KeyRight) {
		p.X = min(s.cfg.ArenaWidth-p.Width, p.X+speed)
	}
}

// update moves a standard enemy down and occasionally has it fire
func (g *Grunt) update(s *Simulation, e *Enemy) {
	e.Y += e.VY
	if s.rng.Float64() < s.cfg.EnemyGun.FireChance {
		s.fireEnemyShot(e)
	}
}

// updateEnemies runs every enemy's behavior in spawn order
func (s *Simulation) updateEnemies() {
	for _, e := range s.world.Enemies {
		e.Behavior.update(s, e)
	}
}

// updateBullets integrates bullet motion. A bullet that leaves the arena by
// more than the margin goes inactive; cleanup removes it later in the step.
func (s *Simulation) updateBullets() {
	margin := s.cfg.Collision.BulletMargin
	for _, b := range s.world.Bullets {
		if !b.Active {
			continue
		}
		b.X += b.VX
		b.Y += b.VY
		if b.Y < -margin || b.Y > s.cfg.ArenaHeight+margin ||
			b.X < -margin || b.X > s.cfg.ArenaWidth+margin {
			b.Active = false
		}
	}
}

// move runs the motion and weapon systems for one frame
func (s *Simulation) move(now time.Duration, keys Keys) {
	s.movePlayer(keys)
	s.firePlayerWeapons(now, keys)
	s.updateEnemies()
	s.updateBullets()
	s.updateParticles()
	s.ScrollStars()
}
