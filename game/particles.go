package game

// Tint is the palette slot a particle is drawn with. Colors themselves belong
// to the frontend.
type Tint int

const (
	TintExplosion Tint = iota
	TintPlayer
	TintDrone
	TintFighter
	TintBomber
	TintBoss
)

// enemyTint returns the palette slot of an enemy kind
func enemyTint(kind EnemyKind) Tint {
	switch kind {
	case EnemyFighter:
		return TintFighter
	case EnemyBomber:
		return TintBomber
	case EnemyBoss:
		return TintBoss
	default:
		return TintDrone
	}
}

// explode emits a burst of particles at x, y and records it as an event
func (s *Simulation) explode(x, y float64, tint Tint, burst ExplosionConfig) {
	fx := s.cfg.Effects
	speed := fx.ParticleSpeed * burst.Speed
	for i := 0; i < burst.Count; i++ {
		s.world.Particles = append(s.world.Particles, &Particle{
			X:     x,
			Y:     y,
			VX:    (s.fx.Float64() - 0.5) * speed,
			VY:    (s.fx.Float64() - 0.5) * speed,
			Life:  1,
			Decay: fx.DecayMin + s.fx.Float64()*fx.DecayRange,
			Size:  s.fx.Float64()*fx.SizeRange + fx.SizeMin,
			Tint:  tint,
		})
	}
	s.emit(Event{Kind: EventExplosion, X: x, Y: y, Count: burst.Count, Tint: tint})
}

// updateParticles integrates particle motion and burns down their life
func (s *Simulation) updateParticles() {
	for _, p := range s.world.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= p.Decay
	}
}
