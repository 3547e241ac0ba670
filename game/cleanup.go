package game

// cleanup prunes dead enemies, enemies that fell out of the arena, spent
// bullets and burnt-out particles. Survivors keep their order.
func (s *Simulation) cleanup() {
	w := s.world
	floor := s.cfg.ArenaHeight + s.cfg.Collision.EnemyExitMargin

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive() && e.Y < floor {
			enemies = append(enemies, e)
		}
	}
	clear(w.Enemies[len(enemies):])
	w.Enemies = enemies

	bullets := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Active {
			bullets = append(bullets, b)
		}
	}
	clear(w.Bullets[len(bullets):])
	w.Bullets = bullets

	particles := w.Particles[:0]
	for _, p := range w.Particles {
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	clear(w.Particles[len(particles):])
	w.Particles = particles

	w.BossActive = w.Boss() != nil
}

// tickMessage counts the banner down and clears it when it runs out
func (s *Simulation) tickMessage() {
	m := s.world.Message
	if m == nil {
		return
	}
	m.Frames--
	if m.Frames <= 0 {
		s.world.Message = nil
	}
}
