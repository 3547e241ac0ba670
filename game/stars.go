package game

// newStarField scatters the background stars over the arena
func newStarField(cfg Config, r Rand) []Star {
	stars := make([]Star, cfg.Stars.Count)
	for i := range stars {
		stars[i] = Star{
			X:          r.Float64() * cfg.ArenaWidth,
			Y:          r.Float64() * cfg.ArenaHeight,
			Size:       r.Float64()*cfg.Stars.SizeRange + cfg.Stars.SizeMin,
			Speed:      r.Float64()*cfg.Stars.SpeedRange + cfg.Stars.SpeedMin,
			Brightness: r.Float64(),
		}
	}
	return stars
}

// ScrollStars moves the star field down one frame, wrapping stars that fall
// off the bottom back to the top at a new column. It runs in every phase,
// so the frontend calls it directly outside of play.
func (s *Simulation) ScrollStars() {
	for i := range s.world.Stars {
		star := &s.world.Stars[i]
		star.Y += star.Speed
		if star.Y > s.cfg.ArenaHeight {
			star.Y = 0
			star.X = s.fx.Float64() * s.cfg.ArenaWidth
		}
	}
}
