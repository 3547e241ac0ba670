package game

// Spawner decides when enemies enter the arena and what they are
type Spawner struct {
	cfg Config
	rng Rand
}

// NewSpawner creates a spawner drawing variant and position from rng
func NewSpawner(cfg Config, rng Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Level returns the difficulty level reached at score
func (sp *Spawner) Level(score int) int {
	return score / sp.cfg.Spawn.ScorePerLevel
}

// Interval returns the number of frames between standard spawns at score
func (sp *Spawner) Interval(score int) int {
	sc := sp.cfg.Spawn
	return max(sc.MinInterval, sc.BaseInterval-sp.Level(score)*sc.IntervalStep)
}

// SpeedBonus returns the extra descent speed given to enemies spawned at score
func (sp *Spawner) SpeedBonus(score int) float64 {
	return float64(sp.Level(score)) * sp.cfg.Spawn.SpeedPerLevel
}

// Next returns the enemy to introduce this frame, or nil.
// Once the boss has entered, nothing else spawns until the session is reset.
func (sp *Spawner) Next(w *World) *Enemy {
	if w.BossSpawned {
		return nil
	}

	score := w.Player.Score
	if score >= sp.cfg.Boss.ScoreThreshold {
		return newBoss(sp.cfg)
	}
	if w.Frame%sp.Interval(score) != 0 {
		return nil
	}

	kind := sp.cfg.Enemies.pickKind(sp.rng.Float64())
	stats := sp.cfg.Enemies.Stats(kind)
	x := RandomRange(sp.rng, 0, sp.cfg.ArenaWidth-stats.Width)
	return newGrunt(kind, stats, x, sp.SpeedBonus(score))
}

// spawn asks the spawner for this frame's arrival and puts it in play
func (s *Simulation) spawn() {
	w := s.world
	e := s.spawner.Next(w)
	if e == nil {
		return
	}
	w.Enemies = append(w.Enemies, e)

	if e.IsBoss() {
		w.BossSpawned = true
		w.BossActive = true
		s.log.Info("boss spawned", "session", w.SessionID, "score", w.Player.Score, "frame", w.Frame)
		s.emit(Event{Kind: EventBossSpawned, X: e.X, Y: e.Y, Enemy: EnemyBoss})
		return
	}
	s.emit(Event{Kind: EventEnemySpawned, X: e.X, Y: e.Y, Enemy: e.Kind()})
}
