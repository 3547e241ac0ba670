package game

import "time"

// CollisionSystem resolves overlaps between bullets, enemies and the player.
// Every pass is a full cross product; the arena never holds enough entities
// to need spatial partitioning.
type CollisionSystem struct {
	sim *Simulation
}

// NewCollisionSystem creates a collision system acting on the simulation's world
func NewCollisionSystem(sim *Simulation) *CollisionSystem {
	return &CollisionSystem{sim: sim}
}

// CheckCollisions runs the damage passes in their fixed order
func (c *CollisionSystem) CheckCollisions(now time.Duration) {
	c.checkPlayerBullets(now)
	c.checkHostileBullets()
	c.checkRamming(now)
}

// checkPlayerBullets tests every live player bullet against every live enemy.
// A bullet is spent on the first enemy it overlaps.
func (c *CollisionSystem) checkPlayerBullets(now time.Duration) {
	s := c.sim
	for _, b := range s.world.Bullets {
		if !b.Active || b.Kind.Hostile() {
			continue
		}
		box := b.Bounds()
		for _, e := range s.world.Enemies {
			if !e.Alive() || !box.Overlaps(e.Bounds()) {
				continue
			}
			b.Active = false
			s.explode(b.X, b.Y, TintExplosion, s.cfg.Effects.BulletImpact)
			c.damageEnemy(e, b.Damage, now)
			break
		}
	}
}

// checkHostileBullets tests every live enemy bullet against the player
func (c *CollisionSystem) checkHostileBullets() {
	s := c.sim
	p := &s.world.Player
	box := p.Bounds()
	for _, b := range s.world.Bullets {
		if !b.Active || !b.Kind.Hostile() || !b.Bounds().Overlaps(box) {
			continue
		}
		b.Active = false
		p.HP -= b.Damage
		s.explode(b.X, b.Y, TintPlayer, s.cfg.Effects.PlayerImpact)
		s.emit(Event{Kind: EventPlayerHit, X: b.X, Y: b.Y, Amount: b.Damage, Enemy: EnemyNone})
	}
}

// checkRamming applies contact damage for every enemy touching the player,
// including one shot down earlier in the frame but not yet cleaned up.
// It is not edge-triggered: contact hurts on every frame it lasts. Live
// standard enemies are consumed on contact; a live boss takes counter-damage.
func (c *CollisionSystem) checkRamming(now time.Duration) {
	s := c.sim
	p := &s.world.Player
	box := p.Bounds()
	for _, e := range s.world.Enemies {
		if !e.Bounds().Overlaps(box) {
			continue
		}
		p.HP -= s.cfg.Collision.ContactDamage
		s.emit(Event{Kind: EventPlayerHit, X: p.X, Y: p.Y, Amount: s.cfg.Collision.ContactDamage, Enemy: e.Kind()})

		if !e.Alive() {
			continue
		}
		if e.IsBoss() {
			c.damageEnemy(e, s.cfg.Boss.ContactDamage, now)
			continue
		}
		e.HP = 0
		cx, cy := e.Center()
		s.explode(cx, cy, enemyTint(e.Kind()), s.cfg.Effects.Ramming)
		s.emit(Event{Kind: EventEnemyRammed, X: cx, Y: cy, Enemy: e.Kind()})
	}
}

// damageEnemy subtracts damage and resolves death on the hit that takes hp
// from positive to zero or below.
func (c *CollisionSystem) damageEnemy(e *Enemy, damage float64, now time.Duration) {
	before := e.HP
	e.HP -= damage
	if before > 0 && e.HP <= 0 {
		c.killEnemy(e, now)
	}
}

// killEnemy awards the enemy's reward and sets off its death effects. The
// boss also starts the victory sequence.
func (c *CollisionSystem) killEnemy(e *Enemy, now time.Duration) {
	s := c.sim
	w := s.world
	cx, cy := e.Center()

	if e.IsBoss() {
		s.explode(cx, cy, TintBoss, s.cfg.Effects.BossDeath)
		w.BossActive = false
		w.Message = &Message{Text: s.cfg.Victory.Message, Frames: s.cfg.Victory.MessageFrames}
		w.Player.Score += e.Reward
		if w.victory.Arm(now, s.cfg.Victory.Delay) {
			s.log.Info("boss defeated", "session", w.SessionID, "score", w.Player.Score, "victory_at", w.victory.Due())
		}
		s.emit(Event{Kind: EventEnemyKilled, X: cx, Y: cy, Enemy: EnemyBoss, Reward: e.Reward})
		s.emit(Event{Kind: EventBossDefeated, X: cx, Y: cy, Enemy: EnemyBoss, Reward: e.Reward})
		return
	}

	s.explode(cx, cy, enemyTint(e.Kind()), s.cfg.Effects.EnemyDeath)
	w.Player.Score += e.Reward
	s.emit(Event{Kind: EventEnemyKilled, X: cx, Y: cy, Enemy: e.Kind(), Reward: e.Reward})
}

// checkPlayerDeath runs once at the end of a frame and reports the game-over
// transition the first time the player's hp is at or below zero.
func (c *CollisionSystem) checkPlayerDeath() Transition {
	s := c.sim
	w := s.world
	if w.gameOver || w.Player.HP > 0 {
		return TransitionNone
	}
	w.gameOver = true
	s.explode(w.Player.X, w.Player.Y, TintPlayer, s.cfg.Effects.PlayerDeath)
	s.emit(Event{Kind: EventPlayerDestroyed, X: w.Player.X, Y: w.Player.Y})
	s.log.Info("player destroyed", "session", w.SessionID, "score", w.Player.Score, "frame", w.Frame)
	return TransitionGameOver
}
