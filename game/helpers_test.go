package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// seqRand hands out queued values, then repeats a fallback
type seqRand struct {
	vals     []float64
	fallback float64
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return r.fallback
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}

func (r *seqRand) push(vals ...float64) {
	r.vals = append(r.vals, vals...)
}

// quietConfig disables random spawning so tests place every enemy themselves
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Spawn.BaseInterval = 1_000_000
	cfg.Spawn.MinInterval = 1_000_000
	return cfg
}

// newTestSim builds a simulation whose gameplay rng never lets enemies fire
// unless the test queues a low draw
func newTestSim(t *testing.T, cfg Config) (*Simulation, *seqRand) {
	t.Helper()
	rng := &seqRand{fallback: 0.99}
	sim, err := NewSimulation(cfg, rng, WithEffectsRand(&seqRand{fallback: 0.5}))
	require.NoError(t, err)
	return sim, rng
}

// placeDrone puts a stationary drone at x, y
func placeDrone(sim *Simulation, x, y float64) *Enemy {
	stats := sim.cfg.Enemies.Drone
	e := newGrunt(EnemyDrone, stats, x, 0)
	e.Y = y
	e.VY = 0
	sim.world.Enemies = append(sim.world.Enemies, e)
	return e
}

// placeBoss puts the boss at the end of its entry run
func placeBoss(sim *Simulation, attackTimer int) *Enemy {
	e := newBoss(sim.cfg)
	e.Y = sim.cfg.Boss.EntryY
	e.Behavior.(*Boss).AttackTimer = attackTimer
	sim.world.Enemies = append(sim.world.Enemies, e)
	sim.world.BossSpawned = true
	sim.world.BossActive = true
	return e
}

// placeBullet puts a stationary bullet at x, y
func placeBullet(sim *Simulation, kind BulletKind, x, y, damage float64) *Bullet {
	b := newBullet(kind, x, y, 4, 12, 0, 0, damage)
	sim.addBullet(b)
	return b
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func countBullets(w *World, kind BulletKind) int {
	n := 0
	for _, b := range w.Bullets {
		if b.Kind == kind {
			n++
		}
	}
	return n
}
