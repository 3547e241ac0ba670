package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoss_EntryHoldsFire(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	e := newBoss(sim.cfg)
	w.Enemies = append(w.Enemies, e)
	w.BossSpawned = true
	b := e.Behavior.(*Boss)

	sim.Step(0, 0)
	assert.Equal(t, -168.5, e.Y)
	assert.Equal(t, 1.5, e.VY, "entry descends at its own velocity")
	assert.Equal(t, 220.0, e.X)
	assert.Equal(t, BossEntry, b.Phase())
	assert.Zero(t, b.AttackTimer)
	assert.Empty(t, w.Bullets)
}

func TestBoss_CombatSway(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	e := placeBoss(sim, 0)
	b := e.Behavior.(*Boss)

	sim.Step(0, 0)
	assert.Equal(t, BossCombat, b.Phase())
	assert.Equal(t, 80.0, e.Y, "the boss holds its height once in combat")
	assert.Zero(t, e.VY)
	assert.InDelta(t, 220+math.Sin(0.02)*2, e.X, 1e-9)
	assert.Equal(t, 1, b.AttackTimer)
}

func TestBoss_EntryFollowsVelocity(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	e := newBoss(sim.cfg)
	e.Y = 0
	e.VY = 4
	w.Enemies = append(w.Enemies, e)
	w.BossSpawned = true

	sim.Step(0, 0)
	sim.Step(0, 0)
	assert.Equal(t, 8.0, e.Y)
	assert.Equal(t, BossEntry, e.Behavior.(*Boss).Phase())
}

func TestBoss_SwayStaysInArena(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	e := placeBoss(sim, 0)
	e.X = 0
	sim.World().Frame = 235 // next frame swings hard left

	sim.Step(0, 0)
	assert.Equal(t, 0.0, e.X)
}

func TestBoss_AimedShot(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	placeBoss(sim, 59)

	sim.Step(0, 0)
	require.Equal(t, 1, countBullets(w, BulletBossMain))
	assert.Zero(t, countBullets(w, BulletBossSpread))

	shot := w.Bullets[0]
	assert.InDelta(t, 7.0, math.Hypot(shot.VX, shot.VY), 1e-9)
	assert.Greater(t, shot.VY, 0.0, "aimed down at the player")
	assert.Equal(t, 20.0, shot.Damage)
	assert.Equal(t, 10.0, shot.Width)
}

func TestBoss_AimedShotAtCoincidentCentre(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	e := placeBoss(sim, 0)

	// Put the player's centre exactly on the boss's centre
	bx, by := e.Center()
	w.Player.X = bx - w.Player.Width/2
	w.Player.Y = by - w.Player.Height/2
	sim.fireAimedShot(e)

	require.Len(t, w.Bullets, 1)
	assert.Equal(t, 0.0, w.Bullets[0].VX)
	assert.Equal(t, 7.0, w.Bullets[0].VY)
}

func TestBoss_Spread(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	placeBoss(sim, 149)

	sim.Step(0, 0)
	require.Equal(t, 5, countBullets(w, BulletBossSpread))
	assert.Zero(t, countBullets(w, BulletBossMain))

	var vxs []float64
	for _, b := range w.Bullets {
		vxs = append(vxs, b.VX)
		assert.Equal(t, 5.0, b.VY)
		assert.Equal(t, 15.0, b.Damage)
	}
	assert.Equal(t, []float64{-4, -2, 0, 2, 4}, vxs)
}

func TestBoss_PatternsCoincide(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	placeBoss(sim, 299)

	sim.Step(0, 0)
	assert.Equal(t, 1, countBullets(w, BulletBossMain))
	assert.Equal(t, 5, countBullets(w, BulletBossSpread))
}
