package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollision_DroneTakesTwoHits(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	drone := placeDrone(sim, 100, 100)

	placeBullet(sim, BulletPlayerMain, 110, 110, 10)
	res := sim.Step(0, 0)
	assert.Equal(t, 10.0, drone.HP)
	assert.Equal(t, []*Enemy{drone}, w.Enemies)
	assert.Zero(t, res.Score)
	assert.Empty(t, w.Bullets, "the bullet is spent on impact")
	assert.Zero(t, countEvents(res.Events, EventEnemyKilled))

	placeBullet(sim, BulletPlayerMain, 110, 110, 10)
	res = sim.Step(0, 0)
	assert.Empty(t, w.Enemies)
	assert.Equal(t, 100, res.Score)
	require.Equal(t, 1, countEvents(res.Events, EventEnemyKilled))

	var burst *Event
	for i, ev := range res.Events {
		if ev.Kind == EventExplosion && ev.Count == 15 {
			burst = &res.Events[i]
		}
	}
	require.NotNil(t, burst, "death explosion recorded")
	assert.Equal(t, 115.0, burst.X)
	assert.Equal(t, 115.0, burst.Y)
	assert.Equal(t, TintDrone, burst.Tint)
}

func TestCollision_BulletSpentOnFirstEnemy(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	first := placeDrone(sim, 100, 100)
	second := placeDrone(sim, 100, 100)

	placeBullet(sim, BulletPlayerMain, 110, 110, 10)
	sim.Step(0, 0)
	assert.Equal(t, 10.0, first.HP)
	assert.Equal(t, 20.0, second.HP)
}

func TestCollision_DeadEnemyIsSkipped(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	drone := placeDrone(sim, 100, 100)
	drone.HP = 10

	placeBullet(sim, BulletPlayerMain, 110, 110, 10)
	spare := placeBullet(sim, BulletPlayerMain, 112, 112, 10)
	res := sim.Step(0, 0)

	assert.Equal(t, 100, res.Score, "reward is paid once")
	assert.Equal(t, []*Bullet{spare}, w.Bullets, "the second bullet finds nothing alive")
	assert.True(t, spare.Active)
}

func TestCollision_HostileBulletHitsPlayer(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()

	placeBullet(sim, BulletEnemyNormal, 290, 710, 10)
	placeBullet(sim, BulletBossMain, 300, 720, 20)
	res := sim.Step(0, 0)

	assert.Equal(t, 70.0, w.Player.HP)
	assert.Empty(t, w.Bullets)
	assert.Equal(t, 2, countEvents(res.Events, EventPlayerHit))
	for _, ev := range res.Events {
		if ev.Kind == EventPlayerHit {
			assert.Equal(t, EnemyNone, ev.Enemy, "bullet hits name no enemy")
		}
	}
	assert.Equal(t, TransitionNone, res.Transition)
}

func TestCollision_PlayerBulletsIgnorePlayer(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()

	b := placeBullet(sim, BulletPlayerMain, 290, 710, 10)
	sim.Step(0, 0)
	assert.Equal(t, 100.0, w.Player.HP)
	assert.True(t, b.Active)
}

func TestCollision_RammingEndsGameOnce(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	w.Player.HP = 15

	placeDrone(sim, 285, 705)
	res := sim.Step(0, 0)
	assert.Equal(t, -5.0, w.Player.HP)
	assert.Equal(t, TransitionGameOver, res.Transition)
	assert.True(t, w.GameOver())
	assert.Empty(t, w.Enemies, "rammed enemies are consumed")
	assert.Zero(t, res.Score, "ramming pays nothing")
	assert.Equal(t, 1, countEvents(res.Events, EventEnemyRammed))
	assert.Equal(t, 1, countEvents(res.Events, EventPlayerDestroyed))

	placeDrone(sim, 285, 705)
	res = sim.Step(0, 0)
	assert.Equal(t, -25.0, w.Player.HP)
	assert.Equal(t, TransitionNone, res.Transition)
	assert.Zero(t, countEvents(res.Events, EventPlayerDestroyed))
}

func TestCollision_EveryTouchingEnemyHurts(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()

	placeDrone(sim, 285, 705)
	placeDrone(sim, 300, 720)
	res := sim.Step(0, 0)
	assert.Equal(t, 60.0, w.Player.HP)
	assert.Equal(t, 2, countEvents(res.Events, EventEnemyRammed))
	for _, ev := range res.Events {
		if ev.Kind == EventPlayerHit {
			assert.Equal(t, EnemyDrone, ev.Enemy)
		}
	}
}

func TestCollision_BossContactIsContinuous(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	boss := placeBoss(sim, 0)
	w.Player.X, w.Player.Y = 280, 100

	sim.Step(0, 0)
	sim.Step(0, 0)
	assert.Equal(t, 60.0, w.Player.HP)
	assert.Equal(t, 4900.0, boss.HP)
	assert.Equal(t, []*Enemy{boss}, w.Enemies, "the boss survives contact")
}

func TestCollision_BossDeathArmsVictory(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	boss := placeBoss(sim, 0)
	boss.HP = 10

	placeBullet(sim, BulletPlayerMissile, 290, 120, 50)
	res := sim.Step(time.Second, 0)

	assert.Equal(t, 10000, res.Score)
	assert.Nil(t, w.Boss())
	assert.False(t, w.BossActive)
	assert.True(t, w.BossSpawned)
	assert.True(t, w.VictoryPending())
	require.NotNil(t, w.Message)
	assert.Equal(t, "MISSION COMPLETE", w.Message.Text)
	assert.Equal(t, 199, w.Message.Frames)
	assert.Equal(t, 1, countEvents(res.Events, EventBossDefeated))
	assert.Equal(t, TransitionNone, res.Transition)

	assert.Equal(t, TransitionNone, sim.PollTimers(3999*time.Millisecond))
	assert.Equal(t, TransitionVictory, sim.PollTimers(4*time.Second))
	assert.Equal(t, TransitionNone, sim.PollTimers(5*time.Second), "victory fires once")
}

func TestCollision_BossKilledByContact(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	boss := placeBoss(sim, 0)
	boss.HP = 30
	w.Player.X, w.Player.Y = 280, 100

	res := sim.Step(0, 0)
	assert.Equal(t, 10000, res.Score)
	assert.True(t, w.VictoryPending())
	assert.Empty(t, w.Enemies)
}

func TestCollision_OverkillPaysOnce(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	boss := placeBoss(sim, 0)
	boss.HP = 10

	// A missile and the contact land on the same frame
	w.Player.X, w.Player.Y = 280, 100
	placeBullet(sim, BulletPlayerMissile, 290, 120, 50)
	res := sim.Step(0, 0)

	assert.Equal(t, 10000, res.Score)
	assert.Equal(t, 1, countEvents(res.Events, EventBossDefeated))
	assert.Equal(t, 80.0, w.Player.HP, "the wreck still rams")
	assert.Equal(t, -40.0, boss.HP, "no counter-damage once dead")
}

func TestCollision_ShotDownEnemyStillRams(t *testing.T) {
	sim, _ := newTestSim(t, quietConfig())
	w := sim.World()
	drone := placeDrone(sim, 285, 705)
	drone.HP = 10

	placeBullet(sim, BulletPlayerMain, 290, 710, 10)
	res := sim.Step(0, 0)

	assert.Equal(t, 80.0, w.Player.HP)
	assert.Equal(t, 100, res.Score, "the kill pays once")
	assert.Equal(t, 1, countEvents(res.Events, EventEnemyKilled))
	assert.Zero(t, countEvents(res.Events, EventEnemyRammed), "already dead, nothing to consume")
	assert.Equal(t, 1, countEvents(res.Events, EventPlayerHit))
	assert.Empty(t, w.Enemies)
}
