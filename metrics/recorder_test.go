package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thunderstrike/game"
)

func newTestRecorder(t *testing.T) (*Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)
	return r, reg
}

func TestRecorder_Observe(t *testing.T) {
	r, _ := newTestRecorder(t)
	w := &game.World{
		Enemies: []*game.Enemy{{}, {}},
		Bullets: []*game.Bullet{{}},
	}

	r.Observe(game.StepResult{
		World:      w,
		Score:      300,
		Transition: game.TransitionGameOver,
		Events: []game.Event{
			{Kind: game.EventEnemySpawned, Enemy: game.EnemyDrone},
			{Kind: game.EventEnemyKilled, Enemy: game.EnemyDrone, Reward: 100},
			{Kind: game.EventEnemyKilled, Enemy: game.EnemyBomber, Reward: 500},
			{Kind: game.EventEnemyRammed, Enemy: game.EnemyFighter},
			{Kind: game.EventPlayerHit, Amount: 20},
			{Kind: game.EventPlayerHit, Amount: 10},
			{Kind: game.EventExplosion, Count: 15},
			{Kind: game.EventExplosion, Count: 3},
		},
	}, 2*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.steps))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.spawned.WithLabelValues("drone")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.killed.WithLabelValues("drone")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.killed.WithLabelValues("bomber")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rammed))
	assert.Equal(t, 30.0, testutil.ToFloat64(r.playerDamage))
	assert.Equal(t, 18.0, testutil.ToFloat64(r.particles))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("game-over")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.entities.WithLabelValues("enemies")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.entities.WithLabelValues("bullets")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.entities.WithLabelValues("particles")))
	assert.Equal(t, 300.0, testutil.ToFloat64(r.score))
}

func TestRecorder_IgnoresIdleFrames(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.Observe(game.StepResult{}, time.Millisecond)
	r.Transition(game.TransitionNone)
	assert.Zero(t, testutil.ToFloat64(r.steps))
	assert.Zero(t, testutil.CollectAndCount(r.transitions))

	r.Transition(game.TransitionVictory)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.transitions.WithLabelValues("victory")))
}

func TestRecorder_DoubleRegistration(t *testing.T) {
	_, reg := newTestRecorder(t)

	_, err := NewRecorder(reg)
	assert.Error(t, err)
}

func TestRecorder_FromSimulation(t *testing.T) {
	r, reg := newTestRecorder(t)
	sim, err := game.NewSimulation(game.DefaultConfig(), constRand(0.5))
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		r.Observe(sim.Step(0, 0), time.Microsecond)
	}

	assert.Equal(t, 60.0, testutil.ToFloat64(r.steps))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.spawned.WithLabelValues("drone")))

	n, err := testutil.GatherAndCount(reg, "thunderstrike_step_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }
