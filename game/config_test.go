package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative fire rate", func(c *Config) { c.MainGun.Cooldown = -time.Millisecond }},
		{"negative missile cooldown", func(c *Config) { c.Missile.Cooldown = -1 }},
		{"zero arena", func(c *Config) { c.ArenaWidth = 0 }},
		{"zero spawn interval", func(c *Config) { c.Spawn.MinInterval = 0 }},
		{"base below min interval", func(c *Config) { c.Spawn.BaseInterval = 10 }},
		{"zero aimed period", func(c *Config) { c.Boss.AimedPeriod = 0 }},
		{"fire chance above one", func(c *Config) { c.EnemyGun.FireChance = 1.5 }},
		{"boss wider than arena", func(c *Config) { c.Boss.Width = 1000 }},
		{"negative enemy hp", func(c *Config) { c.Enemies.Fighter.HP = -1 }},
		{"all weights zero", func(c *Config) {
			c.Enemies.Drone.Weight = 0
			c.Enemies.Fighter.Weight = 0
			c.Enemies.Bomber.Weight = 0
		}},
		{"negative burst", func(c *Config) { c.Effects.BossDeath.Count = -1 }},
		{"stalled main gun", func(c *Config) { c.MainGun.Speed = 0 }},
		{"missiles fly backwards", func(c *Config) { c.Missile.Speed = -8 }},
		{"stalled enemy gun", func(c *Config) { c.EnemyGun.Speed = 0 }},
		{"stalled aimed shot", func(c *Config) { c.Boss.AimedSpeed = 0 }},
		{"spread flies upward", func(c *Config) { c.Boss.SpreadVY = -5 }},
		{"negative particle speed", func(c *Config) { c.Effects.ParticleSpeed = -1 }},
		{"negative star speed", func(c *Config) { c.Stars.SpeedMin = -0.5 }},
		{"negative star speed range", func(c *Config) { c.Stars.SpeedRange = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestNewSimulation_FailsFast(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MainGun.Cooldown = -1

	_, err := NewSimulation(cfg, &seqRand{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSimulation(DefaultConfig(), nil)
	assert.Error(t, err)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
arena_width: 800
main_gun:
  cooldown: 250ms
boss:
  score_threshold: 500
enemies:
  drone:
    reward: 150
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.ArenaWidth = 800
	want.MainGun.Cooldown = 250 * time.Millisecond
	want.Boss.ScoreThreshold = 500
	want.Enemies.Drone.Reward = 150
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_EnvFallback(t *testing.T) {
	path := writeFile(t, "arena_height: 900\n")
	t.Setenv(ConfigEnv, path)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 900.0, cfg.ArenaHeight)
}

func TestLoadConfig_NoPathGivesDefaults(t *testing.T) {
	t.Setenv(ConfigEnv, "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "arena_width: [1, 2\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "missile:\n  cooldown: -5ms\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestMarshalConfig_Loadable(t *testing.T) {
	data, err := MarshalConfig(DefaultConfig())
	require.NoError(t, err)

	cfg, err := LoadConfig(writeFile(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
