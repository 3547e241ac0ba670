package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable the simulation reads. Nothing inside the
// simulation hardcodes a gameplay number; it all comes from here.
type Config struct {
	// ArenaWidth is the width of the play field in pixels
	ArenaWidth float64 `yaml:"arena_width"`

	// ArenaHeight is the height of the play field in pixels
	ArenaHeight float64 `yaml:"arena_height"`

	Player    PlayerConfig    `yaml:"player"`
	MainGun   WeaponConfig    `yaml:"main_gun"`
	Missile   WeaponConfig    `yaml:"missile"`
	EnemyGun  EnemyGunConfig  `yaml:"enemy_gun"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Enemies   EnemyRoster     `yaml:"enemies"`
	Boss      BossConfig      `yaml:"boss"`
	Collision CollisionConfig `yaml:"collision"`
	Effects   EffectsConfig   `yaml:"effects"`
	Victory   VictoryConfig   `yaml:"victory"`
	Stars     StarConfig      `yaml:"stars"`
}

// PlayerConfig describes the player ship
type PlayerConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // pixels per frame, per held direction key
	MaxHP float64 `yaml:"max_hp"`

	// StartOffsetY is the distance from the arena bottom to the ship's top edge at reset
	StartOffsetY float64 `yaml:"start_offset_y"`
}

// WeaponConfig describes one of the player's weapons
type WeaponConfig struct {
	Cooldown     time.Duration `yaml:"cooldown"`
	Damage       float64       `yaml:"damage"`
	Speed        float64       `yaml:"speed"`
	BulletWidth  float64       `yaml:"bullet_width"`
	BulletHeight float64       `yaml:"bullet_height"`

	// SideSpeed is the outward horizontal speed of diverging shots (missiles only)
	SideSpeed float64 `yaml:"side_speed"`
}

// EnemyGunConfig describes the shot standard enemies fire at random
type EnemyGunConfig struct {
	FireChance float64 `yaml:"fire_chance"` // probability per enemy per frame
	Speed      float64 `yaml:"speed"`
	Damage     float64 `yaml:"damage"`
	BulletSize float64 `yaml:"bullet_size"`
}

// SpawnConfig controls the standard enemy cadence and difficulty scaling
type SpawnConfig struct {
	BaseInterval  int     `yaml:"base_interval"` // frames between spawns at level 0
	MinInterval   int     `yaml:"min_interval"`
	IntervalStep  int     `yaml:"interval_step"` // frames removed per difficulty level
	ScorePerLevel int     `yaml:"score_per_level"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
}

// EnemyStats holds the fixed stats of one standard enemy variant
type EnemyStats struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	HP     float64 `yaml:"hp"`
	Speed  float64 `yaml:"speed"`
	Reward int     `yaml:"reward"`
	Weight float64 `yaml:"weight"` // share of the [0,1) selection range
}

// EnemyRoster lists the standard variants in selection order
type EnemyRoster struct {
	Drone   EnemyStats `yaml:"drone"`
	Fighter EnemyStats `yaml:"fighter"`
	Bomber  EnemyStats `yaml:"bomber"`
}

// Stats returns the stats for a standard enemy kind
func (r EnemyRoster) Stats(kind EnemyKind) EnemyStats {
	switch kind {
	case EnemyFighter:
		return r.Fighter
	case EnemyBomber:
		return r.Bomber
	default:
		return r.Drone
	}
}

// BossConfig describes the boss and its attack patterns
type BossConfig struct {
	ScoreThreshold int     `yaml:"score_threshold"`
	HP             float64 `yaml:"hp"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Reward         int     `yaml:"reward"`
	SpawnOffset    float64 `yaml:"spawn_offset"` // extra distance above the arena top at spawn

	// Entry phase
	EntryY     float64 `yaml:"entry_y"`
	EntrySpeed float64 `yaml:"entry_speed"`

	// Combat sway: vx = sin(frame*SwayFrequency) * SwayAmplitude
	SwayAmplitude float64 `yaml:"sway_amplitude"`
	SwayFrequency float64 `yaml:"sway_frequency"`

	AimedPeriod int     `yaml:"aimed_period"`
	AimedSpeed  float64 `yaml:"aimed_speed"`
	AimedDamage float64 `yaml:"aimed_damage"`
	AimedSize   float64 `yaml:"aimed_size"`

	SpreadPeriod int     `yaml:"spread_period"`
	SpreadCount  int     `yaml:"spread_count"`
	SpreadStepVX float64 `yaml:"spread_step_vx"`
	SpreadVY     float64 `yaml:"spread_vy"`
	SpreadDamage float64 `yaml:"spread_damage"`
	SpreadSize   float64 `yaml:"spread_size"`

	// ContactDamage is taken by the boss for every frame it overlaps the player
	ContactDamage float64 `yaml:"contact_damage"`
}

// CollisionConfig holds contact damage and arena margins
type CollisionConfig struct {
	ContactDamage   float64 `yaml:"contact_damage"` // dealt to the player per overlapping frame
	BulletMargin    float64 `yaml:"bullet_margin"`
	EnemyExitMargin float64 `yaml:"enemy_exit_margin"`
}

// ExplosionConfig sizes one kind of particle burst
type ExplosionConfig struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"` // multiplier on EffectsConfig.ParticleSpeed
}

// EffectsConfig describes cosmetic particle bursts
type EffectsConfig struct {
	ParticleSpeed float64 `yaml:"particle_speed"`
	DecayMin      float64 `yaml:"decay_min"`
	DecayRange    float64 `yaml:"decay_range"`
	SizeMin       float64 `yaml:"size_min"`
	SizeRange     float64 `yaml:"size_range"`

	BulletImpact ExplosionConfig `yaml:"bullet_impact"`
	PlayerImpact ExplosionConfig `yaml:"player_impact"`
	EnemyDeath   ExplosionConfig `yaml:"enemy_death"`
	Ramming      ExplosionConfig `yaml:"ramming"`
	BossDeath    ExplosionConfig `yaml:"boss_death"`
	PlayerDeath  ExplosionConfig `yaml:"player_death"`
}

// VictoryConfig controls the boss-defeat sequence
type VictoryConfig struct {
	Delay         time.Duration `yaml:"delay"`
	Message       string        `yaml:"message"`
	MessageFrames int           `yaml:"message_frames"`
}

// StarConfig describes the scrolling background
type StarConfig struct {
	Count      int     `yaml:"count"`
	SizeMin    float64 `yaml:"size_min"`
	SizeRange  float64 `yaml:"size_range"`
	SpeedMin   float64 `yaml:"speed_min"`
	SpeedRange float64 `yaml:"speed_range"`
}

// DefaultConfig returns the stock arcade tuning
func DefaultConfig() Config {
	return Config{
		ArenaWidth:  600,
		ArenaHeight: 800,
		Player: PlayerConfig{
			Size:         40,
			Speed:        5,
			MaxHP:        100,
			StartOffsetY: 100,
		},
		MainGun: WeaponConfig{
			Cooldown:     100 * time.Millisecond,
			Damage:       10,
			Speed:        12,
			BulletWidth:  4,
			BulletHeight: 12,
		},
		Missile: WeaponConfig{
			Cooldown:     800 * time.Millisecond,
			Damage:       50,
			Speed:        8,
			BulletWidth:  8,
			BulletHeight: 20,
			SideSpeed:    1,
		},
		EnemyGun: EnemyGunConfig{
			FireChance: 0.01,
			Speed:      6,
			Damage:     10,
			BulletSize: 8,
		},
		Spawn: SpawnConfig{
			BaseInterval:  60,
			MinInterval:   20,
			IntervalStep:  2,
			ScorePerLevel: 1000,
			SpeedPerLevel: 0.05,
		},
		Enemies: EnemyRoster{
			Drone:   EnemyStats{Width: 30, Height: 30, HP: 20, Speed: 2, Reward: 100, Weight: 0.7},
			Fighter: EnemyStats{Width: 40, Height: 40, HP: 40, Speed: 3, Reward: 300, Weight: 0.2},
			Bomber:  EnemyStats{Width: 60, Height: 50, HP: 120, Speed: 1, Reward: 500, Weight: 0.1},
		},
		Boss: BossConfig{
			ScoreThreshold: 2000,
			HP:             5000,
			Width:          160,
			Height:         120,
			Reward:         10000,
			SpawnOffset:    50,
			EntryY:         80,
			EntrySpeed:     1.5,
			SwayAmplitude:  2,
			SwayFrequency:  0.02,
			AimedPeriod:    60,
			AimedSpeed:     7,
			AimedDamage:    20,
			AimedSize:      10,
			SpreadPeriod:   150,
			SpreadCount:    5,
			SpreadStepVX:   2,
			SpreadVY:       5,
			SpreadDamage:   15,
			SpreadSize:     8,
			ContactDamage:  50,
		},
		Collision: CollisionConfig{
			ContactDamage:   20,
			BulletMargin:    50,
			EnemyExitMargin: 50,
		},
		Effects: EffectsConfig{
			ParticleSpeed: 10,
			DecayMin:      0.02,
			DecayRange:    0.03,
			SizeMin:       2,
			SizeRange:     4,
			BulletImpact:  ExplosionConfig{Count: 3, Speed: 1},
			PlayerImpact:  ExplosionConfig{Count: 5, Speed: 1},
			EnemyDeath:    ExplosionConfig{Count: 15, Speed: 1},
			Ramming:       ExplosionConfig{Count: 10, Speed: 1},
			BossDeath:     ExplosionConfig{Count: 100, Speed: 2},
			PlayerDeath:   ExplosionConfig{Count: 50, Speed: 1},
		},
		Victory: VictoryConfig{
			Delay:         3 * time.Second,
			Message:       "MISSION COMPLETE",
			MessageFrames: 200,
		},
		Stars: StarConfig{
			Count:      100,
			SizeMin:    0.5,
			SizeRange:  2,
			SpeedMin:   0.5,
			SpeedRange: 3,
		},
	}
}

// Validate rejects configurations the simulation cannot run sensibly.
// A bad config is a programming error, so callers should fail fast on it.
func (c Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.ArenaWidth > 0, "arena_width"},
		{c.ArenaHeight > 0, "arena_height"},
		{c.Player.Size > 0 && c.Player.Size <= c.ArenaWidth && c.Player.Size <= c.ArenaHeight, "player.size"},
		{c.Player.Speed >= 0, "player.speed"},
		{c.Player.MaxHP > 0, "player.max_hp"},
		{c.Player.StartOffsetY >= c.Player.Size && c.Player.StartOffsetY <= c.ArenaHeight, "player.start_offset_y"},
		{c.MainGun.Cooldown >= 0, "main_gun.cooldown"},
		{c.MainGun.Damage >= 0, "main_gun.damage"},
		{c.MainGun.BulletWidth > 0 && c.MainGun.BulletHeight > 0, "main_gun.bullet_size"},
		{c.MainGun.Speed > 0, "main_gun.speed"},
		{c.Missile.Cooldown >= 0, "missile.cooldown"},
		{c.Missile.Damage >= 0, "missile.damage"},
		{c.Missile.BulletWidth > 0 && c.Missile.BulletHeight > 0, "missile.bullet_size"},
		{c.Missile.Speed > 0, "missile.speed"},
		{c.Missile.SideSpeed >= 0, "missile.side_speed"},
		{c.EnemyGun.FireChance >= 0 && c.EnemyGun.FireChance <= 1, "enemy_gun.fire_chance"},
		{c.EnemyGun.Damage >= 0, "enemy_gun.damage"},
		{c.EnemyGun.BulletSize > 0, "enemy_gun.bullet_size"},
		{c.EnemyGun.Speed > 0, "enemy_gun.speed"},
		{c.Spawn.MinInterval > 0, "spawn.min_interval"},
		{c.Spawn.BaseInterval >= c.Spawn.MinInterval, "spawn.base_interval"},
		{c.Spawn.IntervalStep >= 0, "spawn.interval_step"},
		{c.Spawn.ScorePerLevel > 0, "spawn.score_per_level"},
		{c.Spawn.SpeedPerLevel >= 0, "spawn.speed_per_level"},
		{c.Boss.ScoreThreshold >= 0, "boss.score_threshold"},
		{c.Boss.HP > 0, "boss.hp"},
		{c.Boss.Width > 0 && c.Boss.Width <= c.ArenaWidth && c.Boss.Height > 0, "boss.size"},
		{c.Boss.Reward >= 0, "boss.reward"},
		{c.Boss.EntrySpeed > 0, "boss.entry_speed"},
		{c.Boss.AimedPeriod > 0, "boss.aimed_period"},
		{c.Boss.AimedSize > 0, "boss.aimed_size"},
		{c.Boss.AimedSpeed > 0, "boss.aimed_speed"},
		{c.Boss.SpreadPeriod > 0, "boss.spread_period"},
		{c.Boss.SpreadCount > 0, "boss.spread_count"},
		{c.Boss.SpreadSize > 0, "boss.spread_size"},
		{c.Boss.SpreadVY > 0, "boss.spread_vy"},
		{c.Boss.ContactDamage >= 0, "boss.contact_damage"},
		{c.Collision.ContactDamage >= 0, "collision.contact_damage"},
		{c.Collision.BulletMargin >= 0, "collision.bullet_margin"},
		{c.Collision.EnemyExitMargin >= 0, "collision.enemy_exit_margin"},
		{c.Effects.DecayMin > 0 && c.Effects.DecayRange >= 0, "effects.decay"},
		{c.Effects.SizeMin >= 0 && c.Effects.SizeRange >= 0, "effects.size"},
		{c.Effects.ParticleSpeed >= 0, "effects.particle_speed"},
		{c.Victory.Delay >= 0, "victory.delay"},
		{c.Victory.MessageFrames >= 0, "victory.message_frames"},
		{c.Stars.Count >= 0, "stars.count"},
		{c.Stars.SpeedMin >= 0 && c.Stars.SpeedRange >= 0, "stars.speed"},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.field)
		}
	}

	if err := c.Enemies.validate(c.ArenaWidth); err != nil {
		return err
	}
	for _, burst := range []ExplosionConfig{
		c.Effects.BulletImpact, c.Effects.PlayerImpact, c.Effects.EnemyDeath,
		c.Effects.Ramming, c.Effects.BossDeath, c.Effects.PlayerDeath,
	} {
		if burst.Count < 0 || burst.Speed < 0 {
			return fmt.Errorf("%w: effects burst %+v", ErrInvalidConfig, burst)
		}
	}
	return nil
}

func (r EnemyRoster) validate(arenaWidth float64) error {
	total := 0.0
	for _, kind := range standardKinds {
		stats := r.Stats(kind)
		switch {
		case stats.Width <= 0 || stats.Width > arenaWidth || stats.Height <= 0:
			return fmt.Errorf("%w: enemies.%s size", ErrInvalidConfig, kind)
		case stats.HP <= 0:
			return fmt.Errorf("%w: enemies.%s hp", ErrInvalidConfig, kind)
		case stats.Speed < 0:
			return fmt.Errorf("%w: enemies.%s speed", ErrInvalidConfig, kind)
		case stats.Reward < 0:
			return fmt.Errorf("%w: enemies.%s reward", ErrInvalidConfig, kind)
		case stats.Weight < 0:
			return fmt.Errorf("%w: enemies.%s weight", ErrInvalidConfig, kind)
		}
		total += stats.Weight
	}
	if total <= 0 {
		return fmt.Errorf("%w: enemies weights sum to zero", ErrInvalidConfig)
	}
	return nil
}
