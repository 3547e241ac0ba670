package game

// EnemyKind identifies an enemy variant
type EnemyKind int

const (
	EnemyNone    EnemyKind = iota // No enemy involved
	EnemyDrone                    // Light and common
	EnemyFighter                  // Faster, tougher
	EnemyBomber                   // Slow, heavily armoured
	EnemyBoss                     // Spawned once per session
)

// standardKinds lists the randomly spawned variants in selection order
var standardKinds = []EnemyKind{EnemyDrone, EnemyFighter, EnemyBomber}

func (k EnemyKind) String() string {
	switch k {
	case EnemyNone:
		return "none"
	case EnemyDrone:
		return "drone"
	case EnemyFighter:
		return "fighter"
	case EnemyBomber:
		return "bomber"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// pickKind maps a draw in [0,1) onto the roster's weight bands
func (r EnemyRoster) pickKind(draw float64) EnemyKind {
	total := 0.0
	for _, kind := range standardKinds {
		total += r.Stats(kind).Weight
	}

	pick := draw * total
	cumulative := 0.0
	for _, kind := range standardKinds {
		cumulative += r.Stats(kind).Weight
		if pick < cumulative {
			return kind
		}
	}
	return standardKinds[len(standardKinds)-1]
}

// newGrunt builds a standard enemy of the given kind at x, just above the arena
func newGrunt(kind EnemyKind, stats EnemyStats, x, speedBonus float64) *Enemy {
	return &Enemy{
		Body: Body{
			X:      x,
			Y:      -stats.Height,
			Width:  stats.Width,
			Height: stats.Height,
			VY:     stats.Speed + speedBonus,
			HP:     stats.HP,
			MaxHP:  stats.HP,
		},
		Reward:   stats.Reward,
		Behavior: &Grunt{kind: kind},
	}
}

// newBoss builds the boss centred horizontally, well above the arena
func newBoss(cfg Config) *Enemy {
	b := cfg.Boss
	return &Enemy{
		Body: Body{
			X:      cfg.ArenaWidth/2 - b.Width/2,
			Y:      -b.Height - b.SpawnOffset,
			Width:  b.Width,
			Height: b.Height,
			VY:     b.EntrySpeed,
			HP:     b.HP,
			MaxHP:  b.HP,
		},
		Reward:   b.Reward,
		Behavior: &Boss{},
	}
}
