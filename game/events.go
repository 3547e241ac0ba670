package game

// EventKind identifies something that happened during a step
type EventKind int

const (
	EventExplosion       EventKind = iota // a particle burst was emitted
	EventEnemySpawned                     // a standard enemy entered
	EventBossSpawned                      // the boss entered
	EventEnemyKilled                      // an enemy's hp crossed zero
	EventBossDefeated                     // the boss died; victory is pending
	EventEnemyRammed                      // a standard enemy was consumed by contact with the player
	EventPlayerHit                        // the player took damage
	EventPlayerDestroyed                  // the player's hp reached zero
)

func (k EventKind) String() string {
	switch k {
	case EventExplosion:
		return "explosion"
	case EventEnemySpawned:
		return "enemy-spawned"
	case EventBossSpawned:
		return "boss-spawned"
	case EventEnemyKilled:
		return "enemy-killed"
	case EventBossDefeated:
		return "boss-defeated"
	case EventEnemyRammed:
		return "enemy-rammed"
	case EventPlayerHit:
		return "player-hit"
	case EventPlayerDestroyed:
		return "player-destroyed"
	default:
		return "unknown"
	}
}

// Event records one gameplay occurrence. Only the fields relevant to the
// kind are set.
type Event struct {
	Kind EventKind

	// Where it happened
	X, Y float64

	// Enemy involved, for spawn/kill/ram events and contact hits.
	// EnemyNone when a bullet did the damage.
	Enemy EnemyKind

	// Damage dealt, for hit events
	Amount float64

	// Score awarded, for kill events
	Reward int

	// Particles emitted, for explosions
	Count int
	Tint  Tint
}

func (s *Simulation) emit(ev Event) {
	s.events = append(s.events, ev)
}
