package core

// Event is a discrete gameplay signal raised during a tick.
// Front ends turn events into sounds; the game never plays audio itself.
type Event int

const (
	EventStart       Event = iota // Session started
	EventFire                     // Projectile spawned
	EventPlayerDeath              // Player touched an enemy (raised once per session)
	EventLevelUp                  // New enemy wave spawned
	EventEnemyDeath               // Enemy destroyed by a projectile
	EventExplosion                // Explosion spawned
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventFire:
		return "fire"
	case EventPlayerDeath:
		return "player_death"
	case EventLevelUp:
		return "level_up"
	case EventEnemyDeath:
		return "enemy_death"
	case EventExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}
