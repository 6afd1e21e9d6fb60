package blockwars

// Snapshot captures the game state for determinism testing and debugging.
// Uses primitive types only.
type Snapshot struct {
	Tick        uint64
	Phase       string
	Score       int
	Level       int
	PlayerX     int
	PlayerY     int
	PlayerDir   Direction
	Projectiles int
	Explosions  int

	// Enemy state, flattened as X, Y, Speed per enemy
	EnemyCount int
	EnemyData  []int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	data := make([]int, 0, len(g.enemies)*3)
	for _, e := range g.enemies {
		data = append(data, e.X, e.Y, e.Speed)
	}

	return Snapshot{
		Tick:        g.tick,
		Phase:       g.phase.String(),
		Score:       g.score,
		Level:       g.level,
		PlayerX:     g.player.X,
		PlayerY:     g.player.Y,
		PlayerDir:   g.player.Direction,
		Projectiles: len(g.projectiles),
		Explosions:  len(g.explosions),
		EnemyCount:  len(g.enemies),
		EnemyData:   data,
	}
}
