package blockwars

import "github.com/vovakirdan/blockwars/internal/core"

// EnemySpeed returns the speed of enemies spawned for a level.
// Speed grows by one every three levels.
func EnemySpeed(level int) int {
	return 2 + level/3
}

// spawnWave replaces the enemy collection with a fresh batch of level enemies.
func (g *Game) spawnWave() {
	speed := EnemySpeed(g.level)
	g.enemies = make([]Enemy, 0, g.level)
	for range g.level {
		g.enemies = append(g.enemies, SpawnEnemy(g.rng, speed, g.screenW, g.screenH))
	}
}

// levelUpIfCleared advances to the next level once every enemy is gone.
func (g *Game) levelUpIfCleared() {
	if len(g.enemies) > 0 {
		return
	}
	g.level++
	g.emit(core.EventLevelUp)
	g.spawnWave()
}
