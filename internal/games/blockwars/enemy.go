package blockwars

import (
	"math/rand"

	"github.com/vovakirdan/blockwars/internal/core"
)

const enemySize = 20

// edge identifies the screen border an enemy enters from.
type edge int

const (
	edgeTop edge = iota
	edgeBottom
	edgeLeft
	edgeRight
	edgeCount
)

// Enemy homes in on the player at a speed fixed when it spawns.
type Enemy struct {
	X, Y  int
	Size  int
	Speed int
}

// SpawnEnemy places an enemy at a random point on a random screen edge.
func SpawnEnemy(rng *rand.Rand, speed, screenW, screenH int) Enemy {
	e := Enemy{Size: enemySize, Speed: speed}
	maxX := max(screenW-enemySize, 0)
	maxY := max(screenH-enemySize, 0)

	switch edge(rng.Intn(int(edgeCount))) {
	case edgeTop:
		e.X, e.Y = rng.Intn(maxX+1), 0
	case edgeBottom:
		e.X, e.Y = rng.Intn(maxX+1), maxY
	case edgeLeft:
		e.X, e.Y = 0, rng.Intn(maxY+1)
	case edgeRight:
		e.X, e.Y = maxX, rng.Intn(maxY+1)
	}
	return e
}

// MoveToward steps toward (x, y) on each axis independently.
// Speeds are not normalized, so diagonal approach is faster.
func (e *Enemy) MoveToward(x, y int) {
	e.X = core.Approach(e.X, x, e.Speed)
	e.Y = core.Approach(e.Y, y, e.Speed)
}

// Bounds returns the collision box.
func (e Enemy) Bounds() core.Rect {
	return core.Square(e.X, e.Y, e.Size)
}

// Draw renders the enemy as a red square.
func (e Enemy) Draw(dst core.Surface) {
	dst.DrawRect(e.X, e.Y, e.Size, e.Size, core.ColorRed)
}
