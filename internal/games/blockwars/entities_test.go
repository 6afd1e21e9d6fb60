package blockwars

import (
	"math/rand"
	"testing"
)

func TestProjectileTravelsAlongOneAxis(t *testing.T) {
	const steps = 4
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -steps * projectileSpeed},
		{DirDown, 0, steps * projectileSpeed},
		{DirLeft, -steps * projectileSpeed, 0},
		{DirRight, steps * projectileSpeed, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			p := NewProjectile(200, 300, tc.dir)
			for range steps {
				p.Update()
			}
			if p.X != 200+tc.dx || p.Y != 300+tc.dy {
				t.Errorf("position = (%d, %d), expected (%d, %d)", p.X, p.Y, 200+tc.dx, 300+tc.dy)
			}
			if p.Direction != tc.dir {
				t.Errorf("direction changed to %v", p.Direction)
			}
		})
	}
}

func TestProjectileFiredRightFromPlayer(t *testing.T) {
	player := NewPlayer(testW, testH)
	player.X, player.Y = 100, 100

	cx, cy := player.Center()
	p := NewProjectile(cx, cy, DirRight)
	if p.X != 110 || p.Y != 110 {
		t.Fatalf("spawned at (%d, %d), expected (110, 110)", p.X, p.Y)
	}

	for range 3 {
		p.Update()
	}
	if p.X != 155 || p.Y != 110 {
		t.Errorf("after 3 frames at (%d, %d), expected (155, 110)", p.X, p.Y)
	}
}

func TestProjectileOutOfBounds(t *testing.T) {
	tests := []struct {
		x, y int
		out  bool
	}{
		{0, 0, false},
		{testW, testH, false},
		{-1, 10, true},
		{testW + 1, 10, true},
		{10, -1, true},
		{10, testH + 1, true},
	}

	for _, tc := range tests {
		p := NewProjectile(tc.x, tc.y, DirUp)
		if got := p.OutOfBounds(testW, testH); got != tc.out {
			t.Errorf("OutOfBounds at (%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.out)
		}
	}
}

func TestEnemyMovesDiagonallyTowardPlayer(t *testing.T) {
	e := Enemy{X: 0, Y: 0, Size: enemySize, Speed: 2}
	e.MoveToward(50, 50)

	if e.X != 2 || e.Y != 2 {
		t.Errorf("enemy at (%d, %d), expected (2, 2)", e.X, e.Y)
	}
}

func TestEnemyHoldsAxisWhenAligned(t *testing.T) {
	e := Enemy{X: 50, Y: 90, Size: enemySize, Speed: 3}
	e.MoveToward(50, 10)

	if e.X != 50 || e.Y != 87 {
		t.Errorf("enemy at (%d, %d), expected (50, 87)", e.X, e.Y)
	}
}

func TestSpawnEnemyOnEdge(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}

	for i := 0; i < 2000; i++ {
		e := SpawnEnemy(rng, 4, testW, testH)

		if e.Speed != 4 || e.Size != enemySize {
			t.Fatalf("enemy speed/size = %d/%d", e.Speed, e.Size)
		}
		if e.X < 0 || e.X > testW-enemySize || e.Y < 0 || e.Y > testH-enemySize {
			t.Fatalf("enemy spawned off screen at (%d, %d)", e.X, e.Y)
		}

		switch {
		case e.Y == 0:
			seen["top"] = true
		case e.Y == testH-enemySize:
			seen["bottom"] = true
		case e.X == 0:
			seen["left"] = true
		case e.X == testW-enemySize:
			seen["right"] = true
		default:
			t.Fatalf("enemy at (%d, %d) is not on an edge", e.X, e.Y)
		}
	}

	if len(seen) != 4 {
		t.Errorf("expected spawns on all four edges, got %v", seen)
	}
}

func TestSpawnEnemyTinyScreen(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := SpawnEnemy(rng, 2, 10, 10)
	if e.X != 0 || e.Y != 0 {
		t.Errorf("enemy on a screen smaller than itself should sit at origin, got (%d, %d)", e.X, e.Y)
	}
}

func TestExplosionLifetime(t *testing.T) {
	e := NewExplosion(100, 100)
	if e.Lifetime != 10 || e.Radius != 50 {
		t.Fatalf("explosion lifetime/radius = %d/%d, expected 10/50", e.Lifetime, e.Radius)
	}

	for range 9 {
		e.Age()
	}
	if !e.Alive() {
		t.Fatal("explosion should be alive after 9 frames")
	}

	e.Age()
	if e.Alive() {
		t.Error("explosion should be gone after 10 frames")
	}
}
