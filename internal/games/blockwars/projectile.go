package blockwars

import "github.com/vovakirdan/blockwars/internal/core"

const (
	projectileSize  = 5
	projectileSpeed = 15
)

// Projectile flies in a straight line along the direction it was fired in.
type Projectile struct {
	X, Y      int
	Size      int
	Speed     int
	Direction Direction
}

// NewProjectile creates a projectile at (x, y) heading in dir.
func NewProjectile(x, y int, dir Direction) Projectile {
	return Projectile{
		X:         x,
		Y:         y,
		Size:      projectileSize,
		Speed:     projectileSpeed,
		Direction: dir,
	}
}

// Update advances the projectile one frame.
func (p *Projectile) Update() {
	dx, dy := p.Direction.delta()
	p.X += dx * p.Speed
	p.Y += dy * p.Speed
}

// OutOfBounds reports whether the projectile has left [0,w]×[0,h].
func (p Projectile) OutOfBounds(w, h int) bool {
	return p.X < 0 || p.X > w || p.Y < 0 || p.Y > h
}

// Bounds returns the collision box.
func (p Projectile) Bounds() core.Rect {
	return core.Square(p.X, p.Y, p.Size)
}

// Draw renders the projectile as a small white square.
func (p Projectile) Draw(dst core.Surface) {
	dst.DrawRect(p.X, p.Y, p.Size, p.Size, core.ColorWhite)
}
