package blockwars

import "github.com/vovakirdan/blockwars/internal/core"

const (
	explosionRadius   = 50
	explosionLifetime = 10 // frames
)

// Explosion is a short-lived visual left where an enemy died.
type Explosion struct {
	X, Y     int // Center
	Radius   int
	Lifetime int // Frames left
}

// NewExplosion creates an explosion centered on (cx, cy).
func NewExplosion(cx, cy int) Explosion {
	return Explosion{
		X:        cx,
		Y:        cy,
		Radius:   explosionRadius,
		Lifetime: explosionLifetime,
	}
}

// Age consumes one frame of lifetime.
func (e *Explosion) Age() {
	e.Lifetime--
}

// Alive reports whether the explosion should still be shown.
func (e Explosion) Alive() bool {
	return e.Lifetime > 0
}

// Draw renders the explosion as an orange disc.
func (e Explosion) Draw(dst core.Surface) {
	dst.DrawCircle(e.X, e.Y, e.Radius, core.ColorOrange)
}
