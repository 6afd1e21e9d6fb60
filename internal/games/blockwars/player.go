package blockwars

import "github.com/vovakirdan/blockwars/internal/core"

// Direction is a cardinal heading used to aim projectiles.
type Direction int

const (
	DirNone Direction = iota // Player has not moved yet
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// delta returns the unit step for the direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

const (
	playerSize  = 20
	playerSpeed = 5
)

// Player is the avatar controlled by the user.
type Player struct {
	X, Y      int
	Size      int
	Speed     int
	Direction Direction // Last axis moved, used to aim shots
}

// NewPlayer places the player in the middle of the screen.
func NewPlayer(screenW, screenH int) Player {
	return Player{
		X:     screenW / 2,
		Y:     screenH / 2,
		Size:  playerSize,
		Speed: playerSpeed,
	}
}

// Move applies one frame of input.
// The analog stick is read first (vertical, then horizontal), then the held
// keys; every active input moves the player, and the last one applied wins
// the direction. Leaving the screen wraps to the opposite edge.
func (p *Player) Move(in core.InputFrame, screenW, screenH int) {
	switch {
	case in.AxisY < -core.AnalogDeadzone:
		p.step(DirUp)
	case in.AxisY > core.AnalogDeadzone:
		p.step(DirDown)
	}
	switch {
	case in.AxisX < -core.AnalogDeadzone:
		p.step(DirLeft)
	case in.AxisX > core.AnalogDeadzone:
		p.step(DirRight)
	}

	if in.Has(core.ActionUp) {
		p.step(DirUp)
	}
	if in.Has(core.ActionDown) {
		p.step(DirDown)
	}
	if in.Has(core.ActionLeft) {
		p.step(DirLeft)
	}
	if in.Has(core.ActionRight) {
		p.step(DirRight)
	}

	p.X = core.Wrap(p.X, screenW-p.Size)
	p.Y = core.Wrap(p.Y, screenH-p.Size)
}

func (p *Player) step(d Direction) {
	dx, dy := d.delta()
	p.X += dx * p.Speed
	p.Y += dy * p.Speed
	p.Direction = d
}

// Bounds returns the collision box.
func (p Player) Bounds() core.Rect {
	return core.Square(p.X, p.Y, p.Size)
}

// Center returns the muzzle position for new projectiles.
func (p Player) Center() (int, int) {
	return p.Bounds().Center()
}

// Draw renders the player as a blue square.
func (p Player) Draw(dst core.Surface) {
	dst.DrawRect(p.X, p.Y, p.Size, p.Size, core.ColorBlue)
}
