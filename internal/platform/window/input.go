package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockwars/internal/core"
)

// Controls is one tick's worth of raw device state.
type Controls struct {
	Up, Down, Left, Right bool // Held keys
	Fire                  bool // Space, gamepad button 0 or left click this tick
	Escape                bool // Escape pressed this tick
	Closing               bool // Window close requested
	AxisX, AxisY          float64
}

// Frame translates device state into a game input frame.
func (c Controls) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	set := func(on bool, a core.Action) {
		if on {
			frame.Set(a)
		}
	}
	set(c.Up, core.ActionUp)
	set(c.Down, core.ActionDown)
	set(c.Left, core.ActionLeft)
	set(c.Right, core.ActionRight)
	set(c.Fire, core.ActionFire)
	set(c.Escape, core.ActionEscape)
	set(c.Closing, core.ActionQuit)
	frame.SetAxes(clampAxis(c.AxisX), clampAxis(c.AxisY))
	return frame
}

func clampAxis(v float64) float64 {
	return max(-1, min(1, v))
}

// InputPoller reads keyboard, mouse and the first gamepad.
type InputPoller struct {
	gamepads []ebiten.GamepadID
}

// NewInputPoller creates a poller.
func NewInputPoller() *InputPoller {
	return &InputPoller{}
}

// Controls samples the devices. Call it once per tick from Update.
func (p *InputPoller) Controls() Controls {
	c := Controls{
		Up:      ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Escape:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Closing: ebiten.IsWindowBeingClosed(),
		Fire: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}

	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])
	if len(p.gamepads) > 0 {
		id := p.gamepads[0]
		c.AxisX = ebiten.GamepadAxisValue(id, 0)
		c.AxisY = ebiten.GamepadAxisValue(id, 1)
		c.Fire = c.Fire || inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton0)
	}
	return c
}

// Poll samples the devices and returns the game input frame.
func (p *InputPoller) Poll() core.InputFrame {
	return p.Controls().Frame()
}
