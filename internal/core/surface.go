package core

// TextSize selects one of the two HUD font sizes.
type TextSize int

const (
	TextNormal TextSize = iota // HUD labels
	TextLarge                  // Final score banner
)

// Surface is the render target a game draws into.
// All coordinates are screen pixels; implementations clip what falls outside.
// Presenting the finished frame is the front end's job.
type Surface interface {
	Clear(c Color)
	DrawRect(x, y, w, h int, c Color)
	DrawCircle(cx, cy, r int, c Color)
	DrawText(s string, x, y int, size TextSize, c Color)
	// TextSize returns the pixel extent of s when drawn at the given size.
	TextSize(s string, size TextSize) (w, h int)
}

// Game is the contract between the platform loop and a game.
// Games contain pure logic; the platform handles input, timing, audio and display.
type Game interface {
	// Reset initializes or restarts the game for the given screen extents and seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into dst.
	Render(dst Surface)

	// State returns the current game state.
	State() GameState
}
