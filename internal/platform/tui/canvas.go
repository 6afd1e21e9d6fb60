package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/blockwars/internal/core"
)

const blockRune = '█'

// Canvas rasterizes pixel-space drawing onto a character Screen.
// Every cell stands for a cellW x cellH block of virtual pixels.
type Canvas struct {
	screen *core.Screen
	cellW  int
	cellH  int
}

var _ core.Surface = (*Canvas)(nil)

// NewCanvas wraps screen with the given cell size in pixels.
func NewCanvas(screen *core.Screen, cellW, cellH int) *Canvas {
	return &Canvas{
		screen: screen,
		cellW:  max(cellW, 1),
		cellH:  max(cellH, 1),
	}
}

// PixelSize returns the virtual pixel extents covered by the screen.
func (c *Canvas) PixelSize() (w, h int) {
	return c.screen.Width() * c.cellW, c.screen.Height() * c.cellH
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Clear fills the whole screen with the background color.
func (c *Canvas) Clear(col core.Color) {
	c.screen.Clear(col)
}

// DrawRect fills every cell the rectangle touches.
func (c *Canvas) DrawRect(x, y, w, h int, col core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := floorDiv(x, c.cellW), floorDiv(y, c.cellH)
	x1, y1 := floorDiv(x+w-1, c.cellW), floorDiv(y+h-1, c.cellH)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			c.screen.Set(cx, cy, blockRune, col)
		}
	}
}

// DrawCircle fills every cell whose centre lies inside the circle.
// The cell holding the circle's centre is always filled.
func (c *Canvas) DrawCircle(px, py, r int, col core.Color) {
	if r < 0 {
		return
	}
	r2 := r * r
	x0, y0 := floorDiv(px-r, c.cellW), floorDiv(py-r, c.cellH)
	x1, y1 := floorDiv(px+r, c.cellW), floorDiv(py+r, c.cellH)
	for cy := y0; cy <= y1; cy++ {
		my := cy*c.cellH + c.cellH/2
		for cx := x0; cx <= x1; cx++ {
			mx := cx*c.cellW + c.cellW/2
			dx, dy := mx-px, my-py
			if dx*dx+dy*dy <= r2 {
				c.screen.Set(cx, cy, blockRune, col)
			}
		}
	}
	c.screen.Set(floorDiv(px, c.cellW), floorDiv(py, c.cellH), blockRune, col)
}

// DrawText writes s one rune per cell starting at the cell holding (x, y).
// Terminals have a single glyph size, so size is ignored.
func (c *Canvas) DrawText(s string, x, y int, _ core.TextSize, col core.Color) {
	c.screen.DrawText(floorDiv(x, c.cellW), floorDiv(y, c.cellH), s, col)
}

// TextSize returns the pixel extent of s, one cell per rune.
func (c *Canvas) TextSize(s string, _ core.TextSize) (w, h int) {
	return utf8.RuneCountInString(s) * c.cellW, c.cellH
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
