package blockwars

import (
	"testing"

	"github.com/vovakirdan/blockwars/internal/core"
)

const (
	testW = 800
	testH = 600
)

// newTestGame returns a running game on an 800×600 screen.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		ScreenW:  testW,
		ScreenH:  testH,
		TickRate: 60,
		Seed:     42,
	})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countEvents(events []core.Event, want core.Event) int {
	n := 0
	for _, e := range events {
		if e == want {
			n++
		}
	}
	return n
}

type drawCall struct {
	kind  string
	x, y  int
	w, h  int
	text  string
	size  core.TextSize
	color core.Color
}

// recordingSurface records draw calls. Text is 8 px per rune (16 px large).
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) Clear(c core.Color) {
	s.calls = append(s.calls, drawCall{kind: "clear", color: c})
}

func (s *recordingSurface) DrawRect(x, y, w, h int, c core.Color) {
	s.calls = append(s.calls, drawCall{kind: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (s *recordingSurface) DrawCircle(cx, cy, r int, c core.Color) {
	s.calls = append(s.calls, drawCall{kind: "circle", x: cx, y: cy, w: r, color: c})
}

func (s *recordingSurface) DrawText(text string, x, y int, size core.TextSize, c core.Color) {
	s.calls = append(s.calls, drawCall{kind: "text", x: x, y: y, text: text, size: size, color: c})
}

func (s *recordingSurface) TextSize(text string, size core.TextSize) (int, int) {
	if size == core.TextLarge {
		return len(text) * 16, 32
	}
	return len(text) * 8, 16
}
