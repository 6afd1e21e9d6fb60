package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/blockwars/internal/core"
)

// Glyph scale factors applied to the 7x13 bitmap font.
const (
	normalTextScale = 2
	largeTextScale  = 5
)

// Surface draws onto an ebiten image.
type Surface struct {
	dst  *ebiten.Image
	face *text.GoXFace
}

var _ core.Surface = (*Surface)(nil)

// NewSurface creates a surface with the HUD font. Set a target before drawing.
func NewSurface() *Surface {
	return &Surface{face: text.NewGoXFace(basicfont.Face7x13)}
}

// SetTarget selects the image subsequent calls draw on.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Clear(c core.Color) {
	s.dst.Fill(toRGBA(c))
}

func (s *Surface) DrawRect(x, y, w, h int, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), toRGBA(c), false)
}

func (s *Surface) DrawCircle(cx, cy, r int, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), toRGBA(c), true)
}

func (s *Surface) DrawText(str string, x, y int, size core.TextSize, c core.Color) {
	scale := textScale(size)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(toRGBA(c))
	text.Draw(s.dst, str, s.face, op)
}

func (s *Surface) TextSize(str string, size core.TextSize) (w, h int) {
	mw, mh := text.Measure(str, s.face, 0)
	scale := textScale(size)
	return int(mw * scale), int(mh * scale)
}

func textScale(size core.TextSize) float64 {
	if size == core.TextLarge {
		return largeTextScale
	}
	return normalTextScale
}

func toRGBA(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}
