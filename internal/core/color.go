package core

// Color names an entry in the shared game palette.
// Front ends translate it into terminal styles or RGBA values.
type Color uint8

// Palette entries used by Block Wars.
const (
	ColorDefault Color = iota
	ColorDarkGray
	ColorBlue
	ColorRed
	ColorWhite
	ColorOrange
)

// rgba holds the 8-bit channel values of every palette entry.
var rgba = [...][4]uint8{
	ColorDefault:  {0, 0, 0, 255},
	ColorDarkGray: {50, 50, 50, 255},
	ColorBlue:     {0, 0, 255, 255},
	ColorRed:      {255, 0, 0, 255},
	ColorWhite:    {255, 255, 255, 255},
	ColorOrange:   {255, 165, 0, 255},
}

// RGBA returns the 8-bit channels of the color.
// Unknown colors map to opaque black.
func (c Color) RGBA() (r, g, b, a uint8) {
	if int(c) >= len(rgba) {
		return 0, 0, 0, 255
	}
	v := rgba[c]
	return v[0], v[1], v[2], v[3]
}
