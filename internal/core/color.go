package core

import "fmt"

// Color is a packed 24-bit RGB value (0xRRGGBB).
// Zero is reserved for "background" in frames and snapshots.
type Color uint32

// Colors shared by both games.
const (
	ColorBackground Color = 0
	ColorWhite      Color = 0xFFFFFF
)

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Scale multiplies every channel by level/255.
func (c Color) Scale(level uint8) Color {
	l := uint32(level)
	return RGB(
		uint8(uint32(c.R())*l/255),
		uint8(uint32(c.G())*l/255),
		uint8(uint32(c.B())*l/255),
	)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// Wheel maps a position 0-255 onto a red -> green -> blue -> red hue circle.
func Wheel(pos uint8) Color {
	pos = 255 - pos
	switch {
	case pos < 85:
		return RGB(255-pos*3, 0, pos*3)
	case pos < 170:
		pos -= 85
		return RGB(0, pos*3, 255-pos*3)
	default:
		pos -= 170
		return RGB(pos*3, 255-pos*3, 0)
	}
}
