// Package graphics holds the displayable element types: packed colors,
// possibly transparent pixels, tiles built from them and tile maps that stamp
// tiles into a color buffer.
package graphics

import "image/color"

// Color is a packed 0x00RRGGBB value, the form display surfaces consume.
type Color uint32

// RGB packs the three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts any image/color value, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// Distance returns the sum of absolute channel differences between c and o.
func (c Color) Distance(o Color) int {
	return absDiff(c.R(), o.R()) + absDiff(c.G(), o.G()) + absDiff(c.B(), o.B())
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color { return FromColor(c) })

// Common colors used by the demo scenes.
const (
	Black Color = 0x000000
	White Color = 0xffffff
)
