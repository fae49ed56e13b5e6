package graphics

// Pixel is either an opaque Color or absent. The zero value is absent, so a
// freshly allocated pixel grid is fully transparent.
type Pixel struct {
	color  Color
	opaque bool
}

// Opaque returns a pixel drawing c.
func Opaque(c Color) Pixel { return Pixel{color: c, opaque: true} }

// Transparent returns an absent pixel.
func Transparent() Pixel { return Pixel{} }

// Value returns the pixel's color and whether it is drawn.
func (p Pixel) Value() (Color, bool) { return p.color, p.opaque }

// IsOpaque reports whether the pixel is drawn.
func (p Pixel) IsOpaque() bool { return p.opaque }

// Or returns the pixel's color, or bg when it is absent.
func (p Pixel) Or(bg Color) Color {
	if p.opaque {
		return p.color
	}
	return bg
}
