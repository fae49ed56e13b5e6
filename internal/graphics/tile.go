package graphics

import (
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"

	"tilegrid/internal/core"
)

// Tile is anything that can yield a grid of pixels to draw. Callers must
// treat the returned grid as read-only.
type Tile interface {
	Grid() *core.Grid[Pixel]
	Pixels() iter.Seq[Pixel]
}

// SimpleTile is an immutable tile backed by a single pixel grid.
type SimpleTile struct {
	grid *core.Grid[Pixel]
}

// NewTile wraps a copy of g. Later changes to g do not affect the tile.
func NewTile(g *core.Grid[Pixel]) *SimpleTile {
	c := g.Clone()
	c.SetWrapping(false)
	return &SimpleTile{grid: c}
}

// SolidTile returns a w*h tile with every pixel set to c.
func SolidTile(w, h int, c Color) *SimpleTile {
	return &SimpleTile{grid: core.NewFilledGrid(w, h, false, Opaque(c))}
}

// OpaqueTile turns a color grid into a tile whose pixels are all drawn.
func OpaqueTile(g *core.Grid[Color]) *SimpleTile {
	t := core.Map(g, Opaque)
	t.SetWrapping(false)
	return &SimpleTile{grid: t}
}

// Grid returns the tile's pixels.
func (t *SimpleTile) Grid() *core.Grid[Pixel] { return t.grid }

// Pixels yields the tile's pixels in row-major order.
func (t *SimpleTile) Pixels() iter.Seq[Pixel] { return t.grid.Values() }

// Size returns the tile dimensions.
func (t *SimpleTile) Size() core.Size { return t.grid.Size() }

// Flatten resolves a tile into colors, painting absent pixels with bg.
func Flatten(t Tile, bg Color) *core.Grid[Color] {
	return core.Map(t.Grid(), func(p Pixel) Color { return p.Or(bg) })
}

// Palette maps the runes of text art to colors. Runes missing from the
// palette are an error, except '.' and ' ' which are transparent unless the
// palette maps them explicitly.
type Palette map[rune]Color

var (
	// ErrRaggedTile is returned when text art rows differ in length.
	ErrRaggedTile = errors.New("graphics: tile rows differ in length")
	// ErrUnknownRune is returned when text art uses a rune the palette lacks.
	ErrUnknownRune = errors.New("graphics: rune not in palette")
)

// ParseTile builds a tile from rows of text art, one rune per pixel.
func ParseTile(rows []string, p Palette) (*SimpleTile, error) {
	w := 0
	if len(rows) > 0 {
		w = utf8.RuneCountInString(rows[0])
	}
	g := core.NewGrid[Pixel](w, len(rows), false)
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			return nil, fmt.Errorf("row %d has %d pixels, want %d: %w", y, n, w, ErrRaggedTile)
		}
		x := 0
		for _, r := range row {
			c, ok := p[r]
			switch {
			case ok:
				g.Set(x, y, Opaque(c))
			case r == '.' || r == ' ':
			default:
				return nil, fmt.Errorf("row %d column %d %q: %w", y, x, r, ErrUnknownRune)
			}
			x++
		}
	}
	return &SimpleTile{grid: g}, nil
}

// MustParseTile is ParseTile for static art known to be valid. It panics on
// error.
func MustParseTile(rows []string, p Palette) *SimpleTile {
	t, err := ParseTile(rows, p)
	if err != nil {
		panic(err)
	}
	return t
}
