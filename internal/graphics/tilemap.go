package graphics

import "tilegrid/internal/core"

// TileMap places tiles on a grid of fixed-size cells and keeps a color
// buffer of the rendered map. The buffer is always tileW*W by tileH*H.
type TileMap struct {
	tiles  *core.Grid[Tile]
	tileW  int
	tileH  int
	buffer *core.Grid[Color]
}

// NewTileMap creates an empty w*h map of tileW*tileH cells. The buffer wraps
// when the map does.
func NewTileMap(w, h int, wrapping bool, tileW, tileH int) *TileMap {
	return &TileMap{
		tiles:  core.NewGrid[Tile](w, h, wrapping),
		tileW:  tileW,
		tileH:  tileH,
		buffer: core.NewGrid[Color](w*tileW, h*tileH, wrapping),
	}
}

// Tiles exposes the cell grid. A nil cell holds no tile.
func (m *TileMap) Tiles() *core.Grid[Tile] { return m.tiles }

// Tile returns the tile at cell (x, y), if any.
func (m *TileMap) Tile(x, y int) (Tile, bool) {
	t, ok := m.tiles.Get(x, y)
	return t, ok && t != nil
}

// SetTile places t at cell (x, y). A nil t clears the cell. The buffer is
// not touched until UpdateBuffer.
func (m *TileMap) SetTile(x, y int, t Tile) { m.tiles.Set(x, y, t) }

// TileSize returns the pixel size of one cell.
func (m *TileMap) TileSize() core.Size { return core.Size{W: m.tileW, H: m.tileH} }

// Buffer returns the rendered map.
func (m *TileMap) Buffer() *core.Grid[Color] { return m.buffer }

// Fill paints the whole buffer with c. Cells without a tile keep this color
// across UpdateBuffer calls.
func (m *TileMap) Fill(c Color) { m.buffer.Fill(c) }

// UpdateBuffer stamps every placed tile into the buffer at its cell. Absent
// pixels and empty cells leave the buffer as it was. Tiles larger than a
// cell are cropped to it.
func (m *TileMap) UpdateBuffer() {
	stamped := 0
	for p, t := range m.tiles.Enumerate() {
		if t == nil {
			continue
		}
		x, y := p.X*m.tileW, p.Y*m.tileH
		g := t.Grid()
		if g.Width() == m.tileW && g.Height() == m.tileH {
			core.TransparentOverlaySeq(m.buffer, t.Pixels(), x, y, m.tileW, m.tileH)
		} else {
			core.TransparentOverlay(m.buffer, g.ClampToGrid(0, 0, m.tileW, m.tileH), x, y)
		}
		stamped++
	}
	core.Logger().Debug("tile map buffer rebuilt", "tiles", stamped,
		"w", m.buffer.Width(), "h", m.buffer.Height())
}
