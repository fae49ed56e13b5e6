//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tilegrid/internal/core"
	"tilegrid/internal/graphics"
)

// GridPainter keeps a single RGBA image in sync with a color frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for frames of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads frame into the painter image and draws it scaled onto dst.
// Frames of the wrong size are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, frame *core.Grid[graphics.Color], scale int) {
	if frame.Width() != gp.w || frame.Height() != gp.h {
		core.Logger().Debug("frame size mismatch", "w", frame.Width(), "h", frame.Height())
		return
	}
	fillColorRGBA(gp.buf, frame.Cells())
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
