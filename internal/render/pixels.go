package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"tilegrid/internal/core"
	"tilegrid/internal/graphics"
)

// fillColorRGBA converts packed colors into opaque RGBA pixels in buf.
func fillColorRGBA(buf []byte, cells []graphics.Color) {
	for i, c := range cells {
		base := i * 4
		buf[base+0] = c.R()
		buf[base+1] = c.G()
		buf[base+2] = c.B()
		buf[base+3] = 0xff
	}
}

// Image converts a frame into an RGBA image of the same size.
func Image(frame *core.Grid[graphics.Color]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width(), frame.Height()))
	fillColorRGBA(img.Pix, frame.Cells())
	return img
}

// Snapshot renders frame enlarged by scale using nearest-neighbour sampling.
// A scale below one is treated as one.
func Snapshot(frame *core.Grid[graphics.Color], scale int) *image.RGBA {
	src := Image(frame)
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, frame.Width()*scale, frame.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes a scaled snapshot of frame to w.
func WritePNG(w io.Writer, frame *core.Grid[graphics.Color], scale int) error {
	if err := png.Encode(w, Snapshot(frame, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
