//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilegrid/internal/scene"
)

// Overlay draws optional debugging visuals on top of the scene.
type Overlay struct {
	scene     *scene.Scene
	scale     int
	showGrid  bool
	showBoxes bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sc *scene.Scene, scale int) *Overlay {
	o := &Overlay{scene: sc, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetScene points the overlay at a new scene.
func (o *Overlay) SetScene(sc *scene.Scene) { o.scene = sc }

// Update toggles the layers: 1 for tile cell borders, 2 for entity bounds.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBoxes = !o.showBoxes
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.scene == nil {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	size := o.scene.Size()
	if o.showGrid {
		cell := o.scene.Map.TileSize()
		gridColor := color.RGBA{R: 255, G: 255, B: 255, A: 48}
		for x := 0; x < size.W; x += cell.W {
			o.rect(screen, x*scale, 0, 1, size.H*scale, gridColor)
		}
		for y := 0; y < size.H; y += cell.H {
			o.rect(screen, 0, y*scale, size.W*scale, 1, gridColor)
		}
	}
	if o.showBoxes {
		boxColor := color.RGBA{R: 255, G: 64, B: 64, A: 160}
		for _, e := range o.scene.Entities {
			t := e.Tile()
			if t == nil {
				continue
			}
			_, s := t.Grid().IterRotate(e.Rotation())
			p := e.Position()
			x, y, w, h := p.X*scale, p.Y*scale, s.W*scale, s.H*scale
			o.rect(screen, x, y, w, 1, boxColor)
			o.rect(screen, x, y+h-1, w, 1, boxColor)
			o.rect(screen, x, y, 1, h, boxColor)
			o.rect(screen, x+w-1, y, 1, h, boxColor)
		}
	}
}

func (o *Overlay) rect(dst *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
