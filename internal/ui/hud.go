//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"tilegrid/internal/scene"
)

const (
	panelPadding = 8
	lineHeight   = 16
	groupGap     = 6
)

// HUD renders the parameter panel to the right of the scene view.
type HUD struct {
	scene      *scene.Scene
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   scene.ParameterSnapshot
	title      string
	hidden     bool
}

// NewHUD constructs a HUD for the provided scene and panel width.
func NewHUD(sc *scene.Scene, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{scene: sc, width: width, title: buildTitle(sc)}
}

// Width returns the panel width, zero while hidden.
func (h *HUD) Width() int {
	if h == nil || h.hidden {
		return 0
	}
	return h.width
}

// SetScene points the HUD at a new scene, e.g. after a reset.
func (h *HUD) SetScene(sc *scene.Scene) {
	h.scene = sc
	h.title = buildTitle(sc)
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.hidden = !h.hidden }

// Update refreshes the cached parameter snapshot from the scene.
func (h *HUD) Update() {
	if h == nil || h.scene == nil {
		return
	}
	h.snapshot = h.scene.Parameters()
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h.Width() <= 0 || h.scene == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.scene.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawParameters()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, group := range h.snapshot.Groups {
		y += lineHeight + groupGap
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 140, G: 170, B: 220, A: 255})
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 255, G: 220, B: 120, A: 255})
		}
	}
}

func buildTitle(sc *scene.Scene) string {
	if sc == nil || sc.Name == "" {
		return "Scene"
	}
	return fmt.Sprintf("%s%s", strings.ToUpper(sc.Name[:1]), sc.Name[1:])
}
