//go:build !ebiten

package ui

import "tilegrid/internal/scene"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*scene.Scene, int) *Overlay { return &Overlay{} }

// SetScene is a no-op in headless builds.
func (o *Overlay) SetScene(*scene.Scene) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
