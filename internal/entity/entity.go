// Package entity composites positioned, ordered tiles over a background to
// produce display frames.
package entity

import (
	"tilegrid/internal/anim"
	"tilegrid/internal/core"
	"tilegrid/internal/graphics"
)

// Entity is anything drawn above the tile map. Entities with a lower Order
// are drawn first, so they end up underneath.
type Entity interface {
	Position() core.Point
	Rotation() core.Rotation
	Tile() graphics.Tile
	Order() uint
}

// Sprite is an entity showing a single tile.
type Sprite struct {
	core.Transform
	Image graphics.Tile
	Layer uint
}

// NewSprite places img at (x, y) facing up.
func NewSprite(x, y int, img graphics.Tile, layer uint) *Sprite {
	return &Sprite{Transform: core.Transform{Point: core.Point{X: x, Y: y}}, Image: img, Layer: layer}
}

// Position returns the sprite's top-left corner.
func (s *Sprite) Position() core.Point { return s.Point }

// Rotation returns the direction the sprite faces.
func (s *Sprite) Rotation() core.Rotation { return s.Transform.Rotation }

// Tile returns the sprite's image.
func (s *Sprite) Tile() graphics.Tile { return s.Image }

// Order returns the sprite's layer.
func (s *Sprite) Order() uint { return s.Layer }

// Animated is an entity whose tile is chosen by an animation player.
type Animated struct {
	core.Transform
	Player *anim.Player
	Layer  uint
}

// NewAnimated places the player's animation at (x, y) facing up.
func NewAnimated(x, y int, p *anim.Player, layer uint) *Animated {
	return &Animated{Transform: core.Transform{Point: core.Point{X: x, Y: y}}, Player: p, Layer: layer}
}

// Position returns the entity's top-left corner.
func (a *Animated) Position() core.Point { return a.Point }

// Rotation returns the direction the entity faces.
func (a *Animated) Rotation() core.Rotation { return a.Transform.Rotation }

// Tile returns the animation's current frame.
func (a *Animated) Tile() graphics.Tile { return a.Player.Frame() }

// Order returns the entity's layer.
func (a *Animated) Order() uint { return a.Layer }

// Update advances the animation. It reports whether the frame changed.
func (a *Animated) Update() bool { return a.Player.Update() }
