// Package scene assembles tile maps and entities into playable scenes and
// keeps a registry of named scene factories for the front-ends.
package scene

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"tilegrid/internal/anim"
	"tilegrid/internal/core"
	"tilegrid/internal/entity"
	"tilegrid/internal/graphics"
)

// ErrUnknownScene is returned by New for unregistered names.
var ErrUnknownScene = errors.New("scene: unknown scene")

// Config holds the parameters shared by every scene factory.
type Config struct {
	Width   int // map width in tiles
	Height  int // map height in tiles
	Seed    int64
	Workers int // 0 disables the parallel background pass
	Wrap    bool
	// Step is the animation time that passes per Tick. Zero animates on
	// the wall clock.
	Step time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 16, Height: 12, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	if v, ok := cfg["step"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.Step = parsed
		}
	}
	return c
}

// Factory constructs a Scene using an optional configuration map.
type Factory func(cfg map[string]string) (*Scene, error)

var factories = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	factories[name] = f
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(factories))
}

// New builds the scene registered under name.
func New(name string, cfg map[string]string) (*Scene, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
	}
	return f(cfg)
}

// TickClock is a clock that only moves when Advance is called. Scenes
// driven by it animate by tick count instead of elapsed wall time.
type TickClock struct {
	now  time.Time
	step time.Duration
}

// NewTickClock returns a clock advancing by step per Advance.
func NewTickClock(step time.Duration) *TickClock {
	return &TickClock{now: time.Unix(0, 0), step: step}
}

// Now returns the clock's current time.
func (c *TickClock) Now() time.Time { return c.now }

// Advance moves the clock forward by one step.
func (c *TickClock) Advance() { c.now = c.now.Add(c.step) }

// Decorator paints non-entity decoration over the rendered map. It is
// called for every background pixel and must be safe for concurrent use.
type Decorator func(x, y int, c graphics.Color) graphics.Color

// Scene is a tile map plus the entities walking on it.
type Scene struct {
	Name     string
	Config   Config
	Map      *graphics.TileMap
	Entities []entity.Entity
	// Hero is the entity moved by input, if any.
	Hero *entity.Animated

	// Ground is painted under cells without a tile and transparent pixels.
	Ground   graphics.Color
	Decorate Decorator
	Workers  int
	// Clock, when set, is advanced at the start of every Tick.
	Clock *TickClock
	// OnTick runs after the animations on every Tick.
	OnTick []func(*Scene)

	animated   []*anim.Player
	actors     []*entity.Animated
	background *core.Grid[graphics.Color]
	frame      *core.Grid[graphics.Color]
	dirty      bool
}

// NewScene wraps a tile map. Call AddAnimatedTile for every animation placed
// in the map so Tick keeps it running.
func NewScene(name string, m *graphics.TileMap) *Scene {
	size := m.Buffer().Size()
	return &Scene{
		Name:       name,
		Map:        m,
		background: core.NewGrid[graphics.Color](size.W, size.H, m.Buffer().Wrapping()),
		frame:      core.NewGrid[graphics.Color](size.W, size.H, m.Buffer().Wrapping()),
		dirty:      true,
	}
}

// AddAnimatedTile registers an animation used by map cells.
func (s *Scene) AddAnimatedTile(p *anim.Player) {
	if !slices.Contains(s.animated, p) {
		s.animated = append(s.animated, p)
	}
}

// AddEntity adds e to the scene. Animated entities are advanced by Tick.
func (s *Scene) AddEntity(e entity.Entity) {
	s.Entities = append(s.Entities, e)
	if a, ok := e.(*entity.Animated); ok {
		s.actors = append(s.actors, a)
	}
}

// Size returns the frame dimensions in pixels.
func (s *Scene) Size() core.Size { return s.frame.Size() }

// Invalidate forces the background to be rebuilt before the next frame.
func (s *Scene) Invalidate() { s.dirty = true }

// Tick advances every animation once. Map animations that changed frame
// cause the background to be rebuilt.
func (s *Scene) Tick() {
	if s.Clock != nil {
		s.Clock.Advance()
	}
	for _, p := range s.animated {
		if p.Update() {
			s.dirty = true
		}
	}
	for _, a := range s.actors {
		a.Update()
	}
	for _, f := range s.OnTick {
		f(s)
	}
}

// Move steps the hero n pixels towards dir and turns it to face dir. On a
// wrapping map the hero's position wraps.
func (s *Scene) Move(dir core.Rotation, n int) {
	if s.Hero == nil {
		return
	}
	s.Hero.Step(dir, n)
	if s.frame.Wrapping() {
		s.Hero.X, s.Hero.Y = s.frame.Wrap(s.Hero.X, s.Hero.Y)
	}
}

// Background returns the static layer entities are drawn over, rebuilding
// it first if needed.
func (s *Scene) Background() *core.Grid[graphics.Color] {
	if s.dirty {
		s.rebuild()
	}
	return s.background
}

// Frame composes the entities over the background. The returned grid is
// reused by the next call.
func (s *Scene) Frame() *core.Grid[graphics.Color] {
	entity.ComposeInto(s.frame, s.Background(), s.Entities)
	return s.frame
}

func (s *Scene) rebuild() {
	s.Map.Fill(s.Ground)
	s.Map.UpdateBuffer()
	if s.Workers > 0 {
		s.background.OverlayParallel(s.Map.Buffer(), 0, 0, s.Workers)
	} else {
		s.background.CopyFrom(s.Map.Buffer())
	}
	if s.Decorate != nil {
		d := s.Decorate
		if s.Workers > 0 {
			s.background.ApplyParallel(s.Workers, d)
		} else {
			s.background.ApplyAll(d)
		}
	}
	s.dirty = false
}
