// Package anim selects which tile an animated tile or entity shows, based on
// reels of frame indices and per-frame durations.
package anim

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"tilegrid/internal/core"
	"tilegrid/internal/graphics"
)

var (
	// ErrEmptyReel is returned for a reel without frames.
	ErrEmptyReel = errors.New("anim: reel has no frames")
	// ErrNoReels is returned for a player without reels.
	ErrNoReels = errors.New("anim: player has no reels")
	// ErrFrameIndex is returned when a reel refers to a missing frame.
	ErrFrameIndex = errors.New("anim: frame index out of range")
)

// Frame shows the tile at Index for Duration.
type Frame struct {
	Index    int
	Duration time.Duration
}

// Reel is a looping sequence of frames.
type Reel struct {
	frames []Frame
	pos    int
}

// NewReel creates a reel that starts at its first frame.
func NewReel(frames ...Frame) (*Reel, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyReel
	}
	return &Reel{frames: frames}, nil
}

// Current returns the frame being shown.
func (r *Reel) Current() Frame { return r.frames[r.pos] }

// Next advances to the following frame, looping after the last one.
func (r *Reel) Next() Frame {
	r.pos = (r.pos + 1) % len(r.frames)
	return r.frames[r.pos]
}

// Rewind returns to the first frame.
func (r *Reel) Rewind() { r.pos = 0 }

// Player plays one of several reels over a shared set of tiles. A Player is
// itself a graphics.Tile showing its current frame, so it can be placed in a
// tile map or carried by an entity.
type Player struct {
	frames []graphics.Tile
	reels  []*Reel
	index  int
	timer  *core.Timer
}

// NewPlayer creates a player showing the first reel.
func NewPlayer(frames []graphics.Tile, reels []*Reel) (*Player, error) {
	return NewPlayerWithClock(frames, reels, time.Now)
}

// NewPlayerWithClock is NewPlayer reading time from now.
func NewPlayerWithClock(frames []graphics.Tile, reels []*Reel, now core.Clock) (*Player, error) {
	if len(reels) == 0 {
		return nil, ErrNoReels
	}
	for i, r := range reels {
		if r == nil {
			return nil, fmt.Errorf("reel %d: %w", i, ErrEmptyReel)
		}
		for _, f := range r.frames {
			if f.Index < 0 || f.Index >= len(frames) || frames[f.Index] == nil {
				return nil, fmt.Errorf("reel %d frame %d of %d: %w", i, f.Index, len(frames), ErrFrameIndex)
			}
		}
	}
	p := &Player{frames: frames, reels: reels}
	p.timer = core.NewTimerWithClock(reels[0].Current().Duration, now)
	return p, nil
}

// SetReel starts reel i from its first frame. It reports false and keeps the
// current reel when i is out of range.
func (p *Player) SetReel(i int) bool {
	if i < 0 || i >= len(p.reels) {
		return false
	}
	p.index = i
	r := p.reels[i]
	r.Rewind()
	p.timer.Duration = r.Current().Duration
	p.timer.Reset()
	return true
}

// Reel returns the index of the reel being played.
func (p *Player) Reel() int { return p.index }

// Update advances to the next frame once the current one has been shown for
// its duration. It reports whether the frame changed.
func (p *Player) Update() bool {
	p.timer.Update()
	if !p.timer.Finished() {
		return false
	}
	next := p.reels[p.index].Next()
	p.timer.Duration = next.Duration
	p.timer.Reset()
	return true
}

// Frame returns the tile currently shown.
func (p *Player) Frame() graphics.Tile {
	return p.frames[p.reels[p.index].Current().Index]
}

// Grid returns the current frame's pixels.
func (p *Player) Grid() *core.Grid[graphics.Pixel] { return p.Frame().Grid() }

// Pixels yields the current frame's pixels.
func (p *Player) Pixels() iter.Seq[graphics.Pixel] { return p.Frame().Pixels() }
