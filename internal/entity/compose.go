package entity

import (
	"cmp"
	"slices"

	"tilegrid/internal/core"
	"tilegrid/internal/graphics"
)

// Compose returns a new frame: a deep copy of background with every entity
// drawn over it. The background is never modified.
func Compose(background *core.Grid[graphics.Color], entities []Entity) *core.Grid[graphics.Color] {
	frame := background.Clone()
	drawAll(frame, entities)
	return frame
}

// ComposeInto is Compose writing into frame, reusing its storage. frame must
// not alias background.
func ComposeInto(frame, background *core.Grid[graphics.Color], entities []Entity) {
	frame.CopyFrom(background)
	drawAll(frame, entities)
}

// Sorted returns the entities in drawing order: ascending Order, with equal
// orders kept in their original relative order. The input is not modified.
func Sorted(entities []Entity) []Entity {
	out := slices.Clone(entities)
	slices.SortStableFunc(out, func(a, b Entity) int {
		return cmp.Compare(a.Order(), b.Order())
	})
	return out
}

func drawAll(frame *core.Grid[graphics.Color], entities []Entity) {
	for _, e := range Sorted(entities) {
		draw(frame, e)
	}
}

// draw overlays e's tile, rotated to its facing, at its position. Cells that
// fall outside the frame are clipped.
func draw(frame *core.Grid[graphics.Color], e Entity) {
	t := e.Tile()
	if t == nil {
		return
	}
	seq, size := t.Grid().IterRotate(e.Rotation())
	pos := e.Position()
	if !frame.Wrapping() && !overlaps(pos, size, frame.Size()) {
		core.Logger().Debug("entity outside frame", "x", pos.X, "y", pos.Y, "order", e.Order())
		return
	}
	core.TransparentOverlaySeq(frame, seq, pos.X, pos.Y, size.W, size.H)
}

func overlaps(p core.Point, s, frame core.Size) bool {
	return p.X < frame.W && p.Y < frame.H && p.X+s.W > 0 && p.Y+s.H > 0
}
