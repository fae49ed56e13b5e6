package core

import "iter"

// Overlay copies src onto g with its top-left corner at (x, y). Writes follow
// Set semantics: cells outside a clamped grid are dropped, cells on a
// wrapping grid wrap.
func (g *Grid[T]) Overlay(src *Grid[T], x, y int) {
	for p, v := range src.Enumerate() {
		g.Set(x+p.X, y+p.Y, v)
	}
}

// OverlaySeq copies up to w*h elements of seq onto g, laying them out in rows
// of w starting at (x, y). Each write is clipped on its own, so a sequence
// running past the right edge never shears into the next row.
func (g *Grid[T]) OverlaySeq(seq iter.Seq[T], x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	i, n := 0, w*h
	for v := range seq {
		if i >= n {
			return
		}
		g.Set(x+i%w, y+i/w, v)
		i++
	}
}

// TransparentOverlay copies the present elements of src onto g at (x, y).
// Absent elements leave the destination untouched.
func TransparentOverlay[T any, M Maybe[T]](g *Grid[T], src *Grid[M], x, y int) {
	for p, m := range src.Enumerate() {
		if v, ok := m.Value(); ok {
			g.Set(x+p.X, y+p.Y, v)
		}
	}
}

// TransparentOverlaySeq is OverlaySeq for sequences of possibly absent
// elements; absent elements leave the destination untouched.
func TransparentOverlaySeq[T any, M Maybe[T]](g *Grid[T], seq iter.Seq[M], x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	i, n := 0, w*h
	for m := range seq {
		if i >= n {
			return
		}
		if v, ok := m.Value(); ok {
			g.Set(x+i%w, y+i/w, v)
		}
		i++
	}
}
