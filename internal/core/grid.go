package core

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Grid stores a rectangular array of elements in row-major order. A wrapping
// grid resolves every address modulo its dimensions; a clamped grid resolves
// only addresses inside its bounds and treats the rest as absent.
type Grid[T any] struct {
	w, h     int
	wrapping bool
	data     []T
}

// NewGrid allocates a w*h grid of zero-valued elements. Zero-sized grids are
// legal. Negative or overflowing dimensions are a programming error and panic.
func NewGrid[T any](w, h int, wrapping bool) *Grid[T] {
	checkDims(w, h)
	return &Grid[T]{w: w, h: h, wrapping: wrapping, data: make([]T, w*h)}
}

// NewFilledGrid allocates a w*h grid with every element set to fill.
func NewFilledGrid[T any](w, h int, wrapping bool, fill T) *Grid[T] {
	g := NewGrid[T](w, h, wrapping)
	g.Fill(fill)
	return g
}

// GridFrom wraps a copy of values, which must hold exactly w*h elements in
// row-major order.
func GridFrom[T any](w, h int, wrapping bool, values []T) *Grid[T] {
	checkDims(w, h)
	if len(values) != w*h {
		panic(fmt.Sprintf("core: %d values for a %dx%d grid", len(values), w, h))
	}
	return &Grid[T]{w: w, h: h, wrapping: wrapping, data: slices.Clone(values)}
}

func checkDims(w, h int) {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("core: negative grid dimensions %dx%d", w, h))
	}
	if h != 0 && w > math.MaxInt/h {
		panic(fmt.Sprintf("core: grid dimensions %dx%d overflow", w, h))
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.w, H: g.h} }

// Wrapping reports whether out-of-range addresses wrap around.
func (g *Grid[T]) Wrapping() bool { return g.wrapping }

// SetWrapping changes the addressing mode.
func (g *Grid[T]) SetWrapping(wrapping bool) { g.wrapping = wrapping }

// Cells exposes the backing slice so callers can read/write values directly.
// Its length is always Width()*Height().
func (g *Grid[T]) Cells() []T { return g.data }

// Resolve returns the linear index for (x, y). On a wrapping grid every
// address resolves unless the grid is empty; on a clamped grid only addresses
// inside the bounds resolve.
func (g *Grid[T]) Resolve(x, y int) (int, bool) {
	if g.w == 0 || g.h == 0 {
		return 0, false
	}
	if g.wrapping {
		x, y = g.Wrap(x, y)
		return y*g.w + x, true
	}
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0, false
	}
	return y*g.w + x, true
}

// Wrap applies toroidal wrapping to the provided coordinates. The grid must
// not be empty.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Get returns the element at (x, y) and whether the address resolved.
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if i, ok := g.Resolve(x, y); ok {
		return g.data[i], true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the element at (x, y), or nil when the address does
// not resolve.
func (g *Grid[T]) Ptr(x, y int) *T {
	if i, ok := g.Resolve(x, y); ok {
		return &g.data[i]
	}
	return nil
}

// Set stores v at (x, y). Unresolvable addresses are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if i, ok := g.Resolve(x, y); ok {
		g.data[i] = v
	}
}

// Apply replaces the element at (x, y) with f(current). Unresolvable
// addresses are ignored.
func (g *Grid[T]) Apply(x, y int, f func(T) T) {
	if i, ok := g.Resolve(x, y); ok {
		g.data[i] = f(g.data[i])
	}
}

// ApplyAll replaces every element with f(x, y, current), in row-major order.
func (g *Grid[T]) ApplyAll(f func(x, y int, v T) T) {
	for y := range g.h {
		row := g.data[y*g.w : (y+1)*g.w]
		for x := range row {
			row[x] = f(x, y, row[x])
		}
	}
}

// Fill sets every element to v.
func (g *Grid[T]) Fill(v T) {
	if len(g.data) == 0 {
		return
	}
	g.data[0] = v
	for filled := 1; filled < len(g.data); filled *= 2 {
		copy(g.data[filled:], g.data[:filled])
	}
}

// Clone returns a deep copy of the grid that shares no storage with g.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{w: g.w, h: g.h, wrapping: g.wrapping, data: slices.Clone(g.data)}
}

// CopyFrom makes g a deep copy of src, reusing g's storage when it is large
// enough.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	n := len(src.data)
	if cap(g.data) < n {
		g.data = make([]T, n)
	} else {
		g.data = g.data[:n]
	}
	copy(g.data, src.data)
	g.w, g.h, g.wrapping = src.w, src.h, src.wrapping
}

// Values yields every element in row-major order.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate yields (position, element) pairs in row-major order: y outer,
// x inner.
func (g *Grid[T]) Enumerate() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for y := range g.h {
			for x := range g.w {
				if !yield(Point{X: x, Y: y}, g.data[y*g.w+x]) {
					return
				}
			}
		}
	}
}

// EnumerateMut is Enumerate with pointers into the grid's storage. The grid
// must not be resized or transformed while the sequence is being consumed.
func (g *Grid[T]) EnumerateMut() iter.Seq2[Point, *T] {
	return func(yield func(Point, *T) bool) {
		for y := range g.h {
			for x := range g.w {
				if !yield(Point{X: x, Y: y}, &g.data[y*g.w+x]) {
					return
				}
			}
		}
	}
}

// Clamp yields the elements of the w*h rectangle at (x, y) in row-major
// order, skipping any cell outside the grid's bounds. It may yield fewer than
// w*h elements and never wraps, whatever the addressing mode.
func (g *Grid[T]) Clamp(x, y, w, h int) iter.Seq[T] {
	x0, y0, x1, y1 := g.intersect(x, y, w, h)
	return func(yield func(T) bool) {
		for row := y0; row < y1; row++ {
			for _, v := range g.data[row*g.w+x0 : row*g.w+x1] {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// ClampWrap yields exactly w*h elements of the rectangle at (x, y), cycling
// through the grid where the rectangle extends past its edges. An empty grid
// yields nothing.
func (g *Grid[T]) ClampWrap(x, y, w, h int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if g.w == 0 || g.h == 0 {
			return
		}
		for dy := range max(h, 0) {
			for dx := range max(w, 0) {
				cx, cy := g.Wrap(x+dx, y+dy)
				if !yield(g.data[cy*g.w+cx]) {
					return
				}
			}
		}
	}
}

// ClampToGrid copies the clamped rectangle at (x, y) into a new, independent
// grid sized to the part of the rectangle that lies inside g.
func (g *Grid[T]) ClampToGrid(x, y, w, h int) *Grid[T] {
	x0, y0, x1, y1 := g.intersect(x, y, w, h)
	out := NewGrid[T](x1-x0, y1-y0, g.wrapping)
	for row := y0; row < y1; row++ {
		copy(out.data[(row-y0)*out.w:], g.data[row*g.w+x0:row*g.w+x1])
	}
	return out
}

// intersect clips the rectangle to the grid bounds. The result is empty
// (x0 == x1 or y0 == y1) when they do not overlap.
func (g *Grid[T]) intersect(x, y, w, h int) (x0, y0, x1, y1 int) {
	x0, y0 = max(x, 0), max(y, 0)
	x1, y1 = min(x+max(w, 0), g.w), min(y+max(h, 0), g.h)
	if x1 < x0 || y1 < y0 {
		return 0, 0, 0, 0
	}
	return x0, y0, x1, y1
}

// Map builds a new grid of the same shape whose elements are f applied to the
// elements of g.
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	out := NewGrid[U](g.w, g.h, g.wrapping)
	for i, v := range g.data {
		out.data[i] = f(v)
	}
	return out
}
