package core

import (
	"iter"
	"slices"
)

// sourceFunc maps an output position of a transform to the linear index of
// the input element that lands there.
type sourceFunc func(x, y int) int

// remap yields the elements of g rearranged by src over an ow*oh output.
func (g *Grid[T]) remap(ow, oh int, src sourceFunc) iter.Seq[T] {
	return func(yield func(T) bool) {
		for y := range oh {
			for x := range ow {
				if !yield(g.data[src(x, y)]) {
					return
				}
			}
		}
	}
}

// rebuild replaces g's storage with the rearranged elements.
func (g *Grid[T]) rebuild(ow, oh int, src sourceFunc) {
	out := make([]T, 0, len(g.data))
	for v := range g.remap(ow, oh, src) {
		out = append(out, v)
	}
	g.w, g.h, g.data = ow, oh, out
}

func (g *Grid[T]) verticalSource(x, y int) int   { return (g.h-1-y)*g.w + x }
func (g *Grid[T]) horizontalSource(x, y int) int { return y*g.w + g.w - 1 - x }

// out(x, y) = in(y, x)
func (g *Grid[T]) diagonalSource(x, y int) int { return x*g.w + y }

// out(x, y) = in(W-1-y, H-1-x)
func (g *Grid[T]) negativeDiagonalSource(x, y int) int { return (g.h-1-x)*g.w + g.w - 1 - y }

// out(x, y) = in(W-1-y, x)
func (g *Grid[T]) rightSource(x, y int) int { return x*g.w + g.w - 1 - y }

// out(x, y) = in(y, H-1-x)
func (g *Grid[T]) leftSource(x, y int) int { return (g.h-1-x)*g.w + y }

func (g *Grid[T]) halfTurnSource(x, y int) int { return len(g.data) - 1 - (y*g.w + x) }

// ReflectVertical reverses the order of rows.
func (g *Grid[T]) ReflectVertical() {
	for top, bottom := 0, g.h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := g.data[top*g.w : (top+1)*g.w]
		b := g.data[bottom*g.w : (bottom+1)*g.w]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// IterReflectVertical yields the elements of ReflectVertical without mutating g.
func (g *Grid[T]) IterReflectVertical() iter.Seq[T] {
	return g.remap(g.w, g.h, g.verticalSource)
}

// ReflectHorizontal reverses the order of elements within each row.
func (g *Grid[T]) ReflectHorizontal() {
	for y := range g.h {
		slices.Reverse(g.data[y*g.w : (y+1)*g.w])
	}
}

// IterReflectHorizontal yields the elements of ReflectHorizontal without
// mutating g.
func (g *Grid[T]) IterReflectHorizontal() iter.Seq[T] {
	return g.remap(g.w, g.h, g.horizontalSource)
}

// ReflectDiagonal transposes the grid about its main diagonal. Width and
// height swap.
func (g *Grid[T]) ReflectDiagonal() { g.rebuild(g.h, g.w, g.diagonalSource) }

// IterReflectDiagonal yields the elements of ReflectDiagonal without mutating
// g. The sequence is laid out Height() columns wide.
func (g *Grid[T]) IterReflectDiagonal() iter.Seq[T] {
	return g.remap(g.h, g.w, g.diagonalSource)
}

// ReflectNegativeDiagonal transposes the grid about its anti-diagonal. Width
// and height swap.
func (g *Grid[T]) ReflectNegativeDiagonal() { g.rebuild(g.h, g.w, g.negativeDiagonalSource) }

// IterReflectNegativeDiagonal yields the elements of ReflectNegativeDiagonal
// without mutating g.
func (g *Grid[T]) IterReflectNegativeDiagonal() iter.Seq[T] {
	return g.remap(g.h, g.w, g.negativeDiagonalSource)
}

// RotateRight turns the grid a quarter turn. It matches ReflectDiagonal
// followed by ReflectVertical. Width and height swap.
func (g *Grid[T]) RotateRight() { g.rebuild(g.h, g.w, g.rightSource) }

// IterRotateRight yields the elements of RotateRight without mutating g.
func (g *Grid[T]) IterRotateRight() iter.Seq[T] {
	return g.remap(g.h, g.w, g.rightSource)
}

// RotateLeft is the inverse of RotateRight. Width and height swap.
func (g *Grid[T]) RotateLeft() { g.rebuild(g.h, g.w, g.leftSource) }

// IterRotateLeft yields the elements of RotateLeft without mutating g.
func (g *Grid[T]) IterRotateLeft() iter.Seq[T] {
	return g.remap(g.h, g.w, g.leftSource)
}

// Rotate180 reverses the whole element sequence.
func (g *Grid[T]) Rotate180() { slices.Reverse(g.data) }

// IterRotate180 yields the elements of Rotate180 without mutating g.
func (g *Grid[T]) IterRotate180() iter.Seq[T] {
	return g.remap(g.w, g.h, g.halfTurnSource)
}

// Rotate orients the grid by r: Up is the identity, Down a half turn, Left
// and Right quarter turns.
func (g *Grid[T]) Rotate(r Rotation) {
	switch r {
	case Down:
		g.Rotate180()
	case Left:
		g.RotateLeft()
	case Right:
		g.RotateRight()
	}
}

// IterRotate yields the elements of Rotate(r) without mutating g, along with
// the dimensions of the rotated layout.
func (g *Grid[T]) IterRotate(r Rotation) (iter.Seq[T], Size) {
	switch r {
	case Down:
		return g.IterRotate180(), Size{W: g.w, H: g.h}
	case Left:
		return g.IterRotateLeft(), Size{W: g.h, H: g.w}
	case Right:
		return g.IterRotateRight(), Size{W: g.h, H: g.w}
	default:
		return g.Values(), Size{W: g.w, H: g.h}
	}
}

// Subdivide partitions g into cols*rows equally sized, independent sub-grids.
// Sub-grid sizes use integer division, so remainder columns and rows are
// dropped. Non-positive counts yield an empty grid.
func Subdivide[T any](g *Grid[T], cols, rows int) *Grid[*Grid[T]] {
	if cols <= 0 || rows <= 0 {
		return NewGrid[*Grid[T]](0, 0, false)
	}
	sw, sh := g.w/cols, g.h/rows
	out := NewGrid[*Grid[T]](cols, rows, false)
	for y := range rows {
		for x := range cols {
			out.data[y*cols+x] = g.ClampToGrid(x*sw, y*sh, sw, sh)
		}
	}
	return out
}
