package core

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type shape struct {
	W, H  int
	Cells []int
}

func shapeOf(g *Grid[int]) shape {
	return shape{W: g.Width(), H: g.Height(), Cells: slices.Clone(g.Cells())}
}

func TestTransforms(t *testing.T) {
	// 0 1 2
	// 3 4 5
	tests := []struct {
		name  string
		apply func(*Grid[int])
		lazy  func(*Grid[int]) []int
		want  shape
	}{
		{
			name:  "reflect vertical",
			apply: (*Grid[int]).ReflectVertical,
			lazy:  func(g *Grid[int]) []int { return slices.Collect(g.IterReflectVertical()) },
			want:  shape{3, 2, []int{3, 4, 5, 0, 1, 2}},
		},
		{
			name:  "reflect horizontal",
			apply: (*Grid[int]).ReflectHorizontal,
			lazy:  func(g *Grid[int]) []int { return slices.Collect(g.IterReflectHorizontal()) },
			want:  shape{3, 2, []int{2, 1, 0, 5, 4, 3}},
		},
		{
			name:  "reflect diagonal",
			apply: (*Grid[int]).ReflectDiagonal,
			lazy:  func(g *Grid[int]) []int { return slices.Collect(g.IterReflectDiagonal()) },
			want:  shape{2, 3, []int{0, 3, 1, 4, 2, 5}},
		},
		{
			name:  "reflect negative diagonal",
			apply: (*Grid[int]).ReflectNegativeDiagonal,
			lazy:  func(g *Grid[int]) []int { return slices.Collect(g.IterReflectNegativeDiagonal()) },
			want:  shape{2, 3, []int{5, 2, 4, 1, 3, 0}},
		},
		{
			name:  "rotate right",
			apply: (*Grid[int]).RotateRight,
			lazy:  func(g *Grid[int]) []int { return slices.Collect(g.IterRotateRight()) },
			want:  shape{2, 3, []int{2, 5, 1, 4, 0, 3}},
		},
		{
			name:  "rotate left",
			apply: (*Grid[int]).RotateLeft,
			lazy:  func(g *Grid[int]) []int { return slices.Collect(g.IterRotateLeft()) },
			want:  shape{2, 3, []int{3, 0, 4, 1, 5, 2}},
		},
		{
			name:  "rotate 180",
			apply: (*Grid[int]).Rotate180,
			lazy:  func(g *Grid[int]) []int { return slices.Collect(g.IterRotate180()) },
			want:  shape{3, 2, []int{5, 4, 3, 2, 1, 0}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := seqGrid(3, 2, false)
			if diff := cmp.Diff(tc.want.Cells, tc.lazy(g)); diff != "" {
				t.Errorf("lazy form mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(shape{3, 2, []int{0, 1, 2, 3, 4, 5}}, shapeOf(g)); diff != "" {
				t.Fatalf("lazy form mutated the grid (-want +got):\n%s", diff)
			}
			tc.apply(g)
			if diff := cmp.Diff(tc.want, shapeOf(g)); diff != "" {
				t.Errorf("in-place form mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRotateRightIsDiagonalThenVertical(t *testing.T) {
	a := seqGrid(4, 3, false)
	b := a.Clone()
	a.RotateRight()
	b.ReflectDiagonal()
	b.ReflectVertical()
	if diff := cmp.Diff(shapeOf(b), shapeOf(a)); diff != "" {
		t.Fatalf("RotateRight mismatch (-want +got):\n%s", diff)
	}
}

func TestRotateLeftIsDiagonalThenHorizontal(t *testing.T) {
	a := seqGrid(4, 3, false)
	b := a.Clone()
	a.RotateLeft()
	b.ReflectDiagonal()
	b.ReflectHorizontal()
	if diff := cmp.Diff(shapeOf(b), shapeOf(a)); diff != "" {
		t.Fatalf("RotateLeft mismatch (-want +got):\n%s", diff)
	}
}

func TestNegativeDiagonalIsDiagonalThenHalfTurn(t *testing.T) {
	a := seqGrid(5, 2, false)
	b := a.Clone()
	a.ReflectNegativeDiagonal()
	b.ReflectDiagonal()
	b.Rotate180()
	if diff := cmp.Diff(shapeOf(b), shapeOf(a)); diff != "" {
		t.Fatalf("ReflectNegativeDiagonal mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		ops  []func(*Grid[int])
	}{
		{"left then right", []func(*Grid[int]){(*Grid[int]).RotateLeft, (*Grid[int]).RotateRight}},
		{"right then left", []func(*Grid[int]){(*Grid[int]).RotateRight, (*Grid[int]).RotateLeft}},
		{"half turn twice", []func(*Grid[int]){(*Grid[int]).Rotate180, (*Grid[int]).Rotate180}},
		{"right twice then half turn", []func(*Grid[int]){
			(*Grid[int]).RotateRight, (*Grid[int]).RotateRight, (*Grid[int]).Rotate180,
		}},
		{"four quarter turns", []func(*Grid[int]){
			(*Grid[int]).RotateRight, (*Grid[int]).RotateRight, (*Grid[int]).RotateRight, (*Grid[int]).RotateRight,
		}},
		{"vertical twice", []func(*Grid[int]){(*Grid[int]).ReflectVertical, (*Grid[int]).ReflectVertical}},
		{"horizontal twice", []func(*Grid[int]){(*Grid[int]).ReflectHorizontal, (*Grid[int]).ReflectHorizontal}},
		{"diagonal twice", []func(*Grid[int]){(*Grid[int]).ReflectDiagonal, (*Grid[int]).ReflectDiagonal}},
		{"negative diagonal twice", []func(*Grid[int]){
			(*Grid[int]).ReflectNegativeDiagonal, (*Grid[int]).ReflectNegativeDiagonal,
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, dims := range []Size{{3, 2}, {1, 4}, {4, 4}, {5, 3}} {
				g := seqGrid(dims.W, dims.H, false)
				want := shapeOf(g)
				for _, op := range tc.ops {
					op(g)
				}
				if diff := cmp.Diff(want, shapeOf(g)); diff != "" {
					t.Errorf("%dx%d round trip mismatch (-want +got):\n%s", dims.W, dims.H, diff)
				}
			}
		})
	}
}

func TestRotateDispatch(t *testing.T) {
	tests := []struct {
		r    Rotation
		want func(*Grid[int])
	}{
		{Up, func(*Grid[int]) {}},
		{Down, (*Grid[int]).Rotate180},
		{Left, (*Grid[int]).RotateLeft},
		{Right, (*Grid[int]).RotateRight},
	}
	for _, tc := range tests {
		t.Run(tc.r.String(), func(t *testing.T) {
			want := seqGrid(3, 2, false)
			tc.want(want)

			got := seqGrid(3, 2, false)
			got.Rotate(tc.r)
			if diff := cmp.Diff(shapeOf(want), shapeOf(got)); diff != "" {
				t.Errorf("Rotate mismatch (-want +got):\n%s", diff)
			}

			seq, size := seqGrid(3, 2, false).IterRotate(tc.r)
			lazy := shape{W: size.W, H: size.H, Cells: slices.Collect(seq)}
			if diff := cmp.Diff(shapeOf(want), lazy); diff != "" {
				t.Errorf("IterRotate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSubdivide(t *testing.T) {
	g := seqGrid(4, 4, false)
	parts := Subdivide(g, 2, 2)
	if parts.Width() != 2 || parts.Height() != 2 {
		t.Fatalf("Subdivide size = %dx%d, want 2x2", parts.Width(), parts.Height())
	}
	wantTopRight := []int{2, 3, 6, 7}
	top, _ := parts.Get(1, 0)
	if diff := cmp.Diff(wantTopRight, top.Cells()); diff != "" {
		t.Fatalf("top-right part mismatch (-want +got):\n%s", diff)
	}

	rebuilt := NewGrid[int](4, 4, false)
	for p, part := range parts.Enumerate() {
		if part.Width() != 2 || part.Height() != 2 {
			t.Fatalf("part %v is %dx%d, want 2x2", p, part.Width(), part.Height())
		}
		rebuilt.Overlay(part, p.X*2, p.Y*2)
	}
	if diff := cmp.Diff(g.Cells(), rebuilt.Cells()); diff != "" {
		t.Fatalf("reassembled grid mismatch (-want +got):\n%s", diff)
	}

	top.Set(0, 0, -1)
	if v, _ := g.Get(2, 0); v != 2 {
		t.Fatal("sub-grid aliases the source grid")
	}
}

func TestSubdivideDropsRemainder(t *testing.T) {
	g := seqGrid(5, 3, false)
	parts := Subdivide(g, 2, 2)
	for p, part := range parts.Enumerate() {
		if part.Width() != 2 || part.Height() != 1 {
			t.Fatalf("part %v is %dx%d, want 2x1", p, part.Width(), part.Height())
		}
	}
	last, _ := parts.Get(1, 1)
	if diff := cmp.Diff([]int{7, 8}, last.Cells()); diff != "" {
		t.Fatalf("bottom-right part mismatch (-want +got):\n%s", diff)
	}
	if empty := Subdivide(g, 0, 2); empty.Width() != 0 || empty.Height() != 0 {
		t.Fatal("Subdivide(0, 2) returned a non-empty grid")
	}
}
