package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyParallelMatchesSequential(t *testing.T) {
	f := func(x, y, v int) int { return v*31 + x*7 - y }
	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		want := seqGrid(17, 13, false)
		want.ApplyAll(f)
		got := seqGrid(17, 13, false)
		got.ApplyParallel(workers, f)
		if diff := cmp.Diff(want.Cells(), got.Cells()); diff != "" {
			t.Fatalf("workers=%d mismatch (-want +got):\n%s", workers, diff)
		}
	}
}

func TestOverlayParallelMatchesSequential(t *testing.T) {
	tests := []struct {
		name     string
		wrapping bool
		srcW     int
		srcH     int
		x, y     int
	}{
		{"inside", false, 5, 5, 2, 3},
		{"clipped", false, 9, 12, -3, 4},
		{"wrapping", true, 6, 4, 8, -2},
		{"wrapping taller than destination", true, 4, 25, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := seqGrid(tc.srcW, tc.srcH, false)
			want := NewFilledGrid(10, 10, tc.wrapping, -1)
			want.Overlay(src, tc.x, tc.y)
			for _, workers := range []int{0, 2, 5} {
				got := NewFilledGrid(10, 10, tc.wrapping, -1)
				got.OverlayParallel(src, tc.x, tc.y, workers)
				if diff := cmp.Diff(want.Cells(), got.Cells()); diff != "" {
					t.Fatalf("workers=%d mismatch (-want +got):\n%s", workers, diff)
				}
			}
		})
	}
}

func BenchmarkOverlay(b *testing.B) {
	src := seqGrid(512, 512, false)
	dst := NewGrid[int](640, 480, false)
	b.ReportAllocs()
	for b.Loop() {
		dst.Overlay(src, 64, -16)
	}
}

func BenchmarkOverlayParallel(b *testing.B) {
	src := seqGrid(512, 512, false)
	dst := NewGrid[int](640, 480, false)
	b.ReportAllocs()
	for b.Loop() {
		dst.OverlayParallel(src, 64, -16, 0)
	}
}
