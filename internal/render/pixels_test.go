package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tilegrid/internal/core"
	"tilegrid/internal/graphics"
)

func TestFillColorRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillColorRGBA(buf, []graphics.Color{0x102030, 0xffffff})
	want := []byte{0x10, 0x20, 0x30, 0xff, 0xff, 0xff, 0xff, 0xff}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("rgba mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotScales(t *testing.T) {
	frame := core.GridFrom(2, 1, false, []graphics.Color{0xff0000, 0x0000ff})
	img := Snapshot(frame, 3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 6x3", b)
	}
	for y := range 3 {
		for x := range 6 {
			want := graphics.Color(0xff0000)
			if x >= 3 {
				want = 0x0000ff
			}
			if got := graphics.FromColor(img.At(x, y)); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if b := Snapshot(frame, 0).Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Fatalf("unscaled bounds = %v", b)
	}
}

func TestWritePNG(t *testing.T) {
	frame := core.NewFilledGrid[graphics.Color](3, 2, false, 0x336699)
	var buf bytes.Buffer
	if err := WritePNG(&buf, frame, 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("decoded bounds = %v, want 6x4", b)
	}
	if got := graphics.FromColor(img.At(5, 3)); got != 0x336699 {
		t.Fatalf("decoded pixel = %v", got)
	}
}
