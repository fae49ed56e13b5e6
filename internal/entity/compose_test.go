package entity

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tilegrid/internal/anim"
	"tilegrid/internal/core"
	"tilegrid/internal/graphics"
)

const (
	colA graphics.Color = 0xa
	colB graphics.Color = 0xb
	colC graphics.Color = 0xc
	colD graphics.Color = 0xd
	red  graphics.Color = 0xff0000
	grn  graphics.Color = 0x00ff00
)

var palette = graphics.Palette{'r': red, 'g': grn}

func TestComposeDrawOrder(t *testing.T) {
	bg := core.NewGrid[graphics.Color](5, 4, false)
	entities := []Entity{
		NewSprite(0, 0, graphics.SolidTile(2, 2, colA), 3),
		NewSprite(1, 0, graphics.SolidTile(2, 2, colB), 1),
		NewSprite(1, 1, graphics.SolidTile(2, 2, colC), 1),
		NewSprite(2, 1, graphics.SolidTile(2, 2, colD), 2),
	}
	frame := Compose(bg, entities)

	A, B, C, D := colA, colB, colC, colD
	want := []graphics.Color{
		A, A, B, 0, 0,
		A, A, D, D, 0,
		0, C, D, D, 0,
		0, 0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, frame.Cells()); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
	for i, c := range bg.Cells() {
		if c != 0 {
			t.Fatalf("background cell %d modified to %v", i, c)
		}
	}
	if entities[0].Order() != 3 {
		t.Fatal("Compose reordered the caller's slice")
	}
}

func TestComposeEqualOrderLaterWins(t *testing.T) {
	bg := core.NewGrid[graphics.Color](2, 2, false)
	frame := Compose(bg, []Entity{
		NewSprite(0, 0, graphics.SolidTile(2, 2, colA), 5),
		NewSprite(0, 0, graphics.SolidTile(2, 2, colB), 5),
		NewSprite(0, 0, graphics.SolidTile(1, 1, colC), 4),
	})
	want := []graphics.Color{colB, colB, colB, colB}
	if diff := cmp.Diff(want, frame.Cells()); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeRotatesTiles(t *testing.T) {
	tile := graphics.MustParseTile([]string{"rg"}, palette)
	tests := []struct {
		rot  core.Rotation
		want []graphics.Color
	}{
		{core.Up, []graphics.Color{
			0, 0, 0,
			0, red, grn,
			0, 0, 0,
		}},
		{core.Down, []graphics.Color{
			0, 0, 0,
			0, grn, red,
			0, 0, 0,
		}},
		{core.Right, []graphics.Color{
			0, 0, 0,
			0, grn, 0,
			0, red, 0,
		}},
		{core.Left, []graphics.Color{
			0, 0, 0,
			0, red, 0,
			0, grn, 0,
		}},
	}
	for _, tc := range tests {
		t.Run(tc.rot.String(), func(t *testing.T) {
			s := NewSprite(1, 1, tile, 0)
			s.Transform.Rotation = tc.rot
			frame := Compose(core.NewGrid[graphics.Color](3, 3, false), []Entity{s})
			if diff := cmp.Diff(tc.want, frame.Cells()); diff != "" {
				t.Fatalf("frame mismatch (-want +got):\n%s", diff)
			}
			if tile.Size() != (core.Size{W: 2, H: 1}) {
				t.Fatal("composition mutated the tile")
			}
		})
	}
}

func TestComposeTransparentPixelsKeepBackground(t *testing.T) {
	bg := core.NewFilledGrid(2, 2, false, colD)
	tile := graphics.MustParseTile([]string{"r.", ".g"}, palette)
	frame := Compose(bg, []Entity{NewSprite(0, 0, tile, 0)})
	want := []graphics.Color{red, colD, colD, grn}
	if diff := cmp.Diff(want, frame.Cells()); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeClipsAtEdges(t *testing.T) {
	bg := core.NewGrid[graphics.Color](3, 3, false)
	frame := Compose(bg, []Entity{
		NewSprite(-1, -1, graphics.SolidTile(2, 2, colA), 0),
		NewSprite(2, 2, graphics.SolidTile(4, 4, colB), 0),
		NewSprite(10, -10, graphics.SolidTile(4, 4, colC), 0),
		NewSprite(0, 0, nil, 0),
	})
	want := []graphics.Color{
		colA, 0, 0,
		0, 0, 0,
		0, 0, colB,
	}
	if diff := cmp.Diff(want, frame.Cells()); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeWrappingBackground(t *testing.T) {
	bg := core.NewGrid[graphics.Color](3, 3, true)
	frame := Compose(bg, []Entity{NewSprite(2, 2, graphics.SolidTile(2, 1, colA), 0)})
	want := []graphics.Color{
		0, 0, 0,
		0, 0, 0,
		colA, 0, colA,
	}
	if diff := cmp.Diff(want, frame.Cells()); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeInto(t *testing.T) {
	bg := core.NewFilledGrid(3, 2, false, colD)
	frame := core.NewGrid[graphics.Color](1, 1, false)
	entities := []Entity{NewSprite(1, 0, graphics.SolidTile(1, 1, colA), 0)}

	ComposeInto(frame, bg, entities)
	want := Compose(bg, entities)
	if diff := cmp.Diff(want.Cells(), frame.Cells()); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}

	// A second frame starts from the background again.
	entities[0].(*Sprite).Step(core.Right, 1)
	ComposeInto(frame, bg, entities)
	wantCells := []graphics.Color{colD, colD, colA, colD, colD, colD}
	if diff := cmp.Diff(wantCells, frame.Cells()); diff != "" {
		t.Fatalf("second frame mismatch (-want +got):\n%s", diff)
	}
}

func TestAnimatedEntity(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }
	reel, _ := anim.NewReel(
		anim.Frame{Index: 0, Duration: time.Second},
		anim.Frame{Index: 1, Duration: time.Second},
	)
	frames := []graphics.Tile{graphics.SolidTile(1, 1, colA), graphics.SolidTile(1, 1, colB)}
	p, err := anim.NewPlayerWithClock(frames, []*anim.Reel{reel}, clock)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAnimated(0, 0, p, 0)
	bg := core.NewGrid[graphics.Color](1, 1, false)

	if got := Compose(bg, []Entity{a}).Cells()[0]; got != colA {
		t.Fatalf("first frame = %v, want A", got)
	}
	now = now.Add(time.Second)
	if !a.Update() {
		t.Fatal("animation did not advance")
	}
	if got := Compose(bg, []Entity{a}).Cells()[0]; got != colB {
		t.Fatalf("second frame = %v, want B", got)
	}
}

func TestSortedIsStable(t *testing.T) {
	in := []Entity{
		NewSprite(0, 0, nil, 3),
		NewSprite(1, 0, nil, 1),
		NewSprite(2, 0, nil, 1),
		NewSprite(3, 0, nil, 2),
	}
	var got []int
	for _, e := range Sorted(in) {
		got = append(got, e.Position().X)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 0}, got); diff != "" {
		t.Fatalf("Sorted order mismatch (-want +got):\n%s", diff)
	}
}
