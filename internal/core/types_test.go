package core

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestTransformStep(t *testing.T) {
	tr := Transform{Point: Point{X: 4, Y: 4}}
	tr.Step(Left, 2)
	tr.Step(Down, 3)
	if tr.Point != (Point{X: 2, Y: 7}) {
		t.Fatalf("position = %v, want {2 7}", tr.Point)
	}
	if tr.Rotation != Down {
		t.Fatalf("rotation = %v, want down", tr.Rotation)
	}
}

func TestRotationString(t *testing.T) {
	for r, want := range map[Rotation]string{Up: "up", Down: "down", Left: "left", Right: "right", 9: "unknown"} {
		if got := r.String(); got != want {
			t.Errorf("Rotation(%d).String() = %q, want %q", r, got, want)
		}
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	dst := NewGrid[int](2, 2, true)
	dst.OverlayParallel(NewGrid[int](1, 3, false), 0, 0, 2)
	if !bytes.Contains(buf.Bytes(), []byte("running sequentially")) {
		t.Fatalf("expected fallback to be logged, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("SetLogger(nil) should restore the silent logger")
	}
}
