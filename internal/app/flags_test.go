package app

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tilegrid/internal/core"
	"tilegrid/internal/scene"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("tiles", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-scene", "meadow", "-seed", "9", "-w", "6", "-h", "5", "-workers", "2", "-wrap"}); err != nil {
		t.Fatal(err)
	}
	want := scene.Config{Width: 6, Height: 5, Seed: 9, Workers: 2, Wrap: true}
	if diff := cmp.Diff(want, scene.FromMap(cfg.SceneConfig())); diff != "" {
		t.Fatalf("scene config mismatch (-want +got):\n%s", diff)
	}
	sc, err := cfg.NewScene()
	if err != nil {
		t.Fatal(err)
	}
	if sc.Size() != (core.Size{W: 6 * scene.TileSize, H: 5 * scene.TileSize}) {
		t.Fatalf("scene size = %+v", sc.Size())
	}
}

func TestConfigUnknownScene(t *testing.T) {
	cfg := NewConfig()
	cfg.Scene = "nowhere"
	if _, err := cfg.NewScene(); err == nil {
		t.Fatal("expected an error for an unknown scene")
	}
}

func TestInstallLogger(t *testing.T) {
	t.Cleanup(func() { core.SetLogger(nil) })
	var buf bytes.Buffer

	cfg := NewConfig()
	cfg.InstallLogger(&buf)
	core.Logger().Debug("quiet")
	if buf.Len() != 0 {
		t.Fatalf("logged without -debug: %q", buf.String())
	}

	cfg.Debug = true
	cfg.InstallLogger(&buf)
	core.Logger().Debug("loud", "k", 1)
	if !strings.Contains(buf.String(), "msg=loud") {
		t.Fatalf("debug output = %q", buf.String())
	}
}
