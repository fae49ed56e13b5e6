package app

import (
	"flag"
	"io"
	"log/slog"

	"tilegrid/internal/core"
	"tilegrid/internal/scene"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Scene   string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Workers int
	Wrap    bool
	Debug   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := scene.DefaultConfig()
	return &Config{
		Scene:  "meadow",
		Scale:  4,
		TPS:    30,
		Seed:   d.Seed,
		Width:  d.Width,
		Height: d.Height,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to load")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "scenery seed")
	fs.IntVar(&c.Width, "w", c.Width, "map width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "map height in tiles")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel background workers, 0 for sequential")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap the map at its edges")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log debug output to stderr")
}

// SceneConfig converts the flags into a scene factory configuration.
func (c *Config) SceneConfig() map[string]string {
	return scene.Config{
		Width:   c.Width,
		Height:  c.Height,
		Seed:    c.Seed,
		Workers: c.Workers,
		Wrap:    c.Wrap,
	}.Map()
}

// NewScene builds the configured scene.
func (c *Config) NewScene() (*scene.Scene, error) {
	return scene.New(c.Scene, c.SceneConfig())
}

// InstallLogger routes library logging to w when Debug is set.
func (c *Config) InstallLogger(w io.Writer) {
	if !c.Debug {
		return
	}
	core.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
