//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tilegrid/internal/core"
	"tilegrid/internal/render"
	"tilegrid/internal/scene"
	"tilegrid/internal/ui"
)

const hudWidth = 200

var moveKeys = []struct {
	keys []ebiten.Key
	dir  core.Rotation
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.Up},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.Down},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.Left},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.Right},
}

// Game adapts a scene to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	scene   *scene.Scene
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided scene.
func New(cfg *Config, sc *scene.Scene) *Game {
	size := sc.Size()
	return &Game{
		cfg:     cfg,
		scene:   sc,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sc, hudWidth),
		overlay: ui.NewOverlay(sc, cfg.Scale),
	}
}

// Reset rebuilds the scene with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.cfg.Seed = seed
	sc, err := g.cfg.NewScene()
	if err != nil {
		return err
	}
	g.scene = sc
	g.hud.SetScene(sc)
	g.overlay.SetScene(sc)
	g.tickOnce = false
	core.Logger().Debug("scene reset", "scene", g.cfg.Scene, "seed", seed)
	return nil
}

// Update handles input and advances the scene by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.cfg.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	for _, m := range moveKeys {
		for _, k := range m.keys {
			if ebiten.IsKeyPressed(k) {
				g.scene.Move(m.dir, 1)
				break
			}
		}
	}

	g.overlay.Update()
	g.hud.Update()

	if !g.paused || g.tickOnce {
		g.scene.Tick()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scene.Frame(), g.cfg.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.scene.Size().W*g.cfg.Scale, g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scene.Size()
	return s.W*g.cfg.Scale + g.hud.Width(), s.H * g.cfg.Scale
}
