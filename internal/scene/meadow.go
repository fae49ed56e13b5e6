package scene

import (
	"fmt"
	"time"

	"github.com/google/hilbert"

	"tilegrid/internal/anim"
	"tilegrid/internal/core"
	"tilegrid/internal/entity"
	"tilegrid/internal/graphics"
)

// TileSize is the edge length of every meadow tile in pixels.
const TileSize = 8

// clock drives the animations of scenes built without a tick step.
var clock core.Clock = time.Now

var meadowPalette = graphics.Palette{
	'g': 0x3a7d2c,
	'G': 0x2f6a24,
	'y': 0xe8d44d,
	'w': 0xf0f0f0,
	'd': 0x9b7648,
	'D': 0x7a5a35,
	'b': 0x2a5caa,
	'B': 0x4f86d9,
	's': 0x8a8a8a,
	'S': 0x5c5c5c,
	'k': 0x111111,
	'p': 0xf1c27d,
	'u': 0x2e4a9e,
	'r': 0xc0392b,
	'W': 0xeeeeee,
}

var (
	grassArt = []string{
		"gggggggg",
		"ggGggggg",
		"gggggGgg",
		"gggggggg",
		"gGgggggg",
		"ggggggGg",
		"gggGgggg",
		"gggggggg",
	}
	flowerArt = []string{
		"gggggggg",
		"gyggggwg",
		"gggggggg",
		"gggwgggg",
		"gggggggg",
		"ggggggyg",
		"gwgggggg",
		"gggggggg",
	}
	roadArt = []string{
		"dddddddd",
		"ddDddddd",
		"dddddDdd",
		"dddddddd",
		"dDdddddd",
		"ddddddDd",
		"dddDdddd",
		"dddddddd",
	}
	rockArt = []string{
		"........",
		"..ssss..",
		".ssssSs.",
		".sssSSs.",
		".ssSSSs.",
		"..SSSS..",
		"........",
		"........",
	}
	waterArt = [][]string{{
		"bbbbbbbb",
		"bBBbbbbb",
		"bbbbbbbb",
		"bbbbbBBb",
		"bbbbbbbb",
		"bbBBbbbb",
		"bbbbbbbb",
		"bbbbbbBB",
	}, {
		"bbbbbbbb",
		"bbbBBbbb",
		"bbbbbbbb",
		"bBBbbbbb",
		"bbbbbbbb",
		"bbbbbBBb",
		"bbbbbbbb",
		"BBbbbbbb",
	}}
	// The hero faces up in its source art.
	heroArt = [][]string{{
		"...kk...",
		"..kppk..",
		"..pppp..",
		".uuuuuu.",
		"p.uuuu.p",
		"..uuuu..",
		"..u..u..",
		"..k.....",
	}, {
		"...kk...",
		"..kppk..",
		"..pppp..",
		".uuuuuu.",
		"p.uuuu.p",
		"..uuuu..",
		"..u..u..",
		".....k..",
	}}
	sheepArt = []string{
		"..kk....",
		".WWWWWW.",
		"kWWWWWWW",
		".WWWWWW.",
		".k.k.k.k",
	}
	birdArt = [][]string{{
		"k...k",
		".k.k.",
		"..r..",
	}, {
		".....",
		"kkrkk",
		".....",
	}}
)

func init() {
	Register("meadow", NewMeadow)
}

// NewMeadow builds a grassy map with scattered rocks and flowers, a road
// following a Hilbert curve, an animated pond, a hero, grazing sheep and a
// bird crossing the sky.
func NewMeadow(cfgMap map[string]string) (*Scene, error) {
	cfg := FromMap(cfgMap)
	rng := core.NewRNG(cfg.Seed)
	now := clock
	var ticks *TickClock
	if cfg.Step > 0 {
		ticks = NewTickClock(cfg.Step)
		now = ticks.Now
	}

	grass := graphics.MustParseTile(grassArt, meadowPalette)
	flowers := graphics.MustParseTile(flowerArt, meadowPalette)
	dirt := graphics.MustParseTile(roadArt, meadowPalette)
	rock := graphics.MustParseTile(rockArt, meadowPalette)
	water, err := loop(waterArt, 400*time.Millisecond, now)
	if err != nil {
		return nil, fmt.Errorf("meadow water: %w", err)
	}

	m := graphics.NewTileMap(cfg.Width, cfg.Height, cfg.Wrap, TileSize, TileSize)
	for _, cell := range m.Tiles().EnumerateMut() {
		switch {
		case rng.Chance(0.05):
			*cell = rock
		case rng.Chance(0.15):
			*cell = flowers
		default:
			*cell = grass
		}
	}
	if err := layRoad(m, cfg, dirt); err != nil {
		return nil, err
	}
	digPond(m, rng, water, dirt)

	s := NewScene("meadow", m)
	s.Config = cfg
	s.Clock = ticks
	s.Ground = meadowPalette['g']
	s.Workers = cfg.Workers
	s.AddAnimatedTile(water)
	size := s.Size()
	s.Decorate = vignette(size, 3)

	hero, err := loop(heroArt, 250*time.Millisecond, now)
	if err != nil {
		return nil, fmt.Errorf("meadow hero: %w", err)
	}
	s.Hero = entity.NewAnimated(size.W/2-TileSize/2, size.H/2-TileSize/2, hero, 2)
	s.AddEntity(s.Hero)

	sheep := graphics.MustParseTile(sheepArt, meadowPalette)
	for range max(1, cfg.Width*cfg.Height/40) {
		e := entity.NewSprite(rng.IntN(size.W-TileSize+1), rng.IntN(size.H-TileSize+1), sheep, 1)
		e.Transform.Rotation = core.Rotation(rng.IntN(4))
		s.AddEntity(e)
	}

	wings, err := loop(birdArt, 150*time.Millisecond, now)
	if err != nil {
		return nil, fmt.Errorf("meadow bird: %w", err)
	}
	bird := entity.NewAnimated(0, rng.IntN(max(1, size.H/3)), wings, 3)
	s.AddEntity(bird)
	s.OnTick = append(s.OnTick, func(s *Scene) {
		bird.X++
		if bird.X >= size.W {
			bird.X = -len(birdArt[0][0])
		}
	})

	core.Logger().Info("scene built", "scene", "meadow", "w", cfg.Width, "h", cfg.Height, "seed", cfg.Seed, "entities", len(s.Entities))
	return s, nil
}

// loop parses art as the frames of a single looping reel.
func loop(art [][]string, d time.Duration, now core.Clock) (*anim.Player, error) {
	tiles := make([]graphics.Tile, len(art))
	frames := make([]anim.Frame, len(art))
	for i, rows := range art {
		t, err := graphics.ParseTile(rows, meadowPalette)
		if err != nil {
			return nil, err
		}
		tiles[i] = t
		frames[i] = anim.Frame{Index: i, Duration: d}
	}
	reel, err := anim.NewReel(frames...)
	if err != nil {
		return nil, err
	}
	return anim.NewPlayerWithClock(tiles, []*anim.Reel{reel}, now)
}

// layRoad traces a coarse Hilbert curve across the map and paves the
// straight segments between its vertices.
func layRoad(m *graphics.TileMap, cfg Config, road graphics.Tile) error {
	n := 4
	for n > 2 && (cfg.Width < 2*n || cfg.Height < 2*n) {
		n /= 2
	}
	curve, err := hilbert.NewHilbert(n)
	if err != nil {
		return fmt.Errorf("meadow road: %w", err)
	}
	sx, sy := cfg.Width/n, cfg.Height/n
	var prev core.Point
	for t := range n * n {
		x, y, err := curve.Map(t)
		if err != nil {
			return fmt.Errorf("meadow road: %w", err)
		}
		p := core.Point{X: x*sx + sx/2, Y: y*sy + sy/2}
		if t == 0 {
			prev = p
		}
		pave(m, prev, p, road)
		prev = p
	}
	return nil
}

// pave fills the tiles from a to b, horizontally first.
func pave(m *graphics.TileMap, a, b core.Point, road graphics.Tile) {
	step := func(from, to int) int {
		switch {
		case from < to:
			return 1
		case from > to:
			return -1
		}
		return 0
	}
	p := a
	m.SetTile(p.X, p.Y, road)
	for dx := step(a.X, b.X); p.X != b.X; p.X += dx {
		m.SetTile(p.X+dx, p.Y, road)
	}
	for dy := step(a.Y, b.Y); p.Y != b.Y; p.Y += dy {
		m.SetTile(p.X, p.Y+dy, road)
	}
}

// digPond floods a random rectangle with water, leaving the road dry.
func digPond(m *graphics.TileMap, rng *core.RNG, water, road graphics.Tile) {
	size := m.Tiles().Size()
	w := min(size.W, 3+rng.IntN(3))
	h := min(size.H, 2+rng.IntN(3))
	x0 := rng.IntN(size.W - w + 1)
	y0 := rng.IntN(size.H - h + 1)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if t, ok := m.Tile(x, y); ok && t == road {
				continue
			}
			m.SetTile(x, y, water)
		}
	}
}

// vignette darkens pixels within border pixels of the frame edge.
func vignette(size core.Size, border int) Decorator {
	return func(x, y int, c graphics.Color) graphics.Color {
		d := min(x, y, size.W-1-x, size.H-1-y)
		if d >= border {
			return c
		}
		return shade(c, 0.55+0.45*float64(d)/float64(border))
	}
}

func shade(c graphics.Color, f float64) graphics.Color {
	scale := func(v uint8) uint8 { return uint8(float64(v) * f) }
	return graphics.RGB(scale(c.R()), scale(c.G()), scale(c.B()))
}
