// Package term presents frames on a terminal through tcell. Each character
// cell shows two vertically stacked pixels using the upper half block.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"tilegrid/internal/core"
	"tilegrid/internal/graphics"
	"tilegrid/internal/scene"
)

const (
	halfBlock = '▀'
	// HeroStep is the number of pixels the hero moves per key press.
	HeroStep = 2
	// maxCatchUp bounds the ticks run for one drawn frame.
	maxCatchUp = 5
)

// Surface draws frames onto a tcell screen.
type Surface struct {
	screen tcell.Screen
	fps    int
}

// NewSurface wraps an initialised screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen, fps: 30}
}

// CellSize returns the terminal cells needed to show a frame of size s.
func CellSize(s core.Size) core.Size {
	return core.Size{W: s.W, H: (s.H + 1) / 2}
}

func rgb(c graphics.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// Present draws frame from the top-left corner of the screen and shows it.
// Rows and columns beyond the screen are clipped. An odd last pixel row is
// drawn over the default background.
func (s *Surface) Present(frame *core.Grid[graphics.Color]) {
	sw, sh := s.screen.Size()
	cells := CellSize(frame.Size())
	for cy := range min(cells.H, sh) {
		for x := range min(cells.W, sw) {
			top, _ := frame.Get(x, 2*cy)
			style := tcell.StyleDefault.Foreground(rgb(top))
			if bottom, ok := frame.Get(x, 2*cy+1); ok && 2*cy+1 < frame.Height() {
				style = style.Background(rgb(bottom))
			}
			s.screen.SetContent(x, cy, halfBlock, nil, style)
		}
	}
	s.screen.Show()
}

// Direction maps arrow keys and WASD to a facing.
func Direction(ev *tcell.EventKey) (core.Rotation, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.Up, true
	case tcell.KeyDown:
		return core.Down, true
	case tcell.KeyLeft:
		return core.Left, true
	case tcell.KeyRight:
		return core.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return core.Up, true
		case 's', 'S':
			return core.Down, true
		case 'a', 'A':
			return core.Left, true
		case 'd', 'D':
			return core.Right, true
		}
	}
	return core.Up, false
}

// IsQuit reports whether ev asks to leave: Escape, Ctrl-C or q.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Run drives sc until ctx is done or a quit key is pressed. The scene ticks
// at tps while frames are drawn at a fixed rate. Events are read by a
// goroutine that stays blocked in PollEvent after Run returns; the caller
// must call Fini on the screen to release it.
func (s *Surface) Run(ctx context.Context, sc *scene.Scene, tps int) error {
	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()
	step := core.NewFixedStep(tps)

	s.Present(sc.Frame())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventKey:
				if IsQuit(ev) {
					return nil
				}
				if dir, ok := Direction(ev); ok {
					sc.Move(dir, HeroStep)
				}
			}
		case <-ticker.C:
			for range maxCatchUp {
				if !step.ShouldStep() {
					break
				}
				sc.Tick()
			}
			s.Present(sc.Frame())
		}
	}
}
