package display

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Screen renders pixels onto a full-screen terminal via tcell. Pixels are
// mapped onto character cells with a fixed scale; terminal cells are roughly
// twice as tall as wide, so the vertical scale is double the horizontal one.
type Screen struct {
	screen tcell.Screen
	sx, sy int
	pw, ph int
}

// NewScreen initializes the terminal for a virtual pw x ph pixel surface.
// pxPerCell is the horizontal pixel-to-cell scale.
func NewScreen(pw, ph, pxPerCell int) (*Screen, error) {
	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := sc.Init(); err != nil {
		return nil, err
	}
	sc.Clear()
	if pxPerCell < 1 {
		pxPerCell = 1
	}
	return &Screen{
		screen: sc,
		sx:     pxPerCell,
		sy:     pxPerCell * 2,
		pw:     pw,
		ph:     ph,
	}, nil
}

func (s *Screen) Size() (int, int) { return s.pw, s.ph }

func (s *Screen) FillRect(x, y, w, h int, c color.Color) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	st := tcell.StyleDefault.Background(toTcell(c))
	for cy := y / s.sy; cy <= (y+h-1)/s.sy; cy++ {
		for cx := x / s.sx; cx <= (x+w-1)/s.sx; cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, st)
		}
	}
	return nil
}

func (s *Screen) DrawText(x, y int, text string, c color.Color, size int) error {
	st := tcell.StyleDefault.Foreground(toTcell(c))
	cx, cy := x/s.sx, y/s.sy
	for i, r := range text {
		s.screen.SetContent(cx+i, cy, r, nil, st)
	}
	return nil
}

// Show flushes pending cell updates to the terminal.
func (s *Screen) Show() { s.screen.Show() }

// Close restores the terminal.
func (s *Screen) Close() { s.screen.Fini() }

// PollQuit consumes terminal events on a goroutine and invokes stop once on
// q, Esc, or Ctrl-C. Under tcell's raw mode Ctrl-C arrives as a key event
// rather than SIGINT, so the loop cannot rely on signal delivery alone.
func (s *Screen) PollQuit(stop func()) {
	go func() {
		for {
			switch ev := s.screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					stop()
					return
				}
			case *tcell.EventResize:
				s.screen.Sync()
			case nil:
				return
			}
		}
	}()
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
