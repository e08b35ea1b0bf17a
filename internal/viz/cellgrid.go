package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/dotmatrix/internal/display"
)

// CellGrid is a Display over terminal character cells, used as the backing
// surface of the live view. Each cell covers pxPerCell x 2*pxPerCell pixels
// (terminal cells are about twice as tall as wide) and holds the grayscale
// level last painted there, plus an optional text overlay rune.
type CellGrid struct {
	cols, rows int
	sx, sy     int
	levels     [][]int
	text       [][]rune
	textColor  [][]string
}

func NewCellGrid(pw, ph, pxPerCell int) *CellGrid {
	if pxPerCell < 1 {
		pxPerCell = 1
	}
	sx, sy := pxPerCell, pxPerCell*2
	cols, rows := (pw+sx-1)/sx, (ph+sy-1)/sy
	g := &CellGrid{cols: cols, rows: rows, sx: sx, sy: sy}
	g.levels = make([][]int, rows)
	g.text = make([][]rune, rows)
	g.textColor = make([][]string, rows)
	for y := range g.levels {
		g.levels[y] = make([]int, cols)
		g.text[y] = make([]rune, cols)
		g.textColor[y] = make([]string, cols)
	}
	return g
}

func (g *CellGrid) Size() (int, int) { return g.cols * g.sx, g.rows * g.sy }

func (g *CellGrid) FillRect(x, y, w, h int, c color.Color) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	level := display.Level(c)
	full := w >= g.cols*g.sx && h >= g.rows*g.sy
	for cy := y / g.sy; cy <= (y+h-1)/g.sy; cy++ {
		if cy < 0 || cy >= g.rows {
			continue
		}
		for cx := x / g.sx; cx <= (x+w-1)/g.sx; cx++ {
			if cx < 0 || cx >= g.cols {
				continue
			}
			g.levels[cy][cx] = level
			if full {
				g.text[cy][cx] = 0
			}
		}
	}
	return nil
}

func (g *CellGrid) DrawText(x, y int, text string, c color.Color, size int) error {
	cy := y / g.sy
	if cy < 0 || cy >= g.rows {
		return nil
	}
	hex := display.GrayHex(display.Level(c))
	if cc, ok := colorful.MakeColor(c); ok {
		hex = cc.Hex()
	}
	cx := x / g.sx
	for i, r := range text {
		if cx+i < 0 || cx+i >= g.cols {
			continue
		}
		g.text[cy][cx+i] = r
		g.textColor[cy][cx+i] = hex
	}
	return nil
}

// View renders the grid as styled terminal lines.
func (g *CellGrid) View() string {
	var b strings.Builder
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if r := g.text[y][x]; r != 0 {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(g.textColor[y][x])).Render(string(r)))
				continue
			}
			hex := display.GrayHex(g.levels[y][x])
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("█"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
