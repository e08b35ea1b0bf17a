package viz

import (
	"strings"

	"github.com/san-kum/dotmatrix/internal/display"
)

// Braille patterns: 2x4 dots per rune
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel canvas for printing a framebuffer to stdout.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set marks a pixel at (x, y) in sub-pixel coordinates. The canvas covers
// (Width*2) x (Height*4) sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// RenderFramebuffer downsamples a framebuffer into braille, lighting every
// pixel brighter than threshold.
func RenderFramebuffer(fb *display.Framebuffer, threshold int) string {
	pw, ph := fb.Size()
	c := NewCanvas((pw+1)/2, (ph+3)/4)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if display.Level(fb.At(x, y)) > threshold {
				c.Set(x, y)
			}
		}
	}
	return c.String()
}
