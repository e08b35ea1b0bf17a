package display

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Display is the drawing surface the animation renders onto. Implementations
// cover a full-screen terminal (Screen), an in-memory pixel buffer
// (Framebuffer), and a character-cell grid for the live TUI.
type Display interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h int, c color.Color) error
	// DrawText draws text with its top-left corner at (x, y). Backends
	// without font support may approximate or ignore size.
	DrawText(x, y int, text string, c color.Color, size int) error
}

// Gray converts an integer grayscale level to an opaque color. Levels are
// clamped to [0, 255].
func Gray(level int) color.Color {
	return color.Gray{Y: clampByte(level)}
}

// GrayHex returns the #rrggbb hex form of a grayscale level, for terminal
// backends that take string colors.
func GrayHex(level int) string {
	v := float64(clampByte(level)) / 255.0
	return colorful.Color{R: v, G: v, B: v}.Hex()
}

// ParseHex parses a #rrggbb config color.
func ParseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Level collapses a color back to an 8-bit grayscale value.
func Level(c color.Color) int {
	return int(color.GrayModel.Convert(c).(color.Gray).Y)
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
