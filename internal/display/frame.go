package display

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
)

// Framebuffer is an in-memory Display backed by an RGBA image. It is the
// backend for offline rendering (preview, record, bench) and for tests that
// need pixel-exact output.
type Framebuffer struct {
	img *image.RGBA
}

func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (f *Framebuffer) Size() (int, int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

func (f *Framebuffer) FillRect(x, y, w, h int, c color.Color) error {
	b := f.img.Bounds()
	for py := y; py < y+h; py++ {
		if py < b.Min.Y || py >= b.Max.Y {
			continue
		}
		for px := x; px < x+w; px++ {
			if px < b.Min.X || px >= b.Max.X {
				continue
			}
			f.img.Set(px, py, c)
		}
	}
	return nil
}

// DrawText is a no-op: the framebuffer has no font renderer. Block IDs only
// matter on interactive backends.
func (f *Framebuffer) DrawText(x, y int, text string, c color.Color, size int) error {
	return nil
}

// At reports the stored pixel, for tests and the braille preview.
func (f *Framebuffer) At(x, y int) color.Color { return f.img.At(x, y) }

// Snapshot returns a paletted grayscale copy suitable for a GIF frame.
func (f *Framebuffer) Snapshot() *image.Paletted {
	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = color.Gray{Y: uint8(i)}
	}
	b := f.img.Bounds()
	out := image.NewPaletted(b, pal)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetColorIndex(x, y, color.GrayModel.Convert(f.img.At(x, y)).(color.Gray).Y)
		}
	}
	return out
}

// Recorder accumulates framebuffer snapshots and writes them out as an
// animated GIF.
type Recorder struct {
	frames []*image.Paletted
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Capture(f *Framebuffer) {
	r.frames = append(r.frames, f.Snapshot())
}

func (r *Recorder) Len() int { return len(r.frames) }

// WriteGIF encodes the captured frames. delay is in hundredths of a second
// per frame.
func (r *Recorder) WriteGIF(path string, delay int) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("no frames captured")
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
