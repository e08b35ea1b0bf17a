// Package matrix implements the flickering dot-block animation: a grid of
// blocks, four dots each, where blocks belonging to the active shape flicker
// in a high brightness range against a dimly flickering background.
package matrix

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strconv"
	"time"

	"github.com/san-kum/dotmatrix/internal/config"
	"github.com/san-kum/dotmatrix/internal/display"
)

// Matrix owns the block collection and drives per-frame updates against a
// display. It is single-threaded: all methods must be called from one
// goroutine.
type Matrix struct {
	cfg     *config.Config
	disp    display.Display
	blocks  []*Block
	rng     *rand.Rand
	shape   string
	bg      color.Color
	idColor color.Color
}

// Displays that buffer cell updates (tcell) expose Show to flush.
type shower interface{ Show() }

func New(cfg *config.Config, disp display.Display) (*Matrix, error) {
	if disp == nil {
		return nil, ErrNoDisplay
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, err := display.ParseHex(cfg.BGColor)
	if err != nil {
		return nil, fmt.Errorf("bg_color: %w", err)
	}
	idc, err := display.ParseHex(cfg.IDColor)
	if err != nil {
		return nil, fmt.Errorf("id_color: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Matrix{
		cfg:     cfg,
		disp:    disp,
		blocks:  buildBlocks(cfg),
		rng:     rand.New(rand.NewSource(seed)),
		shape:   "none",
		bg:      bg,
		idColor: idc,
	}, nil
}

// Blocks exposes the block collection. Callers must not mutate it.
func (m *Matrix) Blocks() []*Block { return m.blocks }

// Shape returns the name of the currently highlighted shape.
func (m *Matrix) Shape() string { return m.shape }

// DotCount returns the total number of dots.
func (m *Matrix) DotCount() int { return 4 * len(m.blocks) }

// InitDisplay clears the screen to the background color and draws every dot
// once, plus block ids when enabled.
func (m *Matrix) InitDisplay() {
	w, h := m.disp.Size()
	if err := m.disp.FillRect(0, 0, w, h, m.bg); err != nil {
		log.Printf("matrix: initial clear failed: %v", err)
	}
	level := display.Level(m.bg)
	for _, b := range m.blocks {
		for _, d := range b.Dots {
			m.drawDot(b.ID, d, level)
		}
	}
	m.drawIDs()
	m.flush()
}

// SetTargetShape switches the highlighted shape. "none" clears all
// highlighting. An unknown name returns ErrUnknownShape and leaves the
// previous highlighting untouched. Blocks dropping out of the shape are
// redrawn immediately at a low-class brightness so the transition is crisp
// instead of waiting for the random sampling to reach them.
func (m *Matrix) SetTargetShape(name string) error {
	ids, ok := m.cfg.Shapes[name]
	if !ok && name != "none" {
		return fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	member := make(map[int]bool, len(ids))
	for _, id := range ids {
		member[id] = true
	}
	for _, b := range m.blocks {
		want := member[b.ID]
		if b.Highlighted && !want {
			b.Highlighted = false
			m.redrawBlockLow(b)
			continue
		}
		b.Highlighted = want
	}
	m.shape = name
	m.flush()
	return nil
}

// UpdateFrame advances the animation one frame. Each dot is an independent
// Bernoulli trial with its class's update fraction; selected dots are redrawn
// at a fresh uniform brightness inside the class range. Geometry and
// membership are never touched.
func (m *Matrix) UpdateFrame() {
	for _, b := range m.blocks {
		p, lo, hi := m.classOf(b)
		for _, d := range b.Dots {
			if m.rng.Float64() >= p {
				continue
			}
			m.drawDot(b.ID, d, m.randLevel(lo, hi))
		}
	}
	if m.cfg.ShowIDs {
		m.drawIDs()
	}
	m.flush()
}

// Cleanup paints the whole display in the background color, wiping all dot
// imagery. Safe to call repeatedly; a draw failure is logged, not returned.
func (m *Matrix) Cleanup() {
	w, h := m.disp.Size()
	if err := m.disp.FillRect(0, 0, w, h, m.bg); err != nil {
		log.Printf("matrix: cleanup clear failed: %v", err)
	}
	m.flush()
}

func (m *Matrix) classOf(b *Block) (p float64, lo, hi int) {
	if b.Highlighted {
		return m.cfg.UpdatePercentageHigh, m.cfg.HighBrightnessMin, m.cfg.HighBrightnessMax
	}
	return m.cfg.UpdatePercentageLow, m.cfg.LowBrightnessMin, m.cfg.LowBrightnessMax
}

func (m *Matrix) randLevel(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + m.rng.Intn(hi-lo+1)
}

// drawDot paints one dot and records the drawn brightness. A failed draw is
// logged and the stored brightness kept, since the prior pixels persist.
func (m *Matrix) drawDot(blockID int, d *Dot, level int) {
	if err := m.disp.FillRect(d.X, d.Y, d.Size, d.Size, display.Gray(level)); err != nil {
		log.Printf("matrix: draw dot in block %d at (%d,%d): %v", blockID, d.X, d.Y, err)
		return
	}
	d.Brightness = level
}

func (m *Matrix) redrawBlockLow(b *Block) {
	for _, d := range b.Dots {
		m.drawDot(b.ID, d, m.randLevel(m.cfg.LowBrightnessMin, m.cfg.LowBrightnessMax))
	}
}

func (m *Matrix) drawIDs() {
	if !m.cfg.ShowIDs {
		return
	}
	for _, b := range m.blocks {
		if err := m.disp.DrawText(b.CenterX, b.CenterY, strconv.Itoa(b.ID), m.idColor, m.cfg.IDFontSize); err != nil {
			log.Printf("matrix: draw id %d: %v", b.ID, err)
		}
	}
}

func (m *Matrix) flush() {
	if s, ok := m.disp.(shower); ok {
		s.Show()
	}
}
