package matrix

import (
	"testing"

	"github.com/san-kum/dotmatrix/internal/config"
)

func TestBuildBlocks_GridCount(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"default 7x5", 7, 5},
		{"single block", 1, 1},
		{"wide", 2, 10},
		{"tall", 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Rows, cfg.Cols = tt.rows, tt.cols
			blocks := buildBlocks(cfg)

			if len(blocks) != tt.rows*tt.cols {
				t.Fatalf("expected %d blocks, got %d", tt.rows*tt.cols, len(blocks))
			}
			for i, b := range blocks {
				if b.ID != i {
					t.Errorf("block %d has id %d", i, b.ID)
				}
				for j, d := range b.Dots {
					if d == nil {
						t.Fatalf("block %d missing dot %d", i, j)
					}
				}
			}
		})
	}
}

func TestBuildBlocks_DefaultGeometry(t *testing.T) {
	// With the default config: block footprint (6-1)*6+4 = 34px, gap 12px,
	// grid 218x310px centered on 240x320, so block 0 centers at (28, 22).
	blocks := buildBlocks(config.DefaultConfig())

	b := blocks[0]
	if b.CenterX != 28 || b.CenterY != 22 {
		t.Errorf("block 0 center = (%d,%d), want (28,22)", b.CenterX, b.CenterY)
	}
	// Up-left dot: center minus offset 8, minus half the 12px dot size.
	if d := b.Dots[0]; d.X != 14 || d.Y != 8 {
		t.Errorf("block 0 dot 0 = (%d,%d), want (14,8)", d.X, d.Y)
	}

	// Step between neighbors is footprint+gap = 46px.
	if dx := blocks[1].CenterX - blocks[0].CenterX; dx != 46 {
		t.Errorf("horizontal step = %d, want 46", dx)
	}
	if dy := blocks[5].CenterY - blocks[0].CenterY; dy != 46 {
		t.Errorf("vertical step = %d, want 46", dy)
	}
}

func TestBuildBlocks_DotSymmetry(t *testing.T) {
	cfg := config.DefaultConfig()
	blocks := buildBlocks(cfg)

	for _, b := range blocks {
		for _, d := range b.Dots {
			cx := d.X + cfg.DotSize/2
			cy := d.Y + cfg.DotSize/2
			if abs(cx-b.CenterX) != cfg.SuperDotOffset || abs(cy-b.CenterY) != cfg.SuperDotOffset {
				t.Fatalf("block %d dot center (%d,%d) not offset %d from (%d,%d)",
					b.ID, cx, cy, cfg.SuperDotOffset, b.CenterX, b.CenterY)
			}
			if d.Size != cfg.DotSize {
				t.Fatalf("block %d dot size %d, want %d", b.ID, d.Size, cfg.DotSize)
			}
		}
	}
}

func TestBuildBlocks_Deterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	a, b := buildBlocks(cfg), buildBlocks(cfg)
	for i := range a {
		if a[i].CenterX != b[i].CenterX || a[i].CenterY != b[i].CenterY {
			t.Fatalf("layout not deterministic at block %d", i)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
