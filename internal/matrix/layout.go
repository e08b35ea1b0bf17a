package matrix

import "github.com/san-kum/dotmatrix/internal/config"

// baseDotSize is the fine-dot size the block footprint derives from. The
// visible dots are the four larger "super dots"; the footprint math keeps
// block spacing consistent with the underlying fine dot lattice.
const baseDotSize = 4

// buildBlocks computes every block center on the configured rows x cols grid
// and instantiates its four dots. Runs once, at construction. Extreme
// configurations produce degenerate but structurally valid geometry.
func buildBlocks(cfg *config.Config) []*Block {
	blockDim := (cfg.BlockSize-1)*cfg.DotSpacing + baseDotSize
	gap := cfg.BlockGapDots * cfg.DotSpacing
	step := blockDim + gap

	gridW := cfg.Cols*blockDim + (cfg.Cols-1)*gap
	gridH := cfg.Rows*blockDim + (cfg.Rows-1)*gap
	firstX := (cfg.ScreenWidth-gridW)/2 + baseDotSize/2
	firstY := (cfg.ScreenHeight-gridH)/2 + baseDotSize/2
	centerOff := (blockDim - baseDotSize) / 2

	blocks := make([]*Block, 0, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		cy := firstY + row*step + centerOff
		for col := 0; col < cfg.Cols; col++ {
			cx := firstX + col*step + centerOff
			b := &Block{
				ID:      row*cfg.Cols + col,
				CenterX: cx,
				CenterY: cy,
			}
			// Dots sit up-left, up-right, down-left, down-right of the center.
			for j := 0; j < 2; j++ {
				for i := 0; i < 2; i++ {
					dx, dy := -cfg.SuperDotOffset, -cfg.SuperDotOffset
					if i == 1 {
						dx = cfg.SuperDotOffset
					}
					if j == 1 {
						dy = cfg.SuperDotOffset
					}
					b.Dots[j*2+i] = &Dot{
						X:    cx + dx - cfg.DotSize/2,
						Y:    cy + dy - cfg.DotSize/2,
						Size: cfg.DotSize,
					}
				}
			}
			blocks = append(blocks, b)
		}
	}
	return blocks
}
