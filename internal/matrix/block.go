package matrix

// Dot is the smallest drawable unit: a fixed-position square whose only
// mutable attribute is the grayscale brightness last drawn.
type Dot struct {
	X, Y       int
	Size       int
	Brightness int
}

// Block groups the four dots placed around one grid cell center. Highlighted
// selects which brightness class the block's dots flicker in.
type Block struct {
	ID          int
	CenterX     int
	CenterY     int
	Dots        [4]*Dot
	Highlighted bool
}
