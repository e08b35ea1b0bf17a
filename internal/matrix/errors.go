package matrix

import "errors"

// Domain errors for the animation core.
var (
	// ErrUnknownShape indicates a shape name absent from the configured table.
	ErrUnknownShape = errors.New("matrix: unknown shape")

	// ErrNoDisplay indicates construction without a drawing surface.
	ErrNoDisplay = errors.New("matrix: no display")
)
