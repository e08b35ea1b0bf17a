// Package display defines the drawing surface the animation renders onto
// and the host-side backends: a tcell full-screen terminal, an in-memory
// framebuffer with GIF recording, and grayscale color helpers. Hardware
// backends implement [Display] out of tree.
package display
