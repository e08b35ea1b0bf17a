// Package viz provides terminal visualization for the dot matrix animation.
//
//   - [Model]: interactive Bubble Tea view with keyboard shape switching
//   - [CellGrid]: character-cell display backend the live view renders from
//   - [Canvas]: braille canvas for one-shot framebuffer previews
//
// # Key Bindings
//
//	Space   - Pause/Resume animation
//	Tab/←→  - Cycle shapes
//	R       - Reset display and counters
//	Q       - Quit (clears the screen)
package viz
