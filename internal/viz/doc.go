// Package viz renders spiral families in the terminal.
//
// The package builds on a Braille pixel canvas and the Bubble Tea framework:
//
//   - [Canvas]: Braille-based pixel canvas with a palette slot per cell
//   - [Camera]: perspective projection for scatter3d families
//   - [Viewer]: interactive pager over a family
//   - Theme selection with 4 built-in colour schemes
//
// # Key Bindings
//
//	←/→, h/l  - Previous/next spiral
//	↑/↓, k/j  - Tilt camera (3d families)
//	+/-       - Zoom
//	T         - Cycle themes
//	Q         - Quit
package viz
