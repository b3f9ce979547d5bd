// Package viz draws the gallery in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 dots per cell
//   - [TopDown]: a gallery.Drawable that rasterises a frame onto a Canvas,
//     looking down at the range from above
//   - [Theme]: colour schemes for the play screen
package viz
