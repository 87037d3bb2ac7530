// Package ui provides Tally's terminal user interface.
//
// The UI is a Bubble Tea program. Model holds the application state
// (state.App), the drawing surface and the render loop; Update reacts to five
// events (increment, decrement, reset, toggle animation, get random data)
// whether they arrive as keys or as mouse clicks on the rendered buttons.
//
// # Layout
//
// The main view is a single column: title, counter row, reset hint, the
// canvas, the two action buttons, the fetched text and a footer with short
// help. computeLayout places every clickable zone, and both View and the
// mouse handler use it.
//
// # Canvas rendering
//
// The 300×200 surface is downsampled to fit the terminal and drawn with
// half-block cells: the foreground colors the upper pixel and the background
// the lower one. Translucent pixels are composited onto the theme
// background. Rendered cells are cached by quantized color.
//
// # Overlays
//
//   - Help (h/?): key bindings from the key map; any key closes it.
//   - Console (L): the tail of the log file, scrollable with the viewport
//     keys; esc or L closes it.
//
// # Themes
//
// T cycles Nightfox, Kanagawa and Slate. The choice is saved to the prefs
// file and restored on the next start.
package ui
