// Package ui provides the marquee terminal interface built on Bubble Tea.
//
// # Architecture Overview
//
// The interface has two screens, chosen entirely by the coordinator's
// snapshot: the discover list when nothing is selected and the detail view
// while a movie is selected. The UI never fetches on its own; it forwards
// key presses to state.Coordinator and re-renders whatever snapshot arrives.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key dispatch and Run
//   - list.go: card building and the list pane
//   - detail.go: the detail body shown in a scrollable viewport
//   - header.go: status bar, command bar and titled boxes
//   - help.go: key binding overlay
//   - theme.go, style_helpers.go: palettes and background-safe styling
//
// # Event Flow
//
//  1. Init mounts the coordinator and starts listening for snapshots
//  2. Each snapshotMsg replaces the model's snapshot and re-arms the listener
//  3. enter selects the highlighted movie; esc clears the selection
//  4. Views are pure functions of the snapshot, cursor and theme
//
// # Key Bindings
//
//   - j/k, g/G: move through the list (scroll in details)
//   - enter, v, l: open the highlighted movie
//   - esc, b, backspace: back to the list
//   - T: cycle theme (saved to prefs)
//   - h/?: help
//   - q, ctrl+c: quit
package ui
