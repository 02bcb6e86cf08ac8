// Package viz provides the interactive terminal shell for the Life board.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [App]: board, seed selection, cursor and tick pacing
//   - Theme selection with 5 built-in color schemes
//   - Optional population chart drawn with asciigraph
//
// # Key Bindings
//
//	Esc/Q        - Quit
//	0-9 A-F      - Select seed pattern (F selects the single cell)
//	Arrows       - Move cursor
//	Shift+Arrows - Move cursor 5 cells
//	Space/Insert - Place seed at cursor
//	P            - Play/Pause
//	Enter        - Tick once when paused, pause when playing
//	Delete       - Clear board
//	T            - Cycle color themes
//	G            - Toggle population chart
//
// # Mouse
//
// Moving the pointer previews the selected seed under it, a left click
// places it and the wheel steps through the catalog.
package viz
