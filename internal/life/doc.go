// Package life implements a bounded Conway's Game of Life board.
//
// The board keeps a sparse set of live cells plus a preview overlay that
// shows where a pattern would land before it is committed:
//
//   - [Grid.Seed]: commit a pattern at an origin
//   - [Grid.SetPreview]: show a pattern without committing it
//   - [Grid.Tick]: advance one generation
//   - [Grid.Resize]: change bounds, dropping cells that no longer fit
//   - [Grid.Render]: row-major text projection of cells and preview
//
// Edges are hard boundaries. Nothing wraps, and no cell is ever born
// outside the grid.
//
// # Example
//
//	g := life.New(40, 20)
//	g.Seed(seed.Glider, life.Cell{X: 5, Y: 2})
//	g.Tick()
//	fmt.Print(g)
//
// # Thread Safety
//
// Grid is NOT thread-safe. The caller owns it exclusively.
package life
