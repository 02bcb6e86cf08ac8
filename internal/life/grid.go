package life

// Seed expands a named arrangement of cells relative to an origin.
type Seed interface {
	Cells(origin Cell) []Cell
}

// Grid is a bounded Game of Life board. Live cells are kept in a set for
// neighbour lookups plus an insertion-ordered list that drives iteration, so
// a tick only visits live cells and their neighbours.
//
// Grid is not safe for concurrent use.
type Grid struct {
	width, height uint
	generation    uint64
	cells         map[Cell]struct{}
	order         []Cell
	preview       map[Cell]struct{}
}

// New returns an empty grid. A zero-area grid is valid and never holds cells.
func New(width, height uint) *Grid {
	return &Grid{
		width:   width,
		height:  height,
		cells:   make(map[Cell]struct{}),
		order:   make([]Cell, 0),
		preview: make(map[Cell]struct{}),
	}
}

// Width and Height are the grid bounds in cells.
func (g *Grid) Width() uint  { return g.width }
func (g *Grid) Height() uint { return g.height }

// Generation counts ticks since the grid was created or last cleared.
func (g *Grid) Generation() uint64 { return g.generation }

// Population is the number of live cells.
func (g *Grid) Population() int { return len(g.order) }

// Alive reports whether c is part of the live population.
func (g *Grid) Alive(c Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// Previewed reports whether c is part of the preview overlay.
func (g *Grid) Previewed(c Cell) bool {
	_, ok := g.preview[c]
	return ok
}

// Cells returns the live population in insertion order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.order))
	copy(out, g.order)
	return out
}

// Preview returns the preview overlay in no particular order.
func (g *Grid) Preview() []Cell {
	out := make([]Cell, 0, len(g.preview))
	for c := range g.preview {
		out = append(out, c)
	}
	return out
}

// Add marks c live. Adding a live cell, or a cell outside the grid, is a no-op.
func (g *Grid) Add(c Cell) {
	if !c.In(g.width, g.height) {
		return
	}
	if _, ok := g.cells[c]; ok {
		return
	}
	g.cells[c] = struct{}{}
	g.order = append(g.order, c)
}

// Seed commits the cells of s placed at origin and drops the preview.
// Pattern cells outside the grid are clipped, so afterwards the live cells
// are the pattern's cells that fall inside the bounds.
func (g *Grid) Seed(s Seed, origin Cell) {
	for _, c := range s.Cells(origin) {
		g.Add(c)
	}
	clear(g.preview)
}

// SetPreview replaces the preview overlay with the cells of s placed at
// origin. The live population is left alone.
func (g *Grid) SetPreview(s Seed, origin Cell) {
	clear(g.preview)
	for _, c := range s.Cells(origin) {
		if c.In(g.width, g.height) {
			g.preview[c] = struct{}{}
		}
	}
}

// ClearPreview drops the preview overlay.
func (g *Grid) ClearPreview() { clear(g.preview) }

// Clear empties the population and the preview. Dimensions are kept.
func (g *Grid) Clear() {
	clear(g.cells)
	clear(g.preview)
	g.order = g.order[:0]
	g.generation = 0
}

// Resize rebuilds the grid at the new dimensions, keeping the live cells that
// still fit. Cells outside the new bounds are dropped and the preview is
// discarded. Resizing to the current dimensions does nothing.
func (g *Grid) Resize(width, height uint) {
	if width == g.width && height == g.height {
		return
	}
	next := New(width, height)
	next.generation = g.generation
	for _, c := range g.order {
		next.Add(c)
	}
	*g = *next
}

// Tick advances one generation. The next population is built from a frozen
// view of the current one: a live cell survives with 2 or 3 live neighbours
// and a dead cell is born with exactly 3. Only live cells and their in-bounds
// neighbours are evaluated. The preview is discarded.
func (g *Grid) Tick() {
	next := New(g.width, g.height)
	next.generation = g.generation + 1
	for _, c := range g.order {
		if n := g.neighbours(c); n == 2 || n == 3 {
			next.Add(c)
		}
		g.eachNeighbour(c, func(nb Cell) {
			if g.neighbours(nb) == 3 {
				next.Add(nb)
			}
		})
	}
	*g = *next
}

func (g *Grid) neighbours(c Cell) int {
	count := 0
	g.eachNeighbour(c, func(nb Cell) {
		if _, ok := g.cells[nb]; ok {
			count++
		}
	})
	return count
}

// eachNeighbour visits the in-bounds cells of the 8-neighbourhood of c.
func (g *Grid) eachNeighbour(c Cell, fn func(Cell)) {
	if g.width == 0 || g.height == 0 {
		return
	}
	xMin, xMax := c.Offset(-1, 0).X, min(c.Offset(1, 0).X, g.width-1)
	yMin, yMax := c.Offset(0, -1).Y, min(c.Offset(0, 1).Y, g.height-1)
	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			if x == c.X && y == c.Y {
				continue
			}
			fn(Cell{X: x, Y: y})
		}
	}
}
