package life

import "math"

// Cell is a grid coordinate. Cells compare by value.
type Cell struct {
	X uint
	Y uint
}

// Offset returns c moved by (dx, dy). Both axes saturate: a move below zero
// stops at 0 and a move past the largest coordinate stops there.
func (c Cell) Offset(dx, dy int) Cell {
	return Cell{X: saturate(c.X, dx), Y: saturate(c.Y, dy)}
}

// In reports whether c lies inside a width x height area anchored at (0,0).
func (c Cell) In(width, height uint) bool {
	return c.X < width && c.Y < height
}

func saturate(v uint, d int) uint {
	if d < 0 {
		n := uint(-d)
		if n > v {
			return 0
		}
		return v - n
	}
	n := uint(d)
	if v > math.MaxUint-n {
		return math.MaxUint
	}
	return v + n
}
