package life

import "strings"

// CellState combines live and preview membership of a coordinate.
type CellState int

const (
	Empty CellState = iota
	Live
	Previewed
	LivePreviewed
)

// State reports how c should be drawn.
func (g *Grid) State(c Cell) CellState {
	switch live, prev := g.Alive(c), g.Previewed(c); {
	case live && prev:
		return LivePreviewed
	case live:
		return Live
	case prev:
		return Previewed
	default:
		return Empty
	}
}

// Glyphs maps each CellState to the text printed for it.
type Glyphs struct {
	Empty         string
	Live          string
	Previewed     string
	LivePreviewed string
}

var (
	EmojiGlyphs = Glyphs{Empty: "⬜", Live: "⬛", Previewed: "🟦", LivePreviewed: "🟩"}
	ASCIIGlyphs = Glyphs{Empty: ".", Live: "#", Previewed: "+", LivePreviewed: "@"}
)

// For returns the glyph drawn for s; unknown states draw as Empty.
func (gl Glyphs) For(s CellState) string {
	switch s {
	case Live:
		return gl.Live
	case Previewed:
		return gl.Previewed
	case LivePreviewed:
		return gl.LivePreviewed
	default:
		return gl.Empty
	}
}

// Render draws the grid row by row, one glyph per cell and a newline after
// every row.
func (g *Grid) Render(gl Glyphs) string {
	var b strings.Builder
	for y := uint(0); y < g.height; y++ {
		for x := uint(0); x < g.width; x++ {
			b.WriteString(gl.For(g.State(Cell{X: x, Y: y})))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid with EmojiGlyphs.
func (g *Grid) String() string { return g.Render(EmojiGlyphs) }
