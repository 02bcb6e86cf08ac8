package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/lifeterm/internal/life"
)

var (
	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	KeyName = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00aaaa")).
		Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

// blocks and ascii glyph sets are colored by the theme; emoji carry their
// own colors.
var (
	blockGlyphs = life.Glyphs{Empty: "██", Live: "██", Previewed: "██", LivePreviewed: "██"}
	glyphSets   = map[string]life.Glyphs{
		"emoji":  life.EmojiGlyphs,
		"blocks": blockGlyphs,
		"ascii":  life.ASCIIGlyphs,
	}
)

func glyphsFor(name string) life.Glyphs {
	if gl, ok := glyphSets[name]; ok {
		return gl
	}
	return life.EmojiGlyphs
}

func (t Theme) cellStyle(s life.CellState) lipgloss.Style {
	var c lipgloss.Color
	switch s {
	case life.Live:
		c = t.Live
	case life.Previewed:
		c = t.Preview
	case life.LivePreviewed:
		c = t.LivePreview
	default:
		c = t.Dead
	}
	return lipgloss.NewStyle().Foreground(c)
}

// renderBoard draws g with one glyph per cell. Runs of equal state in a row
// share one styled span.
func renderBoard(g *life.Grid, gl life.Glyphs, t Theme, colored bool) string {
	if !colored {
		return strings.TrimSuffix(g.Render(gl), "\n")
	}

	var b strings.Builder
	var run strings.Builder
	for y := uint(0); y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		cur := g.State(life.Cell{X: 0, Y: y})
		run.Reset()
		for x := uint(0); x < g.Width(); x++ {
			s := g.State(life.Cell{X: x, Y: y})
			if s != cur {
				b.WriteString(t.cellStyle(cur).Render(run.String()))
				run.Reset()
				cur = s
			}
			run.WriteString(gl.For(s))
		}
		if run.Len() > 0 {
			b.WriteString(t.cellStyle(cur).Render(run.String()))
		}
	}
	return b.String()
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b))).Bold(true)
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func hexColor(r, g, b int) string {
	clamp := func(v int) int { return min(max(v, 0), 255) }
	const hex = "0123456789abcdef"
	var sb strings.Builder
	sb.WriteByte('#')
	for _, v := range []int{clamp(r), clamp(g), clamp(b)} {
		sb.WriteByte(hex[v/16])
		sb.WriteByte(hex[v%16])
	}
	return sb.String()
}
