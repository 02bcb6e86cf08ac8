package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/lifeterm/internal/life"
)

// Style sets the colors and cell size of board exports.
type Style struct {
	Scale      float64
	Background string
	Live       string
	Dead       string
}

var DefaultStyle = Style{
	Scale:      8,
	Background: "#0a0a0a",
	Live:       "#00ffff",
	Dead:       "#1a1a2e",
}

// GridToSVG draws every live cell of g as a square. Dead cells get a thin
// outline so the board extent stays visible.
func GridToSVG(g *life.Grid, st Style) string {
	if g == nil {
		return ""
	}
	if st.Scale <= 0 {
		st.Scale = DefaultStyle.Scale
	}

	width := float64(g.Width()) * st.Scale
	height := float64(g.Height()) * st.Scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, st.Background)

	if st.Dead != "" {
		fmt.Fprintf(&sb, `<rect width="%.0f" height="%.0f" fill="none" stroke="%s"/>
`, width, height, st.Dead)
	}

	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", st.Live)
	inset := st.Scale * 0.1
	for _, c := range g.Cells() {
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(c.X)*st.Scale+inset, float64(c.Y)*st.Scale+inset, st.Scale-2*inset, st.Scale-2*inset)
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline scaled to width x height, with 10%
// padding on the value axis. It returns "" for fewer than two points.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	stepX := float64(width) / float64(len(values)-1)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
