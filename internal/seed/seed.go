package seed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/lifeterm/internal/life"
)

var ErrUnknownPattern = errors.New("seed: unknown pattern")

// Category groups patterns by their long-run behaviour.
type Category int

const (
	Single Category = iota
	StillLife
	Oscillator
	Spaceship
)

func (c Category) String() string {
	switch c {
	case StillLife:
		return "still life"
	case Oscillator:
		return "oscillator"
	case Spaceship:
		return "spaceship"
	default:
		return "cell"
	}
}

// Pattern is one named catalog entry. Its value doubles as the selection
// index used by the terminal shell.
type Pattern int

const (
	SingleCell Pattern = iota

	// Still lifes do not change from one generation to the next.
	Block
	Beehive
	Loaf
	Boat
	Tub

	// Oscillators return to their original configuration after a finite
	// number of generations.
	Blinker
	Toad
	Beacon
	Pulsar
	PentaDecathlon

	// Spaceships translate themselves across the grid.
	Glider
	LWSS
	MWSS
	HWSS

	numPatterns
)

// MaxIndex is the highest selectable pattern index.
const MaxIndex = int(numPatterns) - 1

var names = [numPatterns]string{
	SingleCell:     "cell",
	Block:          "block",
	Beehive:        "beehive",
	Loaf:           "loaf",
	Boat:           "boat",
	Tub:            "tub",
	Blinker:        "blinker",
	Toad:           "toad",
	Beacon:         "beacon",
	Pulsar:         "pulsar",
	PentaDecathlon: "penta-decathlon",
	Glider:         "glider",
	LWSS:           "lwss",
	MWSS:           "mwss",
	HWSS:           "hwss",
}

// period is the number of generations after which an oscillator or a
// spaceship repeats its shape.
var period = [numPatterns]int{
	Blinker:        2,
	Toad:           2,
	Beacon:         2,
	Pulsar:         3,
	PentaDecathlon: 15,
	Glider:         4,
	LWSS:           4,
	MWSS:           4,
	HWSS:           4,
}

// ByIndex maps a selection index to a pattern. Indices outside 1..MaxIndex
// select SingleCell.
func ByIndex(i int) Pattern {
	if i < 1 || i > MaxIndex {
		return SingleCell
	}
	return Pattern(i)
}

// Next returns the index after i, wrapping to 0 past MaxIndex.
func Next(i int) int {
	if i >= MaxIndex || i < 0 {
		return 0
	}
	return i + 1
}

// Prev returns the index before i, wrapping to MaxIndex below 0.
func Prev(i int) int {
	if i <= 0 || i > MaxIndex {
		return MaxIndex
	}
	return i - 1
}

// All returns every pattern in index order.
func All() []Pattern {
	out := make([]Pattern, numPatterns)
	for i := range out {
		out[i] = Pattern(i)
	}
	return out
}

// Names returns the pattern names in index order.
func Names() []string {
	out := make([]string, numPatterns)
	copy(out, names[:])
	return out
}

// Parse looks a pattern up by name, ignoring case.
func Parse(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == key {
			return Pattern(i), nil
		}
	}
	return SingleCell, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

func (p Pattern) valid() bool { return p >= 0 && p < numPatterns }

func (p Pattern) String() string {
	if !p.valid() {
		return names[SingleCell]
	}
	return names[p]
}

func (p Pattern) Category() Category {
	switch {
	case p >= Block && p <= Tub:
		return StillLife
	case p >= Blinker && p <= PentaDecathlon:
		return Oscillator
	case p >= Glider && p <= HWSS:
		return Spaceship
	default:
		return Single
	}
}

// Period returns how many generations the pattern takes to repeat its
// shape. Still lifes and the single cell report 1 and 0 respectively.
func (p Pattern) Period() int {
	switch p.Category() {
	case StillLife:
		return 1
	case Single:
		return 0
	}
	return period[p]
}

// Cells places the pattern at origin. Offsets saturate at zero, so a pattern
// placed close to the top-left corner folds onto the axis.
func (p Pattern) Cells(origin life.Cell) []life.Cell {
	if !p.valid() {
		p = SingleCell
	}
	offs := layouts[p]
	out := make([]life.Cell, len(offs))
	for i, o := range offs {
		out[i] = origin.Offset(o.dx, o.dy)
	}
	return out
}
