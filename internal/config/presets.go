package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Presets are named starting scenes. Coordinates assume a grid of at least
// 60x30 cells; anything beyond the real grid is dropped on placement.
var Presets = map[string][]Placement{
	"garden": {
		{Pattern: "block", X: 4, Y: 3},
		{Pattern: "beehive", X: 12, Y: 3},
		{Pattern: "loaf", X: 22, Y: 3},
		{Pattern: "boat", X: 32, Y: 3},
		{Pattern: "tub", X: 42, Y: 3},
	},
	"oscillators": {
		{Pattern: "blinker", X: 3, Y: 3},
		{Pattern: "toad", X: 10, Y: 3},
		{Pattern: "beacon", X: 18, Y: 2},
		{Pattern: "penta-decathlon", X: 28, Y: 6},
		{Pattern: "pulsar", X: 38, Y: 4},
	},
	"fleet": {
		{Pattern: "glider", X: 50, Y: 1},
		{Pattern: "lwss", X: 40, Y: 8},
		{Pattern: "mwss", X: 4, Y: 15},
		{Pattern: "hwss", X: 4, Y: 23},
	},
	"pulsar": {
		{Pattern: "pulsar", X: 8, Y: 4},
	},
}

// GetPreset returns a copy of the named scene.
func GetPreset(name string) ([]Placement, error) {
	scene, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	out := make([]Placement, len(scene))
	copy(out, scene)
	return out, nil
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
