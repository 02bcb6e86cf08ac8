package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/lifeterm/internal/life"
)

var ErrInvalidRun = errors.New("sim: invalid run configuration")

// Sample describes one generation of a run.
type Sample struct {
	Generation uint64 `json:"generation"`
	Population int    `json:"population"`
	Births     int    `json:"births"`
	Deaths     int    `json:"deaths"`
}

type Observer interface {
	OnGeneration(s Sample, g *life.Grid)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(s Sample, g *life.Grid)

func (f ObserverFunc) OnGeneration(s Sample, g *life.Grid) { f(s, g) }

type Config struct {
	Generations  int
	StopOnRepeat bool
}

func DefaultConfig() Config {
	return Config{Generations: 200}
}

type Result struct {
	Samples        []Sample
	GenerationsRun int
	// ExtinctAt is the first generation with no live cells, -1 if the
	// population never died out.
	ExtinctAt int
	// RepeatAt is the generation whose population matched an earlier one,
	// -1 if no repeat was seen. Period is the distance between the two.
	RepeatAt int
	Period   int
	Final    []life.Cell
}

// Populations returns the population of every sample, ready for plotting.
func (r *Result) Populations() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = float64(s.Population)
	}
	return out
}

func (r *Result) MaxPopulation() int {
	m := 0
	for _, s := range r.Samples {
		m = max(m, s.Population)
	}
	return m
}

func (r *Result) MeanPopulation() float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	sum := 0
	for _, s := range r.Samples {
		sum += s.Population
	}
	return float64(sum) / float64(len(r.Samples))
}

// Status summarises how the run ended.
func (r *Result) Status() string {
	switch {
	case r.ExtinctAt >= 0:
		return fmt.Sprintf("extinct at %d", r.ExtinctAt)
	case r.RepeatAt >= 0 && r.Period == 1:
		return fmt.Sprintf("still from %d", r.RepeatAt-1)
	case r.RepeatAt >= 0:
		return fmt.Sprintf("period %d from %d", r.Period, r.RepeatAt-r.Period)
	default:
		return "active"
	}
}

// RunError wraps an error with the generation it happened at.
type RunError struct {
	Generation uint64
	Wrapped    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("generation %d: %v", e.Generation, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
