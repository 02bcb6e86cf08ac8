package sim

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/seed"
)

func grid(w, h uint, p seed.Pattern, x, y uint) *life.Grid {
	g := life.New(w, h)
	g.Seed(p, life.Cell{X: x, Y: y})
	return g
}

func TestSimulatorRunBlinker(t *testing.T) {
	g := grid(5, 5, seed.Blinker, 1, 2)

	result, err := New().Run(context.Background(), g, Config{Generations: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Samples) != 11 {
		t.Errorf("expected 11 samples, got %d", len(result.Samples))
	}
	if result.GenerationsRun != 10 {
		t.Errorf("expected 10 generations, got %d", result.GenerationsRun)
	}
	if result.Period != 2 || result.RepeatAt != 2 {
		t.Errorf("expected period 2 at generation 2, got %d at %d", result.Period, result.RepeatAt)
	}
	if result.ExtinctAt != -1 {
		t.Errorf("blinker should not die out, got %d", result.ExtinctAt)
	}

	s := result.Samples[1]
	if s.Population != 3 || s.Births != 2 || s.Deaths != 2 {
		t.Errorf("unexpected first sample: %+v", s)
	}
	if g.Generation() != 10 {
		t.Errorf("grid should be advanced in place, generation %d", g.Generation())
	}
}

func TestSimulatorStatus(t *testing.T) {
	tests := []struct {
		name    string
		pattern seed.Pattern
		want    string
	}{
		{"lone cell", seed.SingleCell, "extinct at 1"},
		{"block", seed.Block, "still from 0"},
		{"blinker", seed.Blinker, "period 2 from 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid(8, 8, tt.pattern, 3, 3)
			result, err := New().Run(context.Background(), g, Config{Generations: 6})
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if got := result.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimulatorStopOnRepeat(t *testing.T) {
	g := grid(5, 5, seed.Blinker, 1, 2)

	result, err := New().Run(context.Background(), g, Config{Generations: 50, StopOnRepeat: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.GenerationsRun != 2 {
		t.Errorf("expected to stop after 2 generations, ran %d", result.GenerationsRun)
	}
	if len(result.Final) != 3 {
		t.Errorf("expected 3 final cells, got %d", len(result.Final))
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero generations", Config{Generations: 0}},
		{"negative generations", Config{Generations: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Run(context.Background(), life.New(3, 3), tt.cfg)
			if !errors.Is(err, ErrInvalidRun) {
				t.Errorf("expected ErrInvalidRun, got %v", err)
			}
		})
	}
}

func TestSimulatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := grid(10, 10, seed.Glider, 5, 2)
	result, err := New().Run(ctx, g, Config{Generations: 5})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var runErr *RunError
	if !errors.As(err, &runErr) || runErr.Generation != 0 {
		t.Errorf("expected RunError at generation 0, got %v", err)
	}
	if result == nil || len(result.Samples) != 1 {
		t.Errorf("expected the starting sample to be kept")
	}
}

func TestSimulatorObservers(t *testing.T) {
	var calls int
	s := New()
	s.AddObserver(ObserverFunc(func(sample Sample, g *life.Grid) {
		calls++
		if sample.Population != g.Population() {
			t.Errorf("sample population %d, grid %d", sample.Population, g.Population())
		}
	}))

	if _, err := s.Run(context.Background(), grid(6, 6, seed.Block, 1, 1), Config{Generations: 4}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 observations, got %d", calls)
	}
}

func TestResultStats(t *testing.T) {
	r := &Result{Samples: []Sample{{Population: 2}, {Population: 6}, {Population: 4}}}

	if r.MaxPopulation() != 6 {
		t.Errorf("MaxPopulation() = %d", r.MaxPopulation())
	}
	if r.MeanPopulation() != 4 {
		t.Errorf("MeanPopulation() = %f", r.MeanPopulation())
	}
	if pops := r.Populations(); len(pops) != 3 || pops[1] != 6 {
		t.Errorf("Populations() = %v", pops)
	}
	if (&Result{}).MeanPopulation() != 0 {
		t.Error("empty result should have zero mean")
	}
}

func TestCensus(t *testing.T) {
	scenes := []Scene{
		{Name: "cell", Width: 6, Height: 6, Seeds: []Placement{{Seed: seed.SingleCell, Origin: life.Cell{X: 2, Y: 2}}}},
		{Name: "block", Width: 6, Height: 6, Seeds: []Placement{{Seed: seed.Block, Origin: life.Cell{X: 2, Y: 2}}}},
		{Name: "toad", Width: 8, Height: 8, Seeds: []Placement{{Seed: seed.Toad, Origin: life.Cell{X: 3, Y: 3}}}},
	}

	var observed atomic.Int64
	results, err := Census(context.Background(), scenes, Config{Generations: 8},
		ObserverFunc(func(Sample, *life.Grid) { observed.Add(1) }))
	if err != nil {
		t.Fatalf("census failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].ExtinctAt != 1 {
		t.Errorf("single cell should die at 1, got %d", results[0].ExtinctAt)
	}
	if results[1].Period != 1 {
		t.Errorf("block should be still, got period %d", results[1].Period)
	}
	if results[2].Period != 2 {
		t.Errorf("toad should have period 2, got %d", results[2].Period)
	}
	if observed.Load() != 27 {
		t.Errorf("expected 27 observations, got %d", observed.Load())
	}
}

func TestCensusInvalidConfig(t *testing.T) {
	scenes := []Scene{{Name: "empty", Width: 3, Height: 3}}
	if _, err := Census(context.Background(), scenes, Config{}); !errors.Is(err, ErrInvalidRun) {
		t.Errorf("expected ErrInvalidRun, got %v", err)
	}
}

func TestSceneBuild(t *testing.T) {
	sc := Scene{Width: 4, Height: 4, Seeds: []Placement{
		{Seed: seed.Block, Origin: life.Cell{}},
		{Seed: seed.Block, Origin: life.Cell{X: 3, Y: 3}},
	}}
	g := sc.Build()
	if g.Population() != 5 {
		t.Errorf("expected 5 cells after clipping, got %d", g.Population())
	}
}
