package sim

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/san-kum/lifeterm/internal/life"
)

type Simulator struct {
	observers []Observer
}

func New() *Simulator {
	return &Simulator{observers: make([]Observer, 0)}
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run ticks g for cfg.Generations generations and records a sample for the
// starting population and for every generation after it. The grid is
// advanced in place.
func (s *Simulator) Run(ctx context.Context, g *life.Grid, cfg Config) (*Result, error) {
	if cfg.Generations <= 0 {
		return nil, fmt.Errorf("%w: generations must be positive, got %d", ErrInvalidRun, cfg.Generations)
	}

	result := &Result{
		Samples:   make([]Sample, 0, cfg.Generations+1),
		ExtinctAt: -1,
		RepeatAt:  -1,
	}
	seen := make(map[uint64]int, cfg.Generations+1)

	start := Sample{Generation: g.Generation(), Population: g.Population()}
	s.record(result, start, g)
	seen[fingerprint(g)] = 0
	if start.Population == 0 {
		result.ExtinctAt = 0
	}

	for i := 1; i <= cfg.Generations; i++ {
		select {
		case <-ctx.Done():
			result.Final = g.Cells()
			return result, &RunError{Generation: g.Generation(), Wrapped: ctx.Err()}
		default:
		}

		prev := make(map[life.Cell]struct{}, g.Population())
		for _, c := range g.Cells() {
			prev[c] = struct{}{}
		}

		g.Tick()
		result.GenerationsRun++

		births := 0
		for _, c := range g.Cells() {
			if _, ok := prev[c]; !ok {
				births++
			}
		}
		survivors := g.Population() - births
		sample := Sample{
			Generation: g.Generation(),
			Population: g.Population(),
			Births:     births,
			Deaths:     len(prev) - survivors,
		}
		s.record(result, sample, g)

		if sample.Population == 0 && result.ExtinctAt < 0 {
			result.ExtinctAt = i
		}

		fp := fingerprint(g)
		if first, ok := seen[fp]; ok && result.RepeatAt < 0 {
			result.RepeatAt = i
			result.Period = i - first
			if cfg.StopOnRepeat {
				break
			}
		}
		seen[fp] = i
	}

	result.Final = g.Cells()
	return result, nil
}

func (s *Simulator) record(r *Result, sample Sample, g *life.Grid) {
	r.Samples = append(r.Samples, sample)
	for _, o := range s.observers {
		o.OnGeneration(sample, g)
	}
}

// fingerprint hashes the live population independently of insertion order.
func fingerprint(g *life.Grid) uint64 {
	cells := g.Cells()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	h := fnv.New64a()
	var buf [16]byte
	for _, c := range cells {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return h.Sum64()
}
