package sim

import (
	"context"
	"runtime"

	"github.com/san-kum/lifeterm/internal/life"
	"golang.org/x/sync/errgroup"
)

// Placement puts a seed at an origin.
type Placement struct {
	Seed   life.Seed
	Origin life.Cell
}

// Scene is a grid size plus the seeds committed before the first tick.
type Scene struct {
	Name   string
	Width  uint
	Height uint
	Seeds  []Placement
}

// Build returns a fresh grid with the scene's seeds committed.
func (sc Scene) Build() *life.Grid {
	g := life.New(sc.Width, sc.Height)
	for _, p := range sc.Seeds {
		g.Seed(p.Seed, p.Origin)
	}
	return g
}

// Census runs every scene on its own grid in parallel. Results are returned
// in scene order. The first failure cancels the remaining runs. Observers
// are shared by every run and must be safe for concurrent use.
func Census(ctx context.Context, scenes []Scene, cfg Config, observers ...Observer) ([]*Result, error) {
	results := make([]*Result, len(scenes))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	for i, sc := range scenes {
		eg.Go(func() error {
			s := New()
			for _, o := range observers {
				s.AddObserver(o)
			}
			res, err := s.Run(ctx, sc.Build(), cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
