package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/lifeterm/internal/config"
	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/seed"
	"github.com/san-kum/lifeterm/internal/sim"
	"gopkg.in/yaml.v3"
)

// Scenario defines a scripted sequence of headless runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. Preset and Seeds may be
// combined; preset seeds are placed first.
type ScenarioStep struct {
	Name         string             `yaml:"name"`
	Preset       string             `yaml:"preset"`
	Seeds        []config.Placement `yaml:"seeds"`
	Width        uint               `yaml:"width"`
	Height       uint               `yaml:"height"`
	Generations  int                `yaml:"generations"`
	StopOnRepeat bool               `yaml:"stop_on_repeat"`
	Save         bool               `yaml:"save"`
}

// StepResult pairs a step with its finished run.
type StepResult struct {
	Step   ScenarioStep
	Scene  sim.Scene
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file and checks every step.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for i := range scenario.Steps {
		if _, err := scenario.Steps[i].Scene(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &scenario, nil
}

// Scene resolves the step's preset and seeds. Zero sizes default to 64x64.
func (st ScenarioStep) Scene() (sim.Scene, error) {
	sc := sim.Scene{Name: st.Name, Width: st.Width, Height: st.Height}
	if sc.Width == 0 {
		sc.Width = 64
	}
	if sc.Height == 0 {
		sc.Height = 64
	}

	placements := st.Seeds
	if st.Preset != "" {
		preset, err := config.GetPreset(st.Preset)
		if err != nil {
			return sim.Scene{}, err
		}
		placements = append(preset, st.Seeds...)
		if sc.Name == "" {
			sc.Name = st.Preset
		}
	}
	if len(placements) == 0 {
		return sim.Scene{}, fmt.Errorf("%w: step has no seeds", config.ErrInvalidConfig)
	}
	if sc.Name == "" {
		sc.Name = placements[0].Pattern
	}

	for _, p := range placements {
		pat, err := seed.Parse(p.Pattern)
		if err != nil {
			return sim.Scene{}, err
		}
		sc.Seeds = append(sc.Seeds, sim.Placement{Seed: pat, Origin: life.Cell{X: p.X, Y: p.Y}})
	}
	return sc, nil
}

func (st ScenarioStep) runConfig() sim.Config {
	cfg := sim.DefaultConfig()
	if st.Generations > 0 {
		cfg.Generations = st.Generations
	}
	cfg.StopOnRepeat = st.StopOnRepeat
	return cfg
}

// RunScenario executes all steps in order, writing progress to w. It stops
// at the first failing step and returns the results so far.
func RunScenario(ctx context.Context, scenario *Scenario, w io.Writer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		sc, err := step.Scene()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "Running step %d/%d: %s\n", i+1, len(scenario.Steps), sc.Name)

		result, err := sim.New().Run(ctx, sc.Build(), step.runConfig())
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Step: step, Scene: sc, Result: result})
	}

	return results, nil
}

// SizeSweep runs one pattern, centred, on square grids of growing size to
// show where the boundary stops affecting it.
type SizeSweep struct {
	Pattern     seed.Pattern
	MinSize     uint
	MaxSize     uint
	NumSteps    int
	Generations int
}

// SweepResult holds results from one grid size
type SweepResult struct {
	Size     uint
	Status   string
	MaxPop   int
	FinalPop int
}

// RunSweep executes a size sweep, writing progress to w.
func RunSweep(ctx context.Context, sweep *SizeSweep, w io.Writer) ([]SweepResult, error) {
	if sweep.NumSteps < 1 || sweep.MaxSize < sweep.MinSize {
		return nil, fmt.Errorf("%w: sweep needs at least one step and min <= max", sim.ErrInvalidRun)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	cfg := sim.Config{Generations: sweep.Generations, StopOnRepeat: true}

	for i := range sweep.NumSteps {
		size := sweep.MinSize
		if sweep.NumSteps > 1 {
			size += (sweep.MaxSize - sweep.MinSize) * uint(i) / uint(sweep.NumSteps-1)
		}

		g := life.New(size, size)
		g.Seed(sweep.Pattern, life.Cell{X: size / 2, Y: size / 2})

		result, err := sim.New().Run(ctx, g, cfg)
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			Size:     size,
			Status:   result.Status(),
			MaxPop:   result.MaxPopulation(),
			FinalPop: len(result.Final),
		})

		fmt.Fprintf(w, "Sweep %d/%d: size=%d\n", i+1, sweep.NumSteps, size)
	}

	return results, nil
}
