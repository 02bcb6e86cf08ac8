package automation

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/lifeterm/internal/config"
	"github.com/san-kum/lifeterm/internal/seed"
	"github.com/san-kum/lifeterm/internal/sim"
)

const scenarioYAML = `
name: smoke
description: a still life and an oscillator
steps:
  - name: lonely block
    seeds:
      - {pattern: block, x: 4, y: 4}
    width: 10
    height: 10
    generations: 5
    stop_on_repeat: true
  - preset: pulsar
    width: 32
    height: 32
    generations: 6
    save: true
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if sc.Name != "smoke" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	var progress strings.Builder
	results, err := RunScenario(context.Background(), sc, &progress)
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	block := results[0].Result
	if block.Status() != "still from 0" {
		t.Errorf("block status = %q", block.Status())
	}

	pulsar := results[1]
	if pulsar.Scene.Name != "pulsar" {
		t.Errorf("preset step should be named after the preset, got %q", pulsar.Scene.Name)
	}
	if pulsar.Result.Period != 3 {
		t.Errorf("pulsar period = %d", pulsar.Result.Period)
	}
	if !pulsar.Step.Save {
		t.Error("save flag should survive loading")
	}

	if !strings.Contains(progress.String(), "Running step 2/2: pulsar") {
		t.Errorf("unexpected progress %q", progress.String())
	}
}

func TestLoadScenarioRejectsBadSteps(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, "steps:\n  - seeds: [{pattern: spaceship}]\n"))
	if !errors.Is(err, seed.ErrUnknownPattern) {
		t.Errorf("expected ErrUnknownPattern, got %v", err)
	}

	_, err = LoadScenario(writeScenario(t, "steps:\n  - width: 10\n"))
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	_, err = LoadScenario(writeScenario(t, "steps:\n  - preset: nowhere\n"))
	if !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestStepSceneDefaults(t *testing.T) {
	sc, err := ScenarioStep{Seeds: []config.Placement{{Pattern: "glider", X: 3, Y: 3}}}.Scene()
	if err != nil {
		t.Fatal(err)
	}
	if sc.Width != 64 || sc.Height != 64 || sc.Name != "glider" {
		t.Errorf("unexpected defaults %+v", sc)
	}
}

func TestRunSweep(t *testing.T) {
	sweep := &SizeSweep{Pattern: seed.Blinker, MinSize: 2, MaxSize: 10, NumSteps: 3, Generations: 10}
	results, err := RunSweep(context.Background(), sweep, io.Discard)
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	sizes := []uint{2, 6, 10}
	for i, r := range results {
		if r.Size != sizes[i] {
			t.Errorf("step %d size = %d, want %d", i, r.Size, sizes[i])
		}
	}
	if results[2].Status != "period 2 from 0" {
		t.Errorf("blinker on a roomy grid should oscillate, got %q", results[2].Status)
	}
	if results[0].FinalPop >= 3 {
		t.Errorf("blinker clipped to 2x2 should shrink, got %d", results[0].FinalPop)
	}

	_, err = RunSweep(context.Background(), &SizeSweep{MinSize: 5, MaxSize: 1, NumSteps: 2}, io.Discard)
	if !errors.Is(err, sim.ErrInvalidRun) {
		t.Errorf("expected ErrInvalidRun, got %v", err)
	}
}
