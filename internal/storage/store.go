package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/lifeterm/internal/sim"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Scene       string    `json:"scene"`
	Timestamp   time.Time `json:"timestamp"`
	Width       uint      `json:"width"`
	Height      uint      `json:"height"`
	Generations int       `json:"generations"`
	Status      string    `json:"status"`
	ExtinctAt   int       `json:"extinct_at"`
	Period      int       `json:"period"`
	MaxPop      int       `json:"max_population"`
	FinalPop    int       `json:"final_population"`
}

// Save writes metadata.json and population.csv for a finished run and
// returns the new run ID.
func (s *Store) Save(scene string, width, height uint, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", runName(scene), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Scene:       scene,
		Timestamp:   now,
		Width:       width,
		Height:      height,
		Generations: result.GenerationsRun,
		Status:      result.Status(),
		ExtinctAt:   result.ExtinctAt,
		Period:      result.Period,
		MaxPop:      result.MaxPopulation(),
		FinalPop:    len(result.Final),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "population.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"generation", "population", "births", "deaths"}); err != nil {
		return "", err
	}
	for _, smp := range result.Samples {
		row := []string{
			strconv.FormatUint(smp.Generation, 10),
			strconv.Itoa(smp.Population),
			strconv.Itoa(smp.Births),
			strconv.Itoa(smp.Deaths),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// runName turns a free-form scene name into a single path element. Anything
// other than letters, digits, '-' and '_' becomes '-'.
func runName(scene string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, scene)
	name = strings.Trim(name, "-")
	if name == "" {
		return "run"
	}
	return name
}

// runDir resolves a run ID inside the store. IDs that are not a single path
// element are reported as missing.
func (s *Store) runDir(runID string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || strings.ContainsAny(runID, `/\`) {
		return "", fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return filepath.Join(s.baseDir, runID), nil
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", runID, err)
	}
	return &meta, nil
}

// LoadSamples reads the per-generation samples of a run. Malformed rows are
// skipped.
func (s *Store) LoadSamples(runID string) ([]sim.Sample, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(dir, "population.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		gen, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			continue
		}
		vals := make([]int, 3)
		ok := true
		for j := range vals {
			if vals[j], err = strconv.Atoi(record[j+1]); err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		samples = append(samples, sim.Sample{Generation: gen, Population: vals[0], Births: vals[1], Deaths: vals[2]})
	}
	return samples, nil
}
