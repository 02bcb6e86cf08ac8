package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/lifeterm/internal/seed"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTickInterval  = 100 * time.Millisecond
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultCellHeight    = 1
	DefaultMoveStep      = 1
	DefaultFastMoveStep  = 5
	DefaultTheme         = "cyberpunk"
	DefaultGlyphs        = "emoji"
	DefaultDataDir       = ".lifeterm"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Glyph sets understood by the terminal shell.
var GlyphSets = []string{"emoji", "blocks", "ascii"}

type Config struct {
	TickInterval  time.Duration `yaml:"tick_interval"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	CellHeight    int           `yaml:"cell_height"`
	MoveStep      uint          `yaml:"move_step"`
	FastMoveStep  uint          `yaml:"fast_move_step"`
	Theme         string        `yaml:"theme"`
	Glyphs        string        `yaml:"glyphs"`
	Pattern       string        `yaml:"pattern"`
	DataDir       string        `yaml:"data_dir"`
	DebugLog      string        `yaml:"debug_log"`
	Scene         []Placement   `yaml:"scene"`
}

// Placement puts a catalog pattern at an origin when a session starts.
type Placement struct {
	Pattern string `yaml:"pattern"`
	X       uint   `yaml:"x"`
	Y       uint   `yaml:"y"`
}

func DefaultConfig() *Config {
	return &Config{
		TickInterval:  DefaultTickInterval,
		FrameInterval: DefaultFrameInterval,
		CellHeight:    DefaultCellHeight,
		MoveStep:      DefaultMoveStep,
		FastMoveStep:  DefaultFastMoveStep,
		Theme:         DefaultTheme,
		Glyphs:        DefaultGlyphs,
		Pattern:       seed.SingleCell.String(),
		DataDir:       DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks value ranges and that every named pattern exists. Theme
// names are checked by the shell, which owns the theme table.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: frame_interval must be positive, got %s", ErrInvalidConfig, c.FrameInterval)
	}
	if c.CellHeight < 1 {
		return fmt.Errorf("%w: cell_height must be at least 1, got %d", ErrInvalidConfig, c.CellHeight)
	}
	if !knownGlyphs(c.Glyphs) {
		return fmt.Errorf("%w: glyphs %q (available: %v)", ErrInvalidConfig, c.Glyphs, GlyphSets)
	}
	if _, err := seed.Parse(c.Pattern); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for i, p := range c.Scene {
		if _, err := seed.Parse(p.Pattern); err != nil {
			return fmt.Errorf("%w: scene[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// StartPattern returns the configured initial pattern, SingleCell if the
// name is unknown.
func (c *Config) StartPattern() seed.Pattern {
	p, err := seed.Parse(c.Pattern)
	if err != nil {
		return seed.SingleCell
	}
	return p
}

func knownGlyphs(name string) bool {
	for _, g := range GlyphSets {
		if g == name {
			return true
		}
	}
	return false
}
