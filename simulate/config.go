package simulate

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/histfilter/localizer"
	"github.com/katalvlaran/histfilter/world"
)

// DefaultSensorAccuracy is the probability of reading the true color.
const DefaultSensorAccuracy = 0.9

// DefaultSteps is the run length used when a scenario omits steps.
const DefaultSteps = 20

// Config is a simulation scenario.
type Config struct {
	// Grid rows, one rune per cell (or whitespace-separated labels).
	Grid []string `yaml:"grid"`
	// PHit and PMiss are the filter's sensor weights.
	PHit  float64 `yaml:"p_hit"`
	PMiss float64 `yaml:"p_miss"`
	// Blurring is the filter's motion blur factor in [0,1].
	Blurring float64 `yaml:"blurring"`
	// SensorAccuracy is the probability the robot reads its true cell color.
	SensorAccuracy float64 `yaml:"sensor_accuracy"`
	Seed           uint64  `yaml:"seed"`
	// Start is the robot's initial (row, col).
	Start world.Cell `yaml:"start"`
	Steps int        `yaml:"steps"`
}

// DefaultConfig returns a Config with every numeric field at its default.
// Grid is left empty.
func DefaultConfig() Config {
	return Config{
		PHit:           localizer.DefaultPHit,
		PMiss:          localizer.DefaultPMiss,
		Blurring:       localizer.DefaultBlur,
		SensorAccuracy: DefaultSensorAccuracy,
		Steps:          DefaultSteps,
	}
}

// ParseConfig decodes a YAML scenario over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses the scenario at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig(%s): %w", path, err)
	}

	return cfg, nil
}

// World builds the grid described by c.Grid.
func (c Config) World() (world.Grid, error) {
	return world.FromStrings(c.Grid...)
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	g, err := c.World()
	if err != nil {
		return fmt.Errorf("grid: %w: %w", ErrInvalidConfig, err)
	}
	if err = (localizer.SensorModel{PHit: c.PHit, PMiss: c.PMiss}).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !inUnit(c.Blurring) {
		return fmt.Errorf("blurring %v: %w", c.Blurring, ErrInvalidConfig)
	}
	if !inUnit(c.SensorAccuracy) {
		return fmt.Errorf("sensor_accuracy %v: %w", c.SensorAccuracy, ErrInvalidConfig)
	}
	if !g.InBounds(c.Start.Row, c.Start.Col) {
		return fmt.Errorf("start %v outside %dx%d grid: %w", c.Start, g.Rows(), g.Cols(), ErrInvalidConfig)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps %d: %w", c.Steps, ErrInvalidConfig)
	}

	return nil
}

func inUnit(v float64) bool { return !math.IsNaN(v) && v >= 0 && v <= 1 }
