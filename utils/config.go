package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is the cause of every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation
type Config struct {
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	FrameRate        time.Duration `json:"frame_rate"`
	SlowFrameRate    time.Duration `json:"slow_frame_rate"`
	Slow             bool          `json:"slow"`
	Random           bool          `json:"random"`
	RandomSeed       int64         `json:"random_seed"`
	RandomDensity    float64       `json:"random_density"`
	Pattern          string        `json:"pattern"`
	StopThreshold    int           `json:"stop_threshold"`
	MaxGenerations   int           `json:"max_generations"`
	StopOnStagnation bool          `json:"stop_on_stagnation"`
	HistorySize      int           `json:"history_size"`
	Color            bool          `json:"color"`
	ClearScreen      bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            40,
		Height:           40,
		FrameRate:        100 * time.Millisecond,
		SlowFrameRate:    500 * time.Millisecond,
		Slow:             false,
		Random:           true,
		RandomSeed:       0, // seeded from the clock
		RandomDensity:    0.5,
		Pattern:          "glider",
		StopThreshold:    3,
		MaxGenerations:   0,
		StopOnStagnation: false,
		HistorySize:      5,
		Color:            true,
		ClearScreen:      true,
	}
}

// Interval returns the pause between generations
func (c Config) Interval() time.Duration {
	if c.Slow {
		return c.SlowFrameRate
	}
	return c.FrameRate
}

// Validate checks that the configuration describes a runnable simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0 || c.SlowFrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rates must not be negative")
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density %v outside [0, 1]", c.RandomDensity)
	case c.StopThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stop threshold %d is negative", c.StopThreshold)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations %d is negative", c.MaxGenerations)
	case c.StopOnStagnation && c.HistorySize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation detection needs a positive history size")
	case !c.Random && c.Pattern == "":
		return errors.Wrapf(ErrInvalidConfig, "[Validate] a pattern is required when random seeding is off")
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
