package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the gravassist CLI reads from its YAML file.
type Config struct {
	// Input file paths per puzzle
	Inputs InputsConfig `yaml:"inputs"`

	// Intcode run parameters
	Intcode IntcodeConfig `yaml:"intcode"`

	// Passcode search parameters
	Passcode PasscodeConfig `yaml:"passcode"`

	// Wire scan parameters
	Wires WiresConfig `yaml:"wires"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// InputsConfig locates the puzzle input files.
type InputsConfig struct {
	Fuel    string `yaml:"fuel"`
	Intcode string `yaml:"intcode"`
	Wires   string `yaml:"wires"`
}

// IntcodeConfig configures the gravity-assist program runs.
type IntcodeConfig struct {
	Noun     int `yaml:"noun"`      // part one patch for address 1
	Verb     int `yaml:"verb"`      // part one patch for address 2
	Target   int `yaml:"target"`    // part two output to search for
	MaxInput int `yaml:"max_input"` // inclusive upper bound for noun and verb
}

// PasscodeConfig configures the passcode count.
type PasscodeConfig struct {
	Range string `yaml:"range"`
}

// WiresConfig configures the crossing scan.
type WiresConfig struct {
	Workers int `yaml:"workers"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			Fuel:    "day_1_input.txt",
			Intcode: "day_2_input.txt",
			Wires:   "day_3_input.txt",
		},
		Intcode: IntcodeConfig{
			Noun:     12,
			Verb:     2,
			Target:   19690720,
			MaxInput: 99,
		},
		Passcode: PasscodeConfig{
			Range: "256310-732736",
		},
		Wires: WiresConfig{
			Workers: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields DefaultConfig.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects settings no solver can use.
func (c *Config) Validate() error {
	if c.Intcode.MaxInput < 0 {
		return fmt.Errorf("intcode.max_input must be non-negative, got %d", c.Intcode.MaxInput)
	}
	if c.Wires.Workers < 0 {
		return fmt.Errorf("wires.workers must be non-negative, got %d", c.Wires.Workers)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
