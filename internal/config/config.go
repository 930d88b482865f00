package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MinParticipants and MaxParticipants bound the supported group size.
// Counts are validated here and at the CLI boundary; the schedule
// package itself stays total over any input.
const (
	MinParticipants = 3
	MaxParticipants = 24
)

// Config describes one tournament run.
type Config struct {
	// Name is an optional display name, used for the default output
	// file name when set.
	Name string `yaml:"name"`

	// Participants is an optional explicit roster. When present it
	// replaces the generated letter labels and its length is the
	// participant count.
	Participants []string `yaml:"participants"`

	// Output is an optional default path for the generated workbook.
	Output string `yaml:"output"`
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// ValidateCount checks a participant count against the supported range,
// with a distinct message per failure mode.
func ValidateCount(count int) error {
	if count < MinParticipants {
		return fmt.Errorf("at least %d participants are required, got %d", MinParticipants, count)
	}
	if count > MaxParticipants {
		return fmt.Errorf("no more than %d participants are supported, got %d", MaxParticipants, count)
	}
	return nil
}

// reservedNames are cell values the workbook layout uses as markers;
// a participant with one of these names would corrupt re-validation.
var reservedNames = map[string]bool{
	"Match Order": true,
	"Results":     true,
	"1P":          true,
	"2P":          true,
	"vs":          true,
	"-":           true,
	"Wins":        true,
	"Points":      true,
	"Rank":        true,
}

func (c *Config) validate() error {
	if len(c.Participants) == 0 {
		return nil
	}

	if err := ValidateCount(len(c.Participants)); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, p := range c.Participants {
		if p == "" {
			return fmt.Errorf("participant names must not be empty")
		}
		if reservedNames[p] {
			return fmt.Errorf("participant name %q is reserved for the workbook layout", p)
		}
		if seen[p] {
			return fmt.Errorf("participant %q appears more than once", p)
		}
		seen[p] = true
	}
	return nil
}
