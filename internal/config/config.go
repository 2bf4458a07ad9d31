package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"flexdate/internal/extractor"
	"flexdate/internal/scoring"
)

// Config carries the tunable parameters of extraction and scoring. The
// defaults reproduce the reference calibration; a YAML file overrides any
// subset of them.
type Config struct {
	Extractor struct {
		CenturyPivot int `yaml:"century_pivot"`
	} `yaml:"extractor"`
	Scoring scoring.Params `yaml:"scoring"`
}

// Default returns the built-in parameter set.
func Default() *Config {
	cfg := &Config{Scoring: scoring.DefaultParams()}
	cfg.Extractor.CenturyPivot = extractor.DefaultCenturyPivot
	return cfg
}

// LoadConfig builds a Config from defaults, an optional YAML file, and
// environment overrides, in that order. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Layer the YAML config over the defaults
	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// 3. Override with Environment Variables if present
	if pivot := os.Getenv("FLEXDATE_CENTURY_PIVOT"); pivot != "" {
		v, err := strconv.Atoi(pivot)
		if err != nil {
			return nil, fmt.Errorf("invalid FLEXDATE_CENTURY_PIVOT: %w", err)
		}
		cfg.Extractor.CenturyPivot = v
	}

	return cfg, nil
}
