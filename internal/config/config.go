// Package config defines the application configuration, loaded from a
// YAML file and environment variables via cleanenv.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config is the root application configuration.
type Config struct {
	User       string           `yaml:"user"       env:"HAIKU_USER"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Quality    QualityConfig    `yaml:"quality"`
	Scan       ScanConfig       `yaml:"scan"`
	Watch      WatchConfig      `yaml:"watch"`
	Store      StoreConfig      `yaml:"store"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig holds syllable dictionary settings.
type DictionaryConfig struct {
	// ExtraPath names an optional "word count" file merged over the
	// embedded dictionary. Entries in it win on conflict.
	ExtraPath string `yaml:"extra_path" env:"HAIKU_DICT_EXTRA"`
}

// QualityConfig holds scoring settings.
type QualityConfig struct {
	// MinScore filters scan output; haikus scoring below it are dropped.
	MinScore float64 `yaml:"min_score" env:"HAIKU_MIN_SCORE" env-default:"0"`
	// Evaluators overrides the default evaluator set. A missing weight
	// defaults to 1; remove an entry entirely to disable an evaluator.
	Evaluators []EvaluatorWeight `yaml:"evaluators"`
}

// EvaluatorWeight names an evaluator and its weight in the quality mean.
type EvaluatorWeight struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// ScanConfig holds file scanning settings.
type ScanConfig struct {
	Extensions []string `yaml:"extensions" env:"HAIKU_SCAN_EXTENSIONS" env-default:".txt,.md,.text"`
	Workers    int      `yaml:"workers"    env:"HAIKU_SCAN_WORKERS"    env-default:"4"`
}

// WatchConfig holds watch-mode settings. Watched extensions come from
// the scan section.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" env:"HAIKU_WATCH_DEBOUNCE" env-default:"50ms"`
}

// StoreConfig holds rating store settings.
type StoreConfig struct {
	Path string `yaml:"path" env:"HAIKU_STORE_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"HAIKU_LOG_LEVEL" env-default:"info"`
}

// DBPath resolves the database location, defaulting to
// ~/.haikus/haikus.db.
func (c StoreConfig) DBPath() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".haikus", "haikus.db"), nil
}

// Validate checks the loaded configuration and fills derived defaults.
// Load calls it automatically.
func (c *Config) Validate() error {
	if c.Quality.MinScore < 0 || c.Quality.MinScore > 1 {
		return fmt.Errorf("quality.min_score must be in [0,1] (got %v)", c.Quality.MinScore)
	}
	for i := range c.Quality.Evaluators {
		ev := &c.Quality.Evaluators[i]
		if ev.Name == "" {
			return fmt.Errorf("quality.evaluators[%d] has no name", i)
		}
		if math.IsNaN(ev.Weight) || math.IsInf(ev.Weight, 0) {
			return fmt.Errorf("quality.evaluators[%d] (%s) weight is not finite", i, ev.Name)
		}
		if ev.Weight < 0 {
			return fmt.Errorf("quality.evaluators[%d] (%s) weight must be >= 0 (got %v)", i, ev.Name, ev.Weight)
		}
		if ev.Weight == 0 {
			ev.Weight = 1
		}
	}

	if c.Scan.Workers < 1 {
		return fmt.Errorf("scan.workers must be >= 1 (got %d)", c.Scan.Workers)
	}
	if len(c.Scan.Extensions) == 0 {
		return fmt.Errorf("scan.extensions must not be empty")
	}
	for _, ext := range c.Scan.Extensions {
		if ext == "" {
			return fmt.Errorf("scan.extensions contains an empty entry")
		}
	}

	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be >= 0 (got %v)", c.Watch.Debounce)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}
