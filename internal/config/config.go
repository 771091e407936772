// Package config holds the depmap settings loaded from .depmap.yaml, the
// environment and flags.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/LegacyCodeHQ/depmap/internal/logging"
)

// Default values for configuration.
const (
	DefaultWorkers      = 0
	DefaultCacheSize    = 4096
	DefaultOutputFormat = "json"
	DefaultLogLevel     = "warn"
)

// OutputFormats lists the accepted values of output.format.
var OutputFormats = []string{"json", "dot", "mermaid"}

// Sentinel errors for configuration validation.
var (
	ErrInvalidWorkers      = errors.New("analysis.workers must not be negative")
	ErrInvalidCacheSize    = errors.New("analysis.cache_size must not be negative")
	ErrInvalidOutputFormat = errors.New("unsupported output.format")
)

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// AnalysisConfig holds dependency extraction knobs.
type AnalysisConfig struct {
	// Workers bounds concurrent file tasks. Zero means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
	// CacheSize is the number of memoized extraction results. Zero disables
	// the cache.
	CacheSize   int      `mapstructure:"cache_size"`
	AliasConfig string   `mapstructure:"alias_config"`
	SourceRoots []string `mapstructure:"source_roots"`
	SkipDirs    []string `mapstructure:"skip_dirs"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Validate checks that all configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.Analysis.Workers < 0 {
		return ErrInvalidWorkers
	}

	if c.Analysis.CacheSize < 0 {
		return ErrInvalidCacheSize
	}

	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("%w %q", ErrInvalidOutputFormat, c.Output.Format)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}
