package config

import "context"

type contextKey struct{}

// Default returns the configuration used when no file, environment or flag
// sets a value.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Workers:     DefaultWorkers,
			CacheSize:   DefaultCacheSize,
			SourceRoots: []string{},
			SkipDirs:    []string{},
		},
		Output: OutputConfig{Format: DefaultOutputFormat},
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// NewContext returns a copy of ctx carrying cfg.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// FromContext returns the configuration stored in ctx, or Default when none
// was stored.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(contextKey{}).(*Config); ok && cfg != nil {
			return cfg
		}
	}
	return Default()
}
