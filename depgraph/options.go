package depgraph

import (
	"log/slog"
	"runtime"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	"github.com/LegacyCodeHQ/depmap/depgraph/registry"
)

type buildOptions struct {
	workers     int
	targets     []string
	logger      *slog.Logger
	extractor   langsupport.Extractor
	aliasConfig string
	sourceRoots []string
	cacheSize   int
}

// Option configures BuildDependencyGraph.
type Option func(*buildOptions)

func defaultBuildOptions() buildOptions {
	return buildOptions{
		workers:   runtime.GOMAXPROCS(0),
		cacheSize: registry.DefaultCacheSize,
	}
}

// WithWorkers bounds how many files are processed at once. Values below one
// fall back to GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(o *buildOptions) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// WithTargets restricts analysis to the given files. Every path of the file
// set still counts when resolving imports.
func WithTargets(targets ...string) Option {
	return func(o *buildOptions) {
		o.targets = append(o.targets, targets...)
	}
}

// WithLogger sets the logger for warnings raised during the run.
func WithLogger(logger *slog.Logger) Option {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// WithExtractor replaces the built-in language dispatch.
func WithExtractor(extractor langsupport.Extractor) Option {
	return func(o *buildOptions) {
		o.extractor = extractor
	}
}

// WithAliasConfig reads aliases from the named file instead of jsconfig.json
// or tsconfig.json.
func WithAliasConfig(configPath string) Option {
	return func(o *buildOptions) {
		o.aliasConfig = configPath
	}
}

// WithSourceRoots adds directories that bare imports are also resolved under.
func WithSourceRoots(roots ...string) Option {
	return func(o *buildOptions) {
		o.sourceRoots = append(o.sourceRoots, roots...)
	}
}

// WithCacheSize sets the number of memoized extraction results. Zero disables
// the cache.
func WithCacheSize(size int) Option {
	return func(o *buildOptions) {
		o.cacheSize = size
	}
}
