package graph

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/LegacyCodeHQ/depmap/depgraph"
	"github.com/LegacyCodeHQ/depmap/depgraph/registry"
	"github.com/LegacyCodeHQ/depmap/internal/config"
)

// Analysis is one dependency graph run with the context needed to render it.
type Analysis struct {
	Source *Source
	Result *depgraph.Result
	// BytesRead maps each fetched file to its size.
	BytesRead map[string]int
}

// Analyzer runs dependency analysis with one configuration. It keeps the
// extraction cache between runs, so repeated analysis of a mostly unchanged
// tree only parses changed files.
type Analyzer struct {
	cfg        *config.Config
	logger     *slog.Logger
	extractors *registry.Extractors
}

// NewAnalyzer creates an Analyzer for cfg.
func NewAnalyzer(cfg *config.Config, logger *slog.Logger) (*Analyzer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	extractors, err := registry.NewExtractors(logger, cfg.Analysis.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Analyzer{cfg: cfg, logger: logger, extractors: extractors}, nil
}

// Analyze builds the dependency graph of path, or of path's repository at
// commit when commit is set. Non-empty targets restrict which files are
// analyzed; a target naming a directory selects every file below it.
func (a *Analyzer) Analyze(path, commit string, targets []string) (*Analysis, error) {
	source, err := OpenSource(path, commit, a.cfg.Analysis.SkipDirs, a.logger)
	if err != nil {
		return nil, err
	}

	selected, err := selectTargets(source, targets)
	if err != nil {
		return nil, err
	}
	if len(targets) > 0 && len(selected) == 0 {
		return nil, fmt.Errorf("no files found for %s", strings.Join(targets, ", "))
	}

	sizes := newReadSizes()
	opts := []depgraph.Option{
		depgraph.WithLogger(a.logger),
		depgraph.WithExtractor(a.extractors),
		depgraph.WithWorkers(a.cfg.Analysis.Workers),
		depgraph.WithAliasConfig(a.cfg.Analysis.AliasConfig),
		depgraph.WithSourceRoots(a.cfg.Analysis.SourceRoots...),
	}
	if len(selected) > 0 {
		opts = append(opts, depgraph.WithTargets(selected...))
	}

	result, err := depgraph.BuildDependencyGraph(source.Files, sizes.wrap(source.Reader), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}

	return &Analysis{Source: source, Result: result, BytesRead: sizes.snapshot()}, nil
}

// selectTargets maps user paths onto the source's files. A path naming a
// directory expands to every file below it.
func selectTargets(source *Source, targets []string) ([]string, error) {
	if len(targets) == 0 {
		return nil, nil
	}

	resolver, err := NewPathResolver(source.Root)
	if err != nil {
		return nil, err
	}

	var selected []string
	for _, target := range targets {
		repoPath, err := resolver.Resolve(RawPath(target))
		if err != nil {
			return nil, err
		}
		selected = append(selected, expandTarget(source.Files, repoPath.String())...)
	}
	return selected, nil
}

func expandTarget(files []string, target string) []string {
	if target == "" {
		return files
	}

	prefix := target + "/"
	var matched []string
	for _, file := range files {
		if file == target || strings.HasPrefix(file, prefix) {
			matched = append(matched, file)
		}
	}
	return matched
}
