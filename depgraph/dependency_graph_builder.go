package depgraph

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/LegacyCodeHQ/depmap/depgraph/alias"
	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	"github.com/LegacyCodeHQ/depmap/depgraph/registry"
	"github.com/LegacyCodeHQ/depmap/depgraph/resolve"
	"github.com/LegacyCodeHQ/depmap/vcs"
	graphlib "github.com/dominikbraun/graph"
	"golang.org/x/sync/errgroup"
)

// BuildDependencyGraph analyzes filePaths and returns the import edges
// between them. Only imports that resolve to a member of filePaths become
// edges. The contentReader is used for every read, the alias config included
// (filesystem, git commit, etc.).
//
// Files are processed independently. A file that cannot be read or parsed
// is reported in Result.Diagnostics and contributes no edges; the only
// returned errors are ErrMissingFileSet and ErrMissingContentReader.
func BuildDependencyGraph(filePaths []string, contentReader vcs.ContentReader, opts ...Option) (*Result, error) {
	if filePaths == nil {
		return nil, ErrMissingFileSet
	}
	if contentReader == nil {
		return nil, ErrMissingContentReader
	}

	options := defaultBuildOptions()
	for _, opt := range opts {
		opt(&options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	extractor := options.extractor
	if extractor == nil {
		extractors, err := registry.NewExtractors(logger, options.cacheSize)
		if err != nil {
			return nil, err
		}
		extractor = extractors
	}

	files := langsupport.NewFileSet(filePaths)
	read := recoveringReader(contentReader)

	var diagnostics []Diagnostic
	aliases, err := alias.Load(files, read, options.aliasConfig)
	if err != nil {
		logger.Warn("ignoring alias config", "error", err)
		diagnostics = append(diagnostics, configDiagnostic(err))
	}

	b := &builder{
		files:     files,
		read:      read,
		extractor: extractor,
		resolver:  resolve.New(files, aliases, resolve.WithSourceRoots(options.sourceRoots...)),
		logger:    logger,
	}

	sources := selectSources(files, options.targets, logger)
	results := make([]fileResult, len(sources))

	var group errgroup.Group
	group.SetLimit(options.workers)
	for i, source := range sources {
		group.Go(func() error {
			results[i] = b.processFile(source)
			return nil
		})
	}
	_ = group.Wait()

	result, err := assemble(files, results, diagnostics)
	if err != nil {
		return nil, err
	}
	result.Aliases = aliases

	logger.Debug("dependency graph built",
		"files", len(result.Files),
		"analyzed", len(sources),
		"edges", len(result.Edges),
		"diagnostics", len(result.Diagnostics))

	return result, nil
}

type builder struct {
	files     langsupport.FileSet
	read      vcs.ContentReader
	extractor langsupport.Extractor
	resolver  *resolve.Resolver
	logger    *slog.Logger
}

type fileResult struct {
	edges       []Edge
	diagnostics []Diagnostic
}

// processFile never panics; any failure is turned into a diagnostic for
// source.Path. Imports returned alongside an extraction error still become
// edges.
func (b *builder) processFile(source SourceFile) (result fileResult) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("import extraction failed", "path", source.Path, "panic", r)
			result = fileResult{diagnostics: []Diagnostic{{
				Path:    source.Path,
				Kind:    DiagnosticExtract,
				Message: fmt.Sprintf("import extraction failed: %v", r),
			}}}
		}
	}()

	content, err := b.read(source.Path)
	if err != nil {
		fetchErr := &FetchError{Path: source.Path, Err: err}
		b.logger.Warn("skipping unreadable file", "path", source.Path, "error", err)
		return fileResult{diagnostics: []Diagnostic{{
			Path:    source.Path,
			Kind:    DiagnosticFetch,
			Message: fetchErr.Error(),
		}}}
	}

	imports, err := b.extractor.ExtractImports(content, source.Path)
	if err != nil {
		b.logger.Warn("import extraction degraded", "path", source.Path, "error", err)
		result.diagnostics = append(result.diagnostics, Diagnostic{
			Path:    source.Path,
			Kind:    DiagnosticExtract,
			Message: err.Error(),
		})
	}

	for _, rawImport := range imports {
		resolved := b.resolver.Resolve(source.Path, rawImport)
		if !b.files.Has(resolved) {
			continue
		}
		result.edges = append(result.edges, Edge{From: source.Path, To: resolved})
	}
	return result
}

// selectSources returns the supported files to analyze in sorted order.
// Targets outside the file set are logged and ignored.
func selectSources(files langsupport.FileSet, targets []string, logger *slog.Logger) []SourceFile {
	paths := files.Paths()
	if len(targets) > 0 {
		var kept []string
		for _, target := range targets {
			normalized := langsupport.NormalizePath(target)
			if !files.Has(normalized) {
				logger.Warn("ignoring target outside the file set", "path", target)
				continue
			}
			kept = append(kept, normalized)
		}
		paths = langsupport.NewFileSet(kept).Paths()
	}

	sources := make([]SourceFile, 0, len(paths))
	for _, p := range paths {
		lang := langsupport.Classify(p)
		if lang == langsupport.Unsupported {
			continue
		}
		sources = append(sources, SourceFile{Path: p, Language: lang})
	}
	return sources
}

// assemble merges per-file results into one graph. Duplicate edges collapse.
func assemble(files langsupport.FileSet, results []fileResult, diagnostics []Diagnostic) (*Result, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())
	paths := files.Paths()
	for _, p := range paths {
		if err := g.AddVertex(p); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return nil, fmt.Errorf("failed to add %s to graph: %w", p, err)
		}
	}

	edges := []Edge{}
	for _, fr := range results {
		diagnostics = append(diagnostics, fr.diagnostics...)
		for _, edge := range fr.edges {
			err := g.AddEdge(edge.From, edge.To)
			if errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to add edge %s -> %s: %w", edge.From, edge.To, err)
			}
			edges = append(edges, edge)
		}
	}

	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}
	sortEdges(edges)
	sortDiagnostics(diagnostics)

	return &Result{
		Files:       paths,
		Edges:       edges,
		Diagnostics: diagnostics,
		Graph:       g,
	}, nil
}

// recoveringReader converts a panic inside contentReader into an error.
func recoveringReader(contentReader vcs.ContentReader) vcs.ContentReader {
	return func(filePath string) (content []byte, err error) {
		defer func() {
			if r := recover(); r != nil {
				content, err = nil, fmt.Errorf("content reader panicked: %v", r)
			}
		}()
		return contentReader(filePath)
	}
}

func configDiagnostic(err error) Diagnostic {
	diagnostic := Diagnostic{Kind: DiagnosticConfig, Message: err.Error()}
	var parseErr *alias.ConfigParseError
	if errors.As(err, &parseErr) {
		diagnostic.Path = parseErr.Path
	}
	return diagnostic
}
