package registry

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"path"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of extraction results kept in memory.
const DefaultCacheSize = 4096

// cacheKey includes the extension because the ECMAScript grammar is chosen
// per extension.
type cacheKey struct {
	extension string
	sum       [sha256.Size]byte
}

// Extractors dispatches each file to the extractor of its language family
// and memoizes results by content hash. It is safe for concurrent use.
type Extractors struct {
	byLanguage map[langsupport.Language]langsupport.Extractor
	cache      *lru.Cache[cacheKey, []string]
}

// NewExtractors creates one extractor per registered module. A cacheSize of
// zero or less disables memoization.
func NewExtractors(logger *slog.Logger, cacheSize int) (*Extractors, error) {
	if logger == nil {
		logger = slog.Default()
	}

	byLanguage := make(map[langsupport.Language]langsupport.Extractor, len(modules))
	for _, module := range modules {
		byLanguage[module.Language()] = module.NewExtractor(logger.With("language", string(module.Language())))
	}

	extractors := &Extractors{byLanguage: byLanguage}
	if cacheSize > 0 {
		cache, err := lru.New[cacheKey, []string](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create extraction cache: %w", err)
		}
		extractors.cache = cache
	}

	return extractors, nil
}

// ForLanguage returns the extractor used for lang. Unsupported languages get
// an extractor that never reports imports.
func (e *Extractors) ForLanguage(lang langsupport.Language) langsupport.Extractor {
	if extractor, ok := e.byLanguage[lang]; ok {
		return extractor
	}
	return langsupport.UnsupportedExtractor{}
}

// ExtractImports classifies filePath and runs the matching extractor.
// Degraded extractions are returned with their error and are not cached.
func (e *Extractors) ExtractImports(content []byte, filePath string) ([]string, error) {
	lang := langsupport.Classify(filePath)
	if lang == langsupport.Unsupported {
		return nil, nil
	}
	extractor := e.ForLanguage(lang)

	if e.cache == nil {
		return extractor.ExtractImports(content, filePath)
	}

	key := cacheKey{extension: path.Ext(filePath), sum: sha256.Sum256(content)}
	if imports, ok := e.cache.Get(key); ok {
		return append([]string(nil), imports...), nil
	}

	imports, err := extractor.ExtractImports(content, filePath)
	if err != nil {
		return imports, err
	}
	e.cache.Add(key, append([]string(nil), imports...))
	return imports, nil
}
