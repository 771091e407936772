package langsupport

import "fmt"

// Extractor turns the raw text of one file into the import strings it
// references, as written. Anything an implementation cannot parse degrades to
// fewer (possibly zero) imports. A non-nil error reports that degradation;
// the returned imports are still usable.
type Extractor interface {
	ExtractImports(content []byte, filePath string) ([]string, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(content []byte, filePath string) ([]string, error)

func (f ExtractorFunc) ExtractImports(content []byte, filePath string) ([]string, error) {
	return f(content, filePath)
}

// UnsupportedExtractor is used for files no language module claims.
type UnsupportedExtractor struct{}

func (UnsupportedExtractor) ExtractImports(_ []byte, _ string) ([]string, error) {
	return nil, nil
}

// ExtractionError reports a file whose syntax tree and pattern scan both
// failed.
type ExtractionError struct {
	Path     string
	Parse    error
	Fallback error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("import extraction failed for %s: %v; pattern scan: %v", e.Path, e.Parse, e.Fallback)
}

func (e *ExtractionError) Unwrap() []error {
	return []error{e.Parse, e.Fallback}
}

// ImportSet collects import strings once each, in first-seen order.
type ImportSet struct {
	seen  map[string]bool
	items []string
}

// Add records imp unless it is empty or already present.
func (s *ImportSet) Add(imp string) {
	if imp == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[imp] {
		return
	}
	s.seen[imp] = true
	s.items = append(s.items, imp)
}

// Len reports the number of distinct imports.
func (s *ImportSet) Len() int {
	return len(s.items)
}

// Items returns the collected imports.
func (s *ImportSet) Items() []string {
	return s.items
}
