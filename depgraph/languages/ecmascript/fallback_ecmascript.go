package ecmascript

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
)

var importPatterns = []*regexp.Regexp{
	// import x from './x', import { a } from "./a", import './side-effect'
	regexp.MustCompile(`(?m)^\s*import\s+(?:[^;'"()]*?\bfrom\s*)?['"]([^'"\r\n]+)['"]`),
	// export * from './y', export { a } from './y'
	regexp.MustCompile(`(?m)^\s*export\s+[^;'"()]*?\bfrom\s*['"]([^'"\r\n]+)['"]`),
	regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"\r\n]+)['"]\s*\)`),
	regexp.MustCompile(`\bimport\s*\(\s*['"]([^'"\r\n]+)['"]\s*\)`),
}

type patternMatch struct {
	offset int
	value  string
}

// ScanImports finds module specifiers with line-anchored patterns instead of
// a syntax tree. It is best effort and reports matches in source order.
func ScanImports(sourceCode []byte) []string {
	var matches []patternMatch
	for _, pattern := range importPatterns {
		for _, loc := range pattern.FindAllSubmatchIndex(sourceCode, -1) {
			if len(loc) < 4 || loc[2] < 0 {
				continue
			}
			matches = append(matches, patternMatch{
				offset: loc[2],
				value:  string(sourceCode[loc[2]:loc[3]]),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].offset < matches[j].offset
	})

	var imports langsupport.ImportSet
	for _, m := range matches {
		imports.Add(m.value)
	}
	return imports.Items()
}

func (e *Extractor) scanSafely(sourceCode []byte, filePath string, parseErr error) (imports []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("import pattern scan failed", "path", filePath, "panic", fmt.Sprint(r))
			imports, err = nil, &langsupport.ExtractionError{
				Path:     filePath,
				Parse:    parseErr,
				Fallback: fmt.Errorf("pattern scan panicked: %v", r),
			}
		}
	}()
	return e.scan(sourceCode), nil
}
