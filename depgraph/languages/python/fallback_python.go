package python

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
)

var (
	fromImportPattern  = regexp.MustCompile(`^\s*from\s+(\.*[\w.]*)\s+import\s+(.+)$`)
	plainImportPattern = regexp.MustCompile(`^\s*import\s+([\w.]+(?:\s+as\s+\w+)?(?:\s*,\s*[\w.]+(?:\s+as\s+\w+)?)*)`)
)

// ScanImports finds imports with line-anchored patterns. Parenthesized name
// lists spanning several lines only contribute their first line.
func ScanImports(sourceCode []byte) []string {
	var set langsupport.ImportSet

	for _, line := range strings.Split(string(sourceCode), "\n") {
		line = strings.TrimRight(line, "\r")
		if m := fromImportPattern.FindStringSubmatch(line); m != nil {
			addFromImport(m[1], splitNames(m[2]), &set)
			continue
		}
		if m := plainImportPattern.FindStringSubmatch(line); m != nil {
			addPlainImports(splitNames(m[1]), &set)
		}
	}

	return set.Items()
}

func splitNames(list string) []string {
	if i := strings.Index(list, "#"); i >= 0 {
		list = list[:i]
	}
	list = strings.NewReplacer("(", "", ")", "", "\\", "").Replace(list)

	var names []string
	for _, part := range strings.Split(list, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		names = append(names, fields[0])
	}
	return names
}

func (e *Extractor) scanSafely(sourceCode []byte, filePath string, parseErr error) (imports []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("python import pattern scan failed", "path", filePath, "panic", fmt.Sprint(r))
			imports, err = nil, &langsupport.ExtractionError{
				Path:     filePath,
				Parse:    parseErr,
				Fallback: fmt.Errorf("pattern scan panicked: %v", r),
			}
		}
	}()
	return e.scan(sourceCode), nil
}
