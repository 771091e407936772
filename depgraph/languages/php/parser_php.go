package php

import (
	"regexp"
	"strings"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
)

// usePattern matches top-level namespace imports. Indented "use" lines are
// trait uses inside class bodies and are deliberately not matched.
var usePattern = regexp.MustCompile(`(?m)^use\s+\\?([\w\\]+)(?:\s+as\s+\w+)?\s*;`)

// Extractor extracts namespace imports from PHP sources:
// "use App\Models\User as U;" yields "App/Models/User".
type Extractor struct{}

func (Extractor) ExtractImports(sourceCode []byte, _ string) ([]string, error) {
	var set langsupport.ImportSet
	for _, m := range usePattern.FindAllSubmatch(sourceCode, -1) {
		set.Add(NamespacePath(string(m[1])))
	}
	return set.Items(), nil
}

// NamespacePath converts a backslash separated PHP name to a slash separated
// path.
func NamespacePath(name string) string {
	return strings.ReplaceAll(strings.Trim(name, `\`), `\`, "/")
}
