// Package langsupport defines the contracts shared by the per-language import
// extractors: the language classifier, the extractor interface and the set of
// repo-relative paths used as the resolution oracle.
package langsupport

import (
	"path"
	"sort"
)

// Language identifies a family of source files sharing one import syntax.
type Language string

const (
	Unsupported Language = ""
	ECMAScript  Language = "ecmascript"
	Python      Language = "python"
	Java        Language = "java"
	PHP         Language = "php"
)

// String returns the display name of the language family.
func (l Language) String() string {
	switch l {
	case ECMAScript:
		return "JavaScript/TypeScript"
	case Python:
		return "Python"
	case Java:
		return "Java"
	case PHP:
		return "PHP"
	default:
		return "Unsupported"
	}
}

var languageByExtension = map[string]Language{
	".js":   ECMAScript,
	".jsx":  ECMAScript,
	".ts":   ECMAScript,
	".tsx":  ECMAScript,
	".mjs":  ECMAScript,
	".py":   Python,
	".java": Java,
	".php":  PHP,
}

// Classify maps a file path to its language family by extension.
// Unknown extensions map to Unsupported.
func Classify(filePath string) Language {
	return languageByExtension[path.Ext(filePath)]
}

// ExtensionsOf returns the sorted extensions classified as lang.
func ExtensionsOf(lang Language) []string {
	var extensions []string
	for ext, l := range languageByExtension {
		if l == lang && lang != Unsupported {
			extensions = append(extensions, ext)
		}
	}
	sort.Strings(extensions)
	return extensions
}
