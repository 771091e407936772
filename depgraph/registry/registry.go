// Package registry wires the language modules to the classifier and
// dispatches extraction to the right module.
package registry

import (
	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	"github.com/LegacyCodeHQ/depmap/depgraph/languages/ecmascript"
	"github.com/LegacyCodeHQ/depmap/depgraph/languages/java"
	"github.com/LegacyCodeHQ/depmap/depgraph/languages/php"
	"github.com/LegacyCodeHQ/depmap/depgraph/languages/python"
)

var modules = []langsupport.Module{
	ecmascript.Module{},
	java.Module{},
	php.Module{},
	python.Module{},
}

// LanguageSupport describes one supported language family and the file
// extensions that map to it.
type LanguageSupport struct {
	Name       string
	Extensions []string
}

// Modules returns supported language modules in deterministic order.
func Modules() []langsupport.Module {
	return append([]langsupport.Module(nil), modules...)
}

// ModuleForLanguage returns the module registered for lang.
func ModuleForLanguage(lang langsupport.Language) (langsupport.Module, bool) {
	for _, module := range modules {
		if module.Language() == lang {
			return module, true
		}
	}
	return nil, false
}

// SupportedLanguages returns every supported language and its extensions.
func SupportedLanguages() []LanguageSupport {
	languages := make([]LanguageSupport, len(modules))
	for i, module := range modules {
		languages[i] = LanguageSupport{
			Name:       module.Name(),
			Extensions: append([]string(nil), module.Extensions()...),
		}
	}
	return languages
}

// IsSupportedFile reports whether any module extracts imports from filePath.
func IsSupportedFile(filePath string) bool {
	_, ok := ModuleForLanguage(langsupport.Classify(filePath))
	return ok
}
