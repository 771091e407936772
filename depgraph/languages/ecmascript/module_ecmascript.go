package ecmascript

import (
	"log/slog"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
)

type Module struct{}

func (Module) Name() string {
	return "JavaScript/TypeScript"
}

func (Module) Language() langsupport.Language {
	return langsupport.ECMAScript
}

func (Module) Extensions() []string {
	return langsupport.ExtensionsOf(langsupport.ECMAScript)
}

func (Module) NewExtractor(logger *slog.Logger) langsupport.Extractor {
	return NewExtractor(logger)
}
