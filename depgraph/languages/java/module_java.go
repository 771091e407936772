package java

import (
	"log/slog"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
)

type Module struct{}

func (Module) Name() string {
	return "Java"
}

func (Module) Language() langsupport.Language {
	return langsupport.Java
}

func (Module) Extensions() []string {
	return langsupport.ExtensionsOf(langsupport.Java)
}

func (Module) NewExtractor(logger *slog.Logger) langsupport.Extractor {
	return NewExtractor(logger)
}
