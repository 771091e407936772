package python

import (
	"log/slog"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
)

type Module struct{}

func (Module) Name() string {
	return "Python"
}

func (Module) Language() langsupport.Language {
	return langsupport.Python
}

func (Module) Extensions() []string {
	return langsupport.ExtensionsOf(langsupport.Python)
}

func (Module) NewExtractor(logger *slog.Logger) langsupport.Extractor {
	return NewExtractor(logger)
}
