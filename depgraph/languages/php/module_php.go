package php

import (
	"log/slog"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
)

type Module struct{}

func (Module) Name() string {
	return "PHP"
}

func (Module) Language() langsupport.Language {
	return langsupport.PHP
}

func (Module) Extensions() []string {
	return langsupport.ExtensionsOf(langsupport.PHP)
}

func (Module) NewExtractor(_ *slog.Logger) langsupport.Extractor {
	return Extractor{}
}
