package langsupport

import "log/slog"

// Module describes pluggable language support.
type Module interface {
	Name() string
	Language() Language
	Extensions() []string
	NewExtractor(logger *slog.Logger) Extractor
}
