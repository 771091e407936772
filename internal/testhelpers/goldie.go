// Package testhelpers holds shared golden-file setup for formatter tests.
package testhelpers

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// JSONGoldie returns a goldie instance for JSON output golden files.
func JSONGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.json"))
}

// DotGoldie returns a goldie instance for Graphviz output golden files.
func DotGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.dot"))
}

// MermaidGoldie returns a goldie instance for Mermaid output golden files.
func MermaidGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.mmd"))
}
