package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/depmap/depgraph"
)

// JSONFormatter formats dependency graphs as JSON.
type JSONFormatter struct{}

type jsonGraph struct {
	Files        []string              `json:"files"`
	Dependencies []depgraph.Edge       `json:"dependencies"`
	Diagnostics  []depgraph.Diagnostic `json:"diagnostics"`
}

// Format converts the dependency graph to JSON format.
// The opts parameter is accepted for interface compatibility but not used.
func (f *JSONFormatter) Format(result *depgraph.Result, _ FormatOptions) (string, error) {
	doc := jsonGraph{
		Files:        []string{},
		Dependencies: []depgraph.Edge{},
		Diagnostics:  []depgraph.Diagnostic{},
	}
	if result != nil {
		doc.Files = append(doc.Files, result.Files...)
		doc.Dependencies = append(doc.Dependencies, result.Edges...)
		doc.Diagnostics = append(doc.Diagnostics, result.Diagnostics...)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
