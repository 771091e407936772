// Package formatters renders a dependency graph result as text.
package formatters

import "github.com/LegacyCodeHQ/depmap/depgraph"

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts a dependency graph result to a formatted string representation.
	Format(result *depgraph.Result, opts FormatOptions) (string, error)
}
