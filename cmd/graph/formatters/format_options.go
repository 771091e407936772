package formatters

// FormatOptions contains optional parameters for formatting dependency graphs.
type FormatOptions struct {
	// Label is an optional title for the graph, such as the project name and revision
	Label string
}
