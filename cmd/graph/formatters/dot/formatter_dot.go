package dot

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/LegacyCodeHQ/depmap/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/depmap/depgraph"
)

// Formatter formats dependency graphs as Graphviz DOT.
type Formatter struct{}

// Format converts the dependency graph to Graphviz DOT format.
func (f *Formatter) Format(result *depgraph.Result, opts formatters.FormatOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=%q;\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	files := result.Files
	nodeNames := formatters.BuildNodeNames(files)
	extensionColors := formatters.ExtensionColors(files)
	majorityExtension, hasMultipleExtensions := formatters.MajorityExtension(files)

	for _, file := range files {
		ext := path.Ext(file)
		color := "white"
		if hasMultipleExtensions && ext != majorityExtension {
			if extColor, ok := extensionColors[ext]; ok {
				color = extColor
			}
		}
		sb.WriteString(fmt.Sprintf("  %q [label=%q, style=filled, fillcolor=%s];\n", file, nodeNames[file], color))
	}
	if len(files) > 0 && len(result.Edges) > 0 {
		sb.WriteString("\n")
	}

	adjacency := result.AdjacencyList()
	for _, file := range files {
		for _, dep := range adjacency[file] {
			sb.WriteString(fmt.Sprintf("  %q -> %q;\n", file, dep))
		}
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

// GenerateURL creates a GraphvizOnline URL with the DOT graph embedded.
func (f *Formatter) GenerateURL(output string) string {
	encoded := url.PathEscape(output)
	return fmt.Sprintf("https://dreampuf.github.io/GraphvizOnline/?engine=dot#%s", encoded)
}
