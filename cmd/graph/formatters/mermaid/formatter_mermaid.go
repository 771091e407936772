package mermaid

import (
	"fmt"
	"path"
	"strings"

	"github.com/LegacyCodeHQ/depmap/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/depmap/depgraph"
)

// Formatter formats dependency graphs as Mermaid.js flowcharts.
type Formatter struct{}

// Format converts the dependency graph to Mermaid.js flowchart format.
func (f *Formatter) Format(result *depgraph.Result, opts formatters.FormatOptions) (string, error) {
	var sb strings.Builder

	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}

	sb.WriteString("flowchart LR\n")

	// Mermaid node IDs can't have dots or slashes.
	files := result.Files
	nodeNames := formatters.BuildNodeNames(files)
	nodeIDs := make(map[string]string, len(files))
	for i, file := range files {
		nodeIDs[file] = fmt.Sprintf("n%d", i)
	}

	for _, file := range files {
		label := strings.ReplaceAll(nodeNames[file], "\"", "#quot;")
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeIDs[file], label))
	}

	if len(result.Edges) > 0 {
		sb.WriteString("\n")
		adjacency := result.AdjacencyList()
		for _, file := range files {
			for _, dep := range adjacency[file] {
				sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeIDs[file], nodeIDs[dep]))
			}
		}
	}

	majorityExtension, hasMultipleExtensions := formatters.MajorityExtension(files)
	if hasMultipleExtensions {
		var majorityNodes []string
		for _, file := range files {
			if path.Ext(file) == majorityExtension {
				majorityNodes = append(majorityNodes, nodeIDs[file])
			}
		}

		sb.WriteString("\n")
		sb.WriteString("    classDef majorityExtension fill:#FFFFFF,stroke:#999999,color:#000000\n")
		sb.WriteString(fmt.Sprintf("    class %s majorityExtension\n", strings.Join(majorityNodes, ",")))
	}

	return sb.String(), nil
}
