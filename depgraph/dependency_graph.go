package depgraph

import (
	"sort"

	"github.com/LegacyCodeHQ/depmap/depgraph/alias"
	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	graphlib "github.com/dominikbraun/graph"
)

// SourceFile is one analyzed file. Its content is fetched by the task that
// owns it.
type SourceFile struct {
	Path     string
	Language langsupport.Language
}

// Edge records that From imports To. Both are members of the analyzed file
// set.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DiagnosticKind classifies a non-fatal problem met during a run.
type DiagnosticKind string

const (
	DiagnosticConfig  DiagnosticKind = "config"
	DiagnosticFetch   DiagnosticKind = "fetch"
	DiagnosticExtract DiagnosticKind = "extract"
)

// Diagnostic describes a file or config that was skipped or degraded.
type Diagnostic struct {
	Path    string         `json:"path"`
	Kind    DiagnosticKind `json:"kind"`
	Message string         `json:"message"`
}

// Result is the outcome of one BuildDependencyGraph run.
type Result struct {
	// Files lists every path in the file set, sorted.
	Files []string
	// Edges is deduplicated and sorted by From, then To.
	Edges []Edge
	// Diagnostics is sorted by Path, then Kind.
	Diagnostics []Diagnostic
	// Aliases is the alias table used for resolution.
	Aliases alias.Mapping
	// Graph holds Files as vertices and Edges as directed edges.
	Graph graphlib.Graph[string, string]
}

// Dependencies returns the sorted direct dependencies of filePath.
func (r *Result) Dependencies(filePath string) []string {
	deps := r.AdjacencyList()[filePath]
	if len(deps) == 0 {
		return nil
	}
	return deps
}

// AdjacencyList returns every file mapped to its sorted dependencies. Files
// without dependencies map to an empty slice. It reads Graph when present
// and Edges otherwise.
func (r *Result) AdjacencyList() map[string][]string {
	adjacency := make(map[string][]string, len(r.Files))
	for _, file := range r.Files {
		adjacency[file] = []string{}
	}

	if r.Graph != nil {
		if adjacencyMap, err := r.Graph.AdjacencyMap(); err == nil {
			for from, targets := range adjacencyMap {
				deps := make([]string, 0, len(targets))
				for to := range targets {
					deps = append(deps, to)
				}
				sort.Strings(deps)
				adjacency[from] = deps
			}
			return adjacency
		}
	}

	for _, edge := range r.Edges {
		adjacency[edge.From] = append(adjacency[edge.From], edge.To)
	}
	for _, deps := range adjacency {
		sort.Strings(deps)
	}
	return adjacency
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
}

func sortDiagnostics(diagnostics []Diagnostic) {
	sort.SliceStable(diagnostics, func(i, j int) bool {
		if diagnostics[i].Path != diagnostics[j].Path {
			return diagnostics[i].Path < diagnostics[j].Path
		}
		return diagnostics[i].Kind < diagnostics[j].Kind
	})
}
