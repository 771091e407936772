package mermaid_test

import (
	"testing"

	"github.com/LegacyCodeHQ/depmap/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/depmap/cmd/graph/formatters/mermaid"
	"github.com/LegacyCodeHQ/depmap/depgraph"
	"github.com/LegacyCodeHQ/depmap/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestFormatter_MixedExtensions(t *testing.T) {
	result := &depgraph.Result{
		Files: []string{"app/main.py", "lib/util/index.ts", "src/a.js", "src/b.js", "src/util/index.ts"},
		Edges: []depgraph.Edge{
			{From: "src/a.js", To: "src/b.js"},
			{From: "src/a.js", To: "src/util/index.ts"},
			{From: "src/b.js", To: "lib/util/index.ts"},
		},
	}

	output, err := (&mermaid.Formatter{}).Format(result, formatters.FormatOptions{})
	require.NoError(t, err)

	g := testhelpers.MermaidGoldie(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestFormatter_WithTitleAndNoEdges(t *testing.T) {
	result := &depgraph.Result{
		Files: []string{"App.java", "Util.java"},
	}

	output, err := (&mermaid.Formatter{}).Format(result, formatters.FormatOptions{Label: "demo"})
	require.NoError(t, err)

	g := testhelpers.MermaidGoldie(t)
	g.Assert(t, t.Name(), []byte(output))
}
