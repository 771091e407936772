package dot_test

import (
	"strings"
	"testing"

	"github.com/LegacyCodeHQ/depmap/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/depmap/cmd/graph/formatters/dot"
	"github.com/LegacyCodeHQ/depmap/depgraph"
	"github.com/LegacyCodeHQ/depmap/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedResult() *depgraph.Result {
	return &depgraph.Result{
		Files: []string{"app/main.py", "lib/util/index.ts", "src/a.js", "src/b.js", "src/util/index.ts"},
		Edges: []depgraph.Edge{
			{From: "src/a.js", To: "src/b.js"},
			{From: "src/a.js", To: "src/util/index.ts"},
			{From: "src/b.js", To: "lib/util/index.ts"},
		},
	}
}

func TestFormatter_MixedExtensions(t *testing.T) {
	output, err := (&dot.Formatter{}).Format(mixedResult(), formatters.FormatOptions{})
	require.NoError(t, err)

	g := testhelpers.DotGoldie(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestFormatter_WithLabel(t *testing.T) {
	result := &depgraph.Result{
		Files: []string{"main.py", "models.py"},
		Edges: []depgraph.Edge{{From: "main.py", To: "models.py"}},
	}

	output, err := (&dot.Formatter{}).Format(result, formatters.FormatOptions{Label: "demo • 1a2b3c4"})
	require.NoError(t, err)

	g := testhelpers.DotGoldie(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestFormatter_GenerateURL(t *testing.T) {
	url := (&dot.Formatter{}).GenerateURL("digraph { a -> b }")

	assert.True(t, strings.HasPrefix(url, "https://dreampuf.github.io/GraphvizOnline/?engine=dot#"))
	assert.Contains(t, url, "digraph%20%7B%20a%20-%3E%20b%20%7D")
}
