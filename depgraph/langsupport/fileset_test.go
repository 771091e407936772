package langsupport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"src/a.js":         "src/a.js",
		"./src/a.js":       "src/a.js",
		"/src/a.js":        "src/a.js",
		"src//lib/../a.js": "src/a.js",
		"../a.js":          "a.js",
		" src/a.js ":       "src/a.js",
		"":                 "",
		".":                "",
		"/":                "",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, NormalizePath(input), "input %q", input)
	}
}

func TestFileSet(t *testing.T) {
	set := NewFileSet([]string{"src/b.js", "./src/a.js", "src/a.js", "", "lib/c.py"})

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has("src/a.js"))
	assert.False(t, set.Has("./src/a.js"))
	assert.False(t, set.Has("src/missing.js"))
	assert.Equal(t, []string{"lib/c.py", "src/a.js", "src/b.js"}, set.Paths())
}

func TestFileSet_ZeroValue(t *testing.T) {
	var set FileSet

	assert.False(t, set.Has("a.js"))
	assert.Zero(t, set.Len())
	assert.Empty(t, set.Paths())
}
