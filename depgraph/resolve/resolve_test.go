package resolve

import (
	"testing"

	"github.com/LegacyCodeHQ/depmap/depgraph/alias"
	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	files := langsupport.NewFileSet([]string{
		"a.js",
		"src/a.js",
		"src/b.js",
		"src/util.js",
		"src/components/index.tsx",
		"src/data.json",
		"lib/helpers.ts",
		"pkg/__init__.py",
		"pkg/mod.py",
		"com/example/Model.java",
		"src/main/java/com/example/Service.java",
		"App/Models/User.php",
	})
	aliases := alias.Mapping{
		{Alias: "@", Target: "src"},
		{Alias: "~", Target: "lib"},
	}
	r := New(files, aliases, WithSourceRoots("src/main/java"))

	tests := []struct {
		name     string
		base     string
		raw      string
		expected string
	}{
		{"relative sibling", "src/a.js", "./b", "src/b.js"},
		{"relative parent", "src/components/index.tsx", "../util", "src/util.js"},
		{"relative with extension", "src/a.js", "./b.js", "src/b.js"},
		{"relative json", "src/a.js", "./data.json", "src/data.json"},
		{"relative above root stays at root", "src/a.js", "../../../a", "a.js"},
		{"index probing", "src/a.js", "./components", "src/components/index.tsx"},
		{"alias", "src/components/index.tsx", "@/util", "src/util.js"},
		{"second alias", "src/a.js", "~/helpers", "lib/helpers.ts"},
		{"bare", "src/a.js", "src/b", "src/b.js"},
		{"python package", "main.py", "pkg", "pkg/__init__.py"},
		{"python dotted", "main.py", "pkg/mod", "pkg/mod.py"},
		{"java", "Main.java", "com/example/Model", "com/example/Model.java"},
		{"source root", "Main.java", "com/example/Service", "src/main/java/com/example/Service.java"},
		{"php", "index.php", "App/Models/User", "App/Models/User.php"},
		{"external package unchanged", "src/a.js", "react", "react"},
		{"unresolved relative unchanged", "src/a.js", "./missing", "./missing"},
		{"empty unchanged", "src/a.js", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.base, tt.raw))
		})
	}
}

func TestResolve_AliasDeclarationOrderWins(t *testing.T) {
	files := langsupport.NewFileSet([]string{"first/x.js", "second/x.js"})
	r := New(files, alias.Mapping{
		{Alias: "#", Target: "first"},
		{Alias: "#", Target: "second"},
	})

	assert.Equal(t, "first/x.js", r.Resolve("a.js", "#/x"))
}

func TestResolve_AliasFallsThroughWhenProbeFails(t *testing.T) {
	files := langsupport.NewFileSet([]string{"other/x.js", "@scope/pkg.js"})
	r := New(files, alias.Mapping{
		{Alias: "@", Target: "src"},
		{Alias: "@", Target: "other"},
	})

	assert.Equal(t, "other/x.js", r.Resolve("a.js", "@/x"))
	assert.Equal(t, "@scope/pkg.js", r.Resolve("a.js", "@scope/pkg"))
}

func TestResolve_AliasToRoot(t *testing.T) {
	files := langsupport.NewFileSet([]string{"util.js"})
	r := New(files, alias.Mapping{{Alias: "~", Target: ""}})

	assert.Equal(t, "util.js", r.Resolve("src/a.js", "~/util"))
}

func TestResolve_RelativeFromRootFile(t *testing.T) {
	files := langsupport.NewFileSet([]string{"b.ts"})
	r := New(files, nil)

	assert.Equal(t, "b.ts", r.Resolve("a.ts", "./b"))
}

func TestProbe(t *testing.T) {
	files := langsupport.NewFileSet([]string{"x.ts", "x/index.js", "y/index.ts"})
	r := New(files, nil)

	p, ok := r.Probe("x")
	assert.True(t, ok)
	assert.Equal(t, "x.ts", p)

	p, ok = r.Probe("y")
	assert.True(t, ok)
	assert.Equal(t, "y/index.ts", p)

	_, ok = r.Probe("")
	assert.False(t, ok)

	_, ok = r.Probe("z")
	assert.False(t, ok)
}

func TestProbeSuffixes(t *testing.T) {
	suffixes := ProbeSuffixes()

	assert.Equal(t, "", suffixes[0])
	assert.Equal(t, "/__init__.py", suffixes[len(suffixes)-1])

	suffixes[0] = "mutated"
	assert.Equal(t, "", ProbeSuffixes()[0])
}
