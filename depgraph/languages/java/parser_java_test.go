package java

import (
	"errors"
	"testing"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImports_SingleTypeAndWildcard(t *testing.T) {
	source := `
package com.example.app;

import java.util.List;
import com.example.app.service.UserService;
import com.example.app.model.*;
import static com.example.app.util.Strings.capitalize;
import java.util.List;

public class App {}
`
	imports, err := NewExtractor(nil).ExtractImports([]byte(source), "src/com/example/app/App.java")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"java/util/List",
		"com/example/app/service/UserService",
		"com/example/app/model/*",
		"com/example/app/util/Strings/capitalize",
	}, imports)
}

func TestExtractImports_NoImports(t *testing.T) {
	source := `
package com.example;

public class Empty {}
`
	imports, err := NewExtractor(nil).ExtractImports([]byte(source), "Empty.java")
	require.NoError(t, err)

	assert.Empty(t, imports)
}

func TestExtractImports_FallsBackWhenParsingFails(t *testing.T) {
	extractor := NewExtractor(nil)
	extractor.parse = func([]byte) (*sitter.Tree, error) {
		return nil, errors.New("boom")
	}

	source := `
import com.example.Foo;
import static com.example.Bar.*;
`
	imports, err := extractor.ExtractImports([]byte(source), "App.java")
	require.NoError(t, err)

	assert.Equal(t, []string{"com/example/Foo", "com/example/Bar/*"}, imports)
}

func TestImportPath(t *testing.T) {
	assert.Equal(t, "a/b/C", ImportPath("a.b.C", false))
	assert.Equal(t, "a/b/*", ImportPath("a.b", true))
	assert.Equal(t, "a/b/*", ImportPath("a.b.*", true))
	assert.Equal(t, "", ImportPath("  ", false))
}

func TestExtractImports_ReportsErrorWhenScanAlsoFails(t *testing.T) {
	extractor := NewExtractor(nil)
	extractor.parse = func([]byte) (*sitter.Tree, error) {
		panic("cgo exploded")
	}
	extractor.scan = func([]byte) []string {
		panic("scanner exploded")
	}

	var imports []string
	var err error
	require.NotPanics(t, func() {
		imports, err = extractor.ExtractImports([]byte("import com.example.Foo;\n"), "App.java")
	})

	assert.Empty(t, imports)
	var extractionErr *langsupport.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "App.java", extractionErr.Path)
	assert.ErrorContains(t, err, "cgo exploded")
	assert.ErrorContains(t, err, "scanner exploded")
}
