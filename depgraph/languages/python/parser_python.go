package python

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

var errNoTree = errors.New("parser returned no syntax tree")

type parseFunc func(sourceCode []byte) (*sitter.Tree, error)

// Extractor extracts imported module paths from Python sources.
//
// Dotted module names are emitted as slash separated paths. Relative imports
// keep their position as a ./ or ../ prefix so they resolve against the
// importing file: "from ..pkg.mod import x" yields "../pkg/mod" and
// "from . import a" yields "./a".
type Extractor struct {
	logger *slog.Logger
	parse  parseFunc
	scan   func(sourceCode []byte) []string
}

// NewExtractor returns a Python Extractor. A nil logger means slog.Default().
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger, parse: parseSource, scan: ScanImports}
}

func (e *Extractor) ExtractImports(sourceCode []byte, filePath string) (imports []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("python syntax tree walk failed, scanning import patterns instead",
				"path", filePath, "panic", fmt.Sprint(r))
			imports, err = e.scanSafely(sourceCode, filePath, fmt.Errorf("syntax tree walk panicked: %v", r))
		}
	}()

	tree, parseErr := e.parse(sourceCode)
	if parseErr != nil {
		e.logger.Warn("python syntax tree construction failed, scanning import patterns instead",
			"path", filePath, "error", parseErr)
		return e.scanSafely(sourceCode, filePath, parseErr)
	}
	defer tree.Close()

	var set langsupport.ImportSet
	collectImports(tree.RootNode(), sourceCode, &set)
	return set.Items(), nil
}

func parseSource(sourceCode []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Python code: %w", err)
	}
	if tree == nil {
		return nil, errNoTree
	}
	return tree, nil
}

func collectImports(node *sitter.Node, sourceCode []byte, set *langsupport.ImportSet) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "import_statement":
		_, names := splitImportStatement(node, sourceCode)
		addPlainImports(names, set)
		return
	case "import_from_statement":
		module, names := splitImportStatement(node, sourceCode)
		addFromImport(module, names, set)
		return
	case "future_import_statement":
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collectImports(node.Child(i), sourceCode, set)
	}
}

// splitImportStatement returns the module named before the "import" keyword
// (from-imports only) and the names listed after it. A wildcard is reported
// as "*".
func splitImportStatement(node *sitter.Node, sourceCode []byte) (string, []string) {
	var module string
	var names []string
	afterImport := false

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "import" {
			afterImport = true
			continue
		}

		switch child.Type() {
		case "dotted_name", "relative_import", "identifier":
			text := strings.TrimSpace(child.Content(sourceCode))
			if afterImport {
				names = append(names, text)
			} else {
				module = text
			}
		case "aliased_import":
			if name := aliasedName(child, sourceCode); name != "" && afterImport {
				names = append(names, name)
			}
		case "wildcard_import":
			names = append(names, "*")
		}
	}

	return module, names
}

func aliasedName(node *sitter.Node, sourceCode []byte) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return strings.TrimSpace(name.Content(sourceCode))
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child != nil && (child.Type() == "dotted_name" || child.Type() == "identifier") {
			return strings.TrimSpace(child.Content(sourceCode))
		}
	}
	return ""
}

func addPlainImports(modules []string, set *langsupport.ImportSet) {
	for _, module := range modules {
		if module == "*" {
			continue
		}
		set.Add(ModulePath(module))
	}
}

func addFromImport(module string, names []string, set *langsupport.ImportSet) {
	if module == "" || module == "__future__" {
		return
	}

	if strings.Trim(module, ".") != "" {
		set.Add(ModulePath(module))
		return
	}

	// "from . import a, b" imports sibling modules a and b.
	prefix := ModulePath(module)
	for _, name := range names {
		if name == "*" || name == "" {
			continue
		}
		set.Add(prefix + strings.ReplaceAll(name, ".", "/"))
	}
}

// ModulePath converts a dotted module reference into a slash separated path.
// Leading dots become a relative prefix: one dot is "./", each further dot
// climbs one directory.
func ModulePath(module string) string {
	dots := len(module) - len(strings.TrimLeft(module, "."))
	name := strings.ReplaceAll(module[dots:], ".", "/")

	switch dots {
	case 0:
		return name
	case 1:
		return "./" + name
	default:
		return strings.Repeat("../", dots-1) + name
	}
}
