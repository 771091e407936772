package java

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	sitter "github.com/smacker/go-tree-sitter"
	tsjava "github.com/smacker/go-tree-sitter/java"
)

var errNoTree = errors.New("parser returned no syntax tree")

var importPattern = regexp.MustCompile(`(?m)^\s*import\s+(?:static\s+)?([\w.]+?)(\.\*)?\s*;`)

type parseFunc func(sourceCode []byte) (*sitter.Tree, error)

// Extractor extracts imports from Java sources. "import a.b.C;" yields
// "a/b/C" and "import a.b.*;" yields "a/b/*". Static imports are treated the
// same way.
type Extractor struct {
	logger *slog.Logger
	parse  parseFunc
	scan   func(sourceCode []byte) []string
}

// NewExtractor returns a Java Extractor. A nil logger means slog.Default().
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger, parse: parseJava, scan: ScanImports}
}

func (e *Extractor) ExtractImports(sourceCode []byte, filePath string) (imports []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("java syntax tree walk failed, scanning import patterns instead",
				"path", filePath, "panic", fmt.Sprint(r))
			imports, err = e.scanSafely(sourceCode, filePath, fmt.Errorf("syntax tree walk panicked: %v", r))
		}
	}()

	tree, parseErr := e.parse(sourceCode)
	if parseErr != nil {
		e.logger.Warn("java syntax tree construction failed, scanning import patterns instead",
			"path", filePath, "error", parseErr)
		return e.scanSafely(sourceCode, filePath, parseErr)
	}
	defer tree.Close()

	var set langsupport.ImportSet
	for _, node := range findNodesOfType(tree.RootNode(), "import_declaration") {
		name, isWildcard := extractImportPath(node, sourceCode)
		set.Add(ImportPath(name, isWildcard))
	}
	return set.Items(), nil
}

func (e *Extractor) scanSafely(sourceCode []byte, filePath string, parseErr error) (imports []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("java import pattern scan failed", "path", filePath, "panic", fmt.Sprint(r))
			imports, err = nil, &langsupport.ExtractionError{
				Path:     filePath,
				Parse:    parseErr,
				Fallback: fmt.Errorf("pattern scan panicked: %v", r),
			}
		}
	}()
	return e.scan(sourceCode), nil
}

// ScanImports finds import declarations with line-anchored patterns.
func ScanImports(sourceCode []byte) []string {
	var set langsupport.ImportSet
	for _, m := range importPattern.FindAllSubmatch(sourceCode, -1) {
		set.Add(ImportPath(string(m[1]), len(m[2]) > 0))
	}
	return set.Items()
}

// ImportPath converts a dotted Java import name to a slash separated path,
// keeping a trailing "*" for wildcard imports.
func ImportPath(name string, isWildcard bool) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".*")
	if name == "" {
		return ""
	}
	converted := strings.ReplaceAll(name, ".", "/")
	if isWildcard {
		converted += "/*"
	}
	return converted
}

func parseJava(sourceCode []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsjava.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Java code: %w", err)
	}
	if tree == nil {
		return nil, errNoTree
	}
	return tree, nil
}

func extractImportPath(node *sitter.Node, sourceCode []byte) (string, bool) {
	if node == nil {
		return "", false
	}

	if name := node.ChildByFieldName("name"); name != nil {
		return strings.TrimSpace(name.Content(sourceCode)), hasChildOfType(node, "asterisk")
	}

	nameNode := findFirstChildOfType(node, "scoped_identifier", "identifier")
	if nameNode == nil {
		return "", false
	}

	return strings.TrimSpace(nameNode.Content(sourceCode)), hasChildOfType(node, "asterisk")
}

func hasChildOfType(node *sitter.Node, nodeType string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && child.Type() == nodeType {
			return true
		}
	}
	return false
}

func findFirstChildOfType(node *sitter.Node, types ...string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		for _, t := range types {
			if child.Type() == t {
				return child
			}
		}
	}
	return nil
}

func findNodesOfType(node *sitter.Node, nodeType string) []*sitter.Node {
	if node == nil {
		return nil
	}
	var nodes []*sitter.Node
	if node.Type() == nodeType {
		nodes = append(nodes, node)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		nodes = append(nodes, findNodesOfType(node.NamedChild(i), nodeType)...)
	}
	return nodes
}
