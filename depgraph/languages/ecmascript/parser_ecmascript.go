package ecmascript

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

var errNoTree = errors.New("parser returned no syntax tree")

type parseFunc func(sourceCode []byte, lang *sitter.Language) (*sitter.Tree, error)

// Extractor extracts import specifiers from JavaScript, TypeScript, JSX and
// TSX sources. It walks a tree-sitter syntax tree and falls back to pattern
// scanning when no tree can be built.
type Extractor struct {
	logger *slog.Logger
	parse  parseFunc
	scan   func(sourceCode []byte) []string
}

// NewExtractor returns an Extractor that logs degraded extractions to logger.
// A nil logger means slog.Default().
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger, parse: parseSource, scan: ScanImports}
}

// ExtractImports returns the distinct module specifiers referenced by static
// imports, re-exports, dynamic import() calls and require() calls, in source
// order. An error is returned only when pattern scanning also failed.
func (e *Extractor) ExtractImports(sourceCode []byte, filePath string) (imports []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("syntax tree walk failed, scanning import patterns instead",
				"path", filePath, "panic", fmt.Sprint(r))
			imports, err = e.scanSafely(sourceCode, filePath, fmt.Errorf("syntax tree walk panicked: %v", r))
		}
	}()

	tree, parseErr := e.parse(sourceCode, grammarFor(filePath))
	if parseErr != nil {
		e.logger.Warn("syntax tree construction failed, scanning import patterns instead",
			"path", filePath, "error", parseErr)
		return e.scanSafely(sourceCode, filePath, parseErr)
	}
	defer tree.Close()

	return ParseTree(tree.RootNode(), sourceCode), nil
}

// ParseTree collects import specifiers from an already parsed syntax tree.
func ParseTree(root *sitter.Node, sourceCode []byte) []string {
	var imports langsupport.ImportSet
	collectImports(root, sourceCode, &imports)
	return imports.Items()
}

// grammarFor picks the TypeScript grammar for .ts files and the TSX grammar,
// which also accepts JSX and plain JavaScript, for everything else.
func grammarFor(filePath string) *sitter.Language {
	if path.Ext(filePath) == ".ts" {
		return typescript.GetLanguage()
	}
	return tsx.GetLanguage()
}

func parseSource(sourceCode []byte, lang *sitter.Language) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ECMAScript code: %w", err)
	}
	if tree == nil {
		return nil, errNoTree
	}
	return tree, nil
}

// collectImports visits every node uniformly and inspects only the node kinds
// that can carry a module specifier.
func collectImports(node *sitter.Node, sourceCode []byte, imports *langsupport.ImportSet) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "import_statement", "export_statement":
		if source := node.ChildByFieldName("source"); source != nil {
			imports.Add(stringLiteralValue(source, sourceCode))
		}
	case "import_require_clause":
		source := node.ChildByFieldName("source")
		if source == nil {
			source = firstNamedChildOfType(node, "string")
		}
		if source != nil {
			imports.Add(stringLiteralValue(source, sourceCode))
		}
	case "call_expression":
		imports.Add(callSpecifier(node, sourceCode))
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		collectImports(node.Child(i), sourceCode, imports)
	}
}

// callSpecifier returns the string argument of import("x") or require("x"),
// or "" for any other call.
func callSpecifier(call *sitter.Node, sourceCode []byte) string {
	function := call.ChildByFieldName("function")
	if function == nil {
		return ""
	}

	switch function.Type() {
	case "import":
	case "identifier":
		if function.Content(sourceCode) != "require" {
			return ""
		}
	default:
		return ""
	}

	arguments := call.ChildByFieldName("arguments")
	if arguments == nil || arguments.Type() != "arguments" {
		return ""
	}

	for i := 0; i < int(arguments.NamedChildCount()); i++ {
		arg := arguments.NamedChild(i)
		if arg == nil || arg.Type() == "comment" {
			continue
		}
		return stringLiteralValue(arg, sourceCode)
	}
	return ""
}

func firstNamedChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// stringLiteralValue unquotes a string node. Non-string nodes yield "".
func stringLiteralValue(node *sitter.Node, sourceCode []byte) string {
	if node.Type() != "string" {
		return ""
	}
	raw := node.Content(sourceCode)
	if len(raw) < 2 {
		return ""
	}
	quote := raw[0]
	if (quote != '\'' && quote != '"') || raw[len(raw)-1] != quote {
		return ""
	}
	return raw[1 : len(raw)-1]
}
