// Package alias reads the import path aliases a JavaScript or TypeScript
// project declares in jsconfig.json or tsconfig.json.
package alias

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
	"github.com/LegacyCodeHQ/depmap/vcs"
	"github.com/tailscale/hujson"
)

// ConfigCandidates are the root-level config files consulted, in preference
// order. Only the first one present is read.
var ConfigCandidates = []string{"jsconfig.json", "tsconfig.json"}

const wildcardSuffix = "/*"

// Entry maps an import prefix to the directory it stands for.
type Entry struct {
	Alias  string `json:"alias"`
	Target string `json:"target"`
}

// Mapping is an ordered list of alias entries in declaration order.
type Mapping []Entry

// ConfigParseError reports an alias config that could not be read or parsed.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse alias config %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// FindConfig returns the config file to read. A non-empty override replaces
// the default candidates.
func FindConfig(files langsupport.FileSet, override string) (string, bool) {
	candidates := ConfigCandidates
	if override != "" {
		candidates = []string{langsupport.NormalizePath(override)}
	}
	for _, candidate := range candidates {
		if files.Has(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Load finds, reads and parses the project alias config. A missing config is
// an empty Mapping and no error. Any read or parse failure returns an empty
// Mapping together with a *ConfigParseError.
func Load(files langsupport.FileSet, contentReader vcs.ContentReader, override string) (Mapping, error) {
	configPath, ok := FindConfig(files, override)
	if !ok {
		return Mapping{}, nil
	}
	if contentReader == nil {
		return Mapping{}, &ConfigParseError{Path: configPath, Err: errors.New("no content reader")}
	}

	content, err := contentReader(configPath)
	if err != nil {
		return Mapping{}, &ConfigParseError{Path: configPath, Err: err}
	}

	mapping, err := Parse(content)
	if err != nil {
		return Mapping{}, &ConfigParseError{Path: configPath, Err: err}
	}
	return mapping, nil
}

// Parse reads compilerOptions.paths from a JSON document that may contain
// comments and trailing commas. Entries are kept in declaration order.
//
// An entry is registered only when its key ends in "/*" and its value is a
// non-empty array of strings that all end in "/*"; the first string becomes
// the target. {"@/*": ["./src/*"]} maps "@" to "src".
func Parse(content []byte) (Mapping, error) {
	root, err := hujson.Parse(content)
	if err != nil {
		return Mapping{}, err
	}

	compilerOptions := member(root, "compilerOptions")
	if compilerOptions == nil {
		return Mapping{}, nil
	}
	paths := member(*compilerOptions, "paths")
	if paths == nil {
		return Mapping{}, nil
	}
	object, ok := paths.Value.(*hujson.Object)
	if !ok {
		return Mapping{}, nil
	}

	mapping := Mapping{}
	for _, m := range object.Members {
		key, ok := stringValue(m.Name)
		if !ok || !strings.HasSuffix(key, wildcardSuffix) {
			continue
		}
		targets, ok := wildcardTargets(m.Value)
		if !ok {
			continue
		}
		mapping = append(mapping, Entry{
			Alias:  strings.TrimSuffix(key, wildcardSuffix),
			Target: cleanTarget(strings.TrimSuffix(targets[0], wildcardSuffix)),
		})
	}
	return mapping, nil
}

func member(value hujson.Value, name string) *hujson.Value {
	object, ok := value.Value.(*hujson.Object)
	if !ok {
		return nil
	}
	for i := range object.Members {
		if key, ok := stringValue(object.Members[i].Name); ok && key == name {
			return &object.Members[i].Value
		}
	}
	return nil
}

func stringValue(value hujson.Value) (string, bool) {
	literal, ok := value.Value.(hujson.Literal)
	if !ok || literal.Kind() != '"' {
		return "", false
	}
	return literal.String(), true
}

func wildcardTargets(value hujson.Value) ([]string, bool) {
	array, ok := value.Value.(*hujson.Array)
	if !ok || len(array.Elements) == 0 {
		return nil, false
	}

	targets := make([]string, 0, len(array.Elements))
	for _, element := range array.Elements {
		target, ok := stringValue(element)
		if !ok || !strings.HasSuffix(target, wildcardSuffix) {
			return nil, false
		}
		targets = append(targets, target)
	}
	return targets, true
}

// cleanTarget drops a leading "./" so targets line up with repo-relative
// paths.
func cleanTarget(target string) string {
	for strings.HasPrefix(target, "./") {
		target = strings.TrimPrefix(target, "./")
	}
	if target == "." {
		return ""
	}
	return target
}
