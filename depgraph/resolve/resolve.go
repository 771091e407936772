// Package resolve turns raw import strings into repo-relative file paths,
// accepting a candidate only when the analyzed file set contains it.
package resolve

import (
	"path"
	"strings"

	"github.com/LegacyCodeHQ/depmap/depgraph/alias"
	"github.com/LegacyCodeHQ/depmap/depgraph/langsupport"
)

var probeSuffixes = []string{
	"",
	".js", ".jsx", ".ts", ".tsx", ".mjs", ".json", ".py", ".java", ".php",
	"/index.js", "/index.jsx", "/index.ts", "/index.tsx", "/__init__.py",
}

// ProbeSuffixes returns the suffixes appended to a candidate, in the order
// they are tried.
func ProbeSuffixes() []string {
	return append([]string(nil), probeSuffixes...)
}

// Resolver resolves imports against a fixed file set and alias table. It is
// read-only after construction and safe for concurrent use.
type Resolver struct {
	files       langsupport.FileSet
	aliases     alias.Mapping
	sourceRoots []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSourceRoots adds directories that bare imports are also tried under,
// such as "src/main/java". They are consulted after every other strategy.
func WithSourceRoots(roots ...string) Option {
	return func(r *Resolver) {
		for _, root := range roots {
			if normalized := langsupport.NormalizePath(root); normalized != "" {
				r.sourceRoots = append(r.sourceRoots, normalized)
			}
		}
	}
}

// New creates a Resolver bound to files and aliases.
func New(files langsupport.FileSet, aliases alias.Mapping, opts ...Option) *Resolver {
	r := &Resolver{
		files:   files,
		aliases: aliases,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps rawImport, written in the file at basePath, to a member of the
// file set. Strategies are tried in order: aliases in declaration order,
// relative paths, the bare import, then configured source roots. When none
// succeeds rawImport is returned unchanged.
func (r *Resolver) Resolve(basePath, rawImport string) string {
	if resolved, ok := r.resolveAlias(rawImport); ok {
		return resolved
	}

	if isRelative(rawImport) {
		if resolved, ok := r.Probe(relativeTo(basePath, rawImport)); ok {
			return resolved
		}
	}

	if resolved, ok := r.Probe(rawImport); ok {
		return resolved
	}

	for _, root := range r.sourceRoots {
		if resolved, ok := r.Probe(root + "/" + rawImport); ok {
			return resolved
		}
	}

	return rawImport
}

// Probe tries candidate followed by each probe suffix and returns the first
// path present in the file set. The empty candidate never matches.
func (r *Resolver) Probe(candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	for _, suffix := range probeSuffixes {
		if p := candidate + suffix; r.files.Has(p) {
			return p, true
		}
	}
	return "", false
}

func (r *Resolver) resolveAlias(rawImport string) (string, bool) {
	for _, entry := range r.aliases {
		if entry.Alias == "" || !strings.HasPrefix(rawImport, entry.Alias) {
			continue
		}
		substituted := langsupport.NormalizePath(entry.Target + rawImport[len(entry.Alias):])
		if resolved, ok := r.Probe(substituted); ok {
			return resolved, true
		}
	}
	return "", false
}

func isRelative(rawImport string) bool {
	return strings.HasPrefix(rawImport, "./") || strings.HasPrefix(rawImport, "../")
}

// relativeTo joins rawImport onto the directory of basePath. Leading ".."
// segments that would climb above the root are dropped.
func relativeTo(basePath, rawImport string) string {
	joined := path.Join("/", path.Dir(basePath), rawImport)
	return strings.TrimPrefix(joined, "/")
}
