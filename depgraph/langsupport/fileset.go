package langsupport

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// FileSet is the immutable set of repo-relative, forward-slash file paths
// that exist in the analyzed tree. It is the only oracle used to accept a
// resolved import.
type FileSet struct {
	paths map[string]struct{}
}

// NewFileSet builds a FileSet from paths, normalizing each one.
func NewFileSet(paths []string) FileSet {
	set := FileSet{paths: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		if normalized := NormalizePath(p); normalized != "" {
			set.paths[normalized] = struct{}{}
		}
	}
	return set
}

// Has reports whether p is a member of the set. p must already be normalized.
func (s FileSet) Has(p string) bool {
	_, ok := s.paths[p]
	return ok
}

// Len returns the number of paths in the set.
func (s FileSet) Len() int {
	return len(s.paths)
}

// Paths returns every member in sorted order.
func (s FileSet) Paths() []string {
	paths := make([]string, 0, len(s.paths))
	for p := range s.paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// NormalizePath converts p to a cleaned, forward-slash, repo-relative path.
// It returns "" for paths that name the root itself.
func NormalizePath(p string) string {
	p = filepath.ToSlash(strings.TrimSpace(p))
	if p == "" {
		return ""
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	return cleaned
}
