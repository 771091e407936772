package graph

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RawPath is a user-provided file path from CLI flags.
type RawPath string

// RepoPath is a forward-slash path relative to the analyzed root.
type RepoPath string

func (p RepoPath) String() string {
	return string(p)
}

// PathResolver turns raw user paths into paths relative to the analyzed root.
// Relative inputs are taken relative to the root itself.
type PathResolver struct {
	baseDir string
}

func NewPathResolver(baseDir string) (PathResolver, error) {
	if baseDir == "" {
		baseDir = "."
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return PathResolver{}, fmt.Errorf("failed to resolve base path: %w", err)
	}

	return PathResolver{baseDir: resolveSymlinks(filepath.Clean(absBaseDir))}, nil
}

func (r PathResolver) Resolve(path RawPath) (RepoPath, error) {
	pathStr := strings.TrimSpace(string(path))
	if pathStr == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	absPath := filepath.FromSlash(pathStr)
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(r.baseDir, absPath)
	}
	absPath = resolveSymlinks(filepath.Clean(absPath))

	rel, err := filepath.Rel(r.baseDir, absPath)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate path %q: %w", pathStr, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("path must be within the analyzed directory: %q", pathStr)
	}
	if rel == "." {
		return "", nil
	}
	return RepoPath(filepath.ToSlash(rel)), nil
}

// resolveSymlinks returns path with symlinks evaluated, or path unchanged
// when it does not exist.
func resolveSymlinks(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
