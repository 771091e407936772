package vcs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultSkipDirs lists directory names that never contain analyzable
// project sources.
var DefaultSkipDirs = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"bower_components",
	"dist",
	"vendor",
	"build",
	"__pycache__",
	".venv",
	".gradle",
	".idea",
	".vscode",
	".next",
	"coverage",
}

// WalkFiles returns every regular file below root as a sorted list of
// repo-relative, forward-slash paths. Directories whose name is in skipDirs
// are not entered. Unreadable entries below root are logged to logger and
// skipped; only a failure on root itself is returned.
func WalkFiles(root string, skipDirs []string, logger *slog.Logger) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	if logger == nil {
		logger = slog.Default()
	}

	walker := &fileWalker{
		root:    root,
		skipped: make(map[string]bool, len(skipDirs)),
		logger:  logger,
	}
	for _, dir := range skipDirs {
		walker.skipped[dir] = true
	}

	if err := filepath.WalkDir(root, walker.visit); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(walker.files)
	return walker.files, nil
}

type fileWalker struct {
	root    string
	skipped map[string]bool
	logger  *slog.Logger
	files   []string
}

func (w *fileWalker) visit(filePath string, entry fs.DirEntry, walkErr error) error {
	if walkErr != nil {
		if filePath == w.root {
			return walkErr
		}
		w.logger.Warn("skipping unreadable path", "path", filePath, "error", walkErr)
		if entry != nil && entry.IsDir() {
			return filepath.SkipDir
		}
		return nil
	}

	if entry.IsDir() {
		if filePath != w.root && w.skipped[entry.Name()] {
			return filepath.SkipDir
		}
		return nil
	}

	if !entry.Type().IsRegular() {
		return nil
	}

	rel, err := filepath.Rel(w.root, filePath)
	if err != nil {
		return err
	}
	w.files = append(w.files, filepath.ToSlash(rel))
	return nil
}

// FilesystemContentReader reads repo-relative paths below root. Paths that
// would escape root are rejected.
func FilesystemContentReader(root string) ContentReader {
	return func(filePath string) ([]byte, error) {
		cleaned := path.Clean(filepath.ToSlash(filePath))
		if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
			return nil, fmt.Errorf("path escapes repository root: %q", filePath)
		}

		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(cleaned)))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: filePath}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return content, nil
	}
}
