package graph

import (
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"sync"

	"github.com/LegacyCodeHQ/depmap/vcs"
	"github.com/LegacyCodeHQ/depmap/vcs/git"
)

// Source is the file set and content accessor of one analyzed tree.
type Source struct {
	// Root is the absolute directory paths are relative to.
	Root   string
	Label  string
	Files  []string
	Reader vcs.ContentReader
}

// OpenSource lists the files under path. With a commit, files and contents
// come from that revision of the enclosing git repository; otherwise from the
// working tree below path, logging unreadable entries to logger.
func OpenSource(path, commit string, skipDirs []string, logger *slog.Logger) (*Source, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	absPath = resolveSymlinks(absPath)

	if commit == "" {
		files, err := vcs.WalkFiles(absPath, slices.Concat(vcs.DefaultSkipDirs, skipDirs), logger)
		if err != nil {
			return nil, err
		}
		return &Source{
			Root:   absPath,
			Label:  filepath.Base(absPath),
			Files:  files,
			Reader: vcs.FilesystemContentReader(absPath),
		}, nil
	}

	repoRoot, err := git.RepositoryRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to find git repository: %w", err)
	}
	files, err := git.CommitTreeFiles(repoRoot, commit)
	if err != nil {
		return nil, fmt.Errorf("failed to list files at %s: %w", commit, err)
	}
	reader, err := git.CommitContentReader(repoRoot, commit)
	if err != nil {
		return nil, err
	}

	label := filepath.Base(repoRoot)
	if shortHash, err := git.ShortCommitHash(repoRoot, commit); err == nil {
		label = fmt.Sprintf("%s • %s", label, shortHash)
	}

	return &Source{
		Root:   resolveSymlinks(repoRoot),
		Label:  label,
		Files:  files,
		Reader: reader,
	}, nil
}

// readSizes records how many bytes were read per file.
type readSizes struct {
	mu    sync.Mutex
	bytes map[string]int
}

func newReadSizes() *readSizes {
	return &readSizes{bytes: make(map[string]int)}
}

func (s *readSizes) wrap(reader vcs.ContentReader) vcs.ContentReader {
	return func(filePath string) ([]byte, error) {
		content, err := reader(filePath)
		if err == nil {
			s.mu.Lock()
			s.bytes[filePath] = len(content)
			s.mu.Unlock()
		}
		return content, err
	}
}

func (s *readSizes) snapshot() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.bytes)
}
