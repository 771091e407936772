// Package git serves a FilePathSet and file contents from one git revision.
package git

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/LegacyCodeHQ/depmap/vcs"
)

// RepositoryRoot returns the absolute path to the repository root.
func RepositoryRoot(repoPath string) (string, error) {
	stdout, stderr, err := runGitCommand(repoPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", gitCommandError(err, stderr)
	}
	return strings.TrimSpace(string(stdout)), nil
}

// ShortCommitHash returns the abbreviated hash of commitID.
func ShortCommitHash(repoPath, commitID string) (string, error) {
	if err := validateGitRef(commitID); err != nil {
		return "", err
	}
	stdout, stderr, err := runGitCommand(repoPath, "rev-parse", "--short", commitID)
	if err != nil {
		return "", gitCommandError(err, stderr)
	}
	return strings.TrimSpace(string(stdout)), nil
}

// ValidateCommit checks that commitID resolves to a commit in repoPath.
func ValidateCommit(repoPath, commitID string) error {
	if err := validateGitRef(commitID); err != nil {
		return err
	}
	_, stderr, err := runGitCommand(repoPath, "rev-parse", "--verify", commitID+"^{commit}")
	if err != nil {
		if stderr != "" {
			return fmt.Errorf("invalid commit reference '%s': %s", commitID, stderr)
		}
		return fmt.Errorf("invalid commit reference '%s'", commitID)
	}
	return nil
}

// CommitTreeFiles lists every file in the tree of commitID as repo-relative,
// forward-slash paths. Submodules and symlinks are listed like files; reading
// them simply fails later.
func CommitTreeFiles(repoPath, commitID string) ([]string, error) {
	if _, err := os.Stat(repoPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("repository path does not exist: %s", repoPath)
	}
	if err := ValidateCommit(repoPath, commitID); err != nil {
		return nil, err
	}

	root, err := RepositoryRoot(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository root: %w", err)
	}

	stdout, stderr, err := runGitCommand(root, "ls-tree", "-r", "-z", "--name-only", commitID)
	if err != nil {
		return nil, gitCommandError(err, stderr)
	}

	var files []string
	for _, entry := range strings.Split(string(stdout), "\x00") {
		if entry != "" {
			files = append(files, entry)
		}
	}
	return files, nil
}

// CommitContentReader reads repo-relative paths as they exist in commitID.
func CommitContentReader(repoPath, commitID string) (vcs.ContentReader, error) {
	if err := ValidateCommit(repoPath, commitID); err != nil {
		return nil, err
	}
	root, err := RepositoryRoot(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository root: %w", err)
	}

	return func(filePath string) ([]byte, error) {
		if err := validateGitRelPath(filePath); err != nil {
			return nil, err
		}
		stdout, stderr, err := runGitCommand(root, "show", fmt.Sprintf("%s:%s", commitID, filePath))
		if err != nil {
			if strings.Contains(stderr, "does not exist") || strings.Contains(stderr, "exists on disk, but not in") {
				return nil, &vcs.FileNotFoundError{Path: filePath}
			}
			return nil, fmt.Errorf("git show failed: %w", gitCommandError(err, stderr))
		}
		return stdout, nil
	}, nil
}

func validateGitRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("git reference cannot be empty")
	}
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("git reference cannot start with '-': %q", ref)
	}
	if strings.ContainsAny(ref, "\x00\n\r\t ") {
		return fmt.Errorf("git reference contains whitespace or NUL: %q", ref)
	}
	return nil
}

func validateGitRelPath(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("git path cannot be empty")
	}
	if path.IsAbs(filePath) {
		return fmt.Errorf("git path must be relative: %q", filePath)
	}
	if strings.Contains(filePath, "\x00") {
		return fmt.Errorf("git path contains NUL: %q", filePath)
	}
	cleaned := path.Clean(filePath)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("git path escapes repository: %q", filePath)
	}
	return nil
}
