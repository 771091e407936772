// Package vcs holds the content collaborators that feed the dependency graph
// builder: something that enumerates the analyzed files and something that
// reads them.
package vcs

// ContentReader is a function that reads file content given a repo-relative file path.
// This allows the caller to control how files are read (filesystem, git, etc.)
type ContentReader func(filePath string) ([]byte, error)

// MapContentReader serves file contents from memory. Missing paths report
// ErrFileNotFound.
func MapContentReader(files map[string]string) ContentReader {
	return func(filePath string) ([]byte, error) {
		content, ok := files[filePath]
		if !ok {
			return nil, &FileNotFoundError{Path: filePath}
		}
		return []byte(content), nil
	}
}
