package vcs

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	filePath := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644), "failed to create file %s", name)
}

func TestWalkFiles_ReturnsSortedRelativePaths(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, "src/b.js", "")
	createFile(t, root, "src/a.js", "")
	createFile(t, root, "tsconfig.json", "{}")
	createFile(t, root, "node_modules/react/index.js", "")
	createFile(t, root, ".git/HEAD", "ref: refs/heads/main")

	files, err := WalkFiles(root, DefaultSkipDirs, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.js", "src/b.js", "tsconfig.json"}, files)
}

func TestWalkFiles_RejectsMissingRoot(t *testing.T) {
	_, err := WalkFiles(filepath.Join(t.TempDir(), "missing"), nil, nil)

	assert.Error(t, err)
}

func TestWalkFiles_SkipsUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for this user")
	}

	root := t.TempDir()
	createFile(t, root, "src/a.js", "")
	createFile(t, root, "locked/secret.js", "")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	var logs bytes.Buffer
	files, err := WalkFiles(root, nil, slog.New(slog.NewTextHandler(&logs, nil)))

	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.js"}, files)
	assert.Contains(t, logs.String(), "skipping unreadable path")
}

func TestFileWalker_IsolatesErrorsBelowRoot(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, "sub/a.js", "")
	subInfo, err := os.Stat(filepath.Join(root, "sub"))
	require.NoError(t, err)
	fileInfo, err := os.Stat(filepath.Join(root, "sub", "a.js"))
	require.NoError(t, err)

	var logs bytes.Buffer
	walker := &fileWalker{root: root, logger: slog.New(slog.NewTextHandler(&logs, nil))}
	readErr := errors.New("permission denied")

	assert.Equal(t, filepath.SkipDir, walker.visit(filepath.Join(root, "sub"), fs.FileInfoToDirEntry(subInfo), readErr))
	assert.NoError(t, walker.visit(filepath.Join(root, "sub", "a.js"), fs.FileInfoToDirEntry(fileInfo), readErr))
	assert.ErrorIs(t, walker.visit(root, nil, readErr), readErr)
	assert.Empty(t, walker.files)
	assert.Equal(t, 2, strings.Count(logs.String(), "skipping unreadable path"))
}

func TestFilesystemContentReader(t *testing.T) {
	root := t.TempDir()
	createFile(t, root, "src/a.js", "import b from './b';")

	read := FilesystemContentReader(root)

	content, err := read("src/a.js")
	require.NoError(t, err)
	assert.Equal(t, "import b from './b';", string(content))

	_, err = read("src/missing.js")
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = read("../outside.js")
	assert.Error(t, err)
}

func TestMapContentReader(t *testing.T) {
	read := MapContentReader(map[string]string{"a.py": "import b"})

	content, err := read("a.py")
	require.NoError(t, err)
	assert.Equal(t, "import b", string(content))

	_, err = read("b.py")
	assert.ErrorIs(t, err, ErrFileNotFound)
}
