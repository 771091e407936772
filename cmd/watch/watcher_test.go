package watch

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWatchDirsWithAdder_SkipsConfiguredDirectories(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"src/lib", "node_modules/react", "dist"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	var added []string
	adder := func(path string) error {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		added = append(added, filepath.ToSlash(rel))
		return nil
	}

	err := addWatchDirsWithAdder(root, map[string]bool{"node_modules": true, "dist": true}, adder)
	require.NoError(t, err)

	assert.Equal(t, []string{".", "src", "src/lib"}, added)
}

func TestAddWatchDirsWithAdder_IgnoresMissingDirectoriesFromAdder(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "missing-dir")
	require.NoError(t, os.MkdirAll(target, 0o755))

	adder := func(path string) error {
		if path == target {
			return fs.ErrNotExist
		}
		return nil
	}

	assert.NoError(t, addWatchDirsWithAdder(root, nil, adder))
}

func TestAddWatchDirsWithAdder_SkipsBrokenSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires elevated privileges on Windows")
	}

	root := t.TempDir()
	linkPath := filepath.Join(root, "dangling")
	require.NoError(t, os.Symlink("missing/target", linkPath))

	var added []string
	adder := func(path string) error {
		added = append(added, path)
		return nil
	}

	require.NoError(t, addWatchDirsWithAdder(root, nil, adder))
	assert.NotContains(t, added, linkPath)
}

func TestIsRelevantChange(t *testing.T) {
	relevant := relevantPath("config/paths.json")

	assert.True(t, isRelevantChange(fsnotify.Event{Name: "/repo/src/a.ts", Op: fsnotify.Write}, relevant))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "/repo/main.py", Op: fsnotify.Remove}, relevant))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "/repo/tsconfig.json", Op: fsnotify.Write}, relevant))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "/repo/config/paths.json", Op: fsnotify.Create}, relevant))
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "/repo/README.md", Op: fsnotify.Write}, relevant))
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "/repo/src/a.ts", Op: fsnotify.Chmod}, relevant))
}

func TestWatchAndRebuild_DebouncesRelevantChanges(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchAndRebuild(ctx, root, nil, 50*time.Millisecond, relevantPath(""),
			func() { rebuilds.Add(1) }, io.Discard)
	}()

	// Give the watcher time to register the root directory.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.js"), []byte("import './b'"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.js"), []byte(""), 0o644))

	assert.Eventually(t, func() bool { return rebuilds.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestRebuilder_StopWaitsForInFlightRebuild(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	r := &rebuilder{rebuild: func() {
		close(started)
		<-release
		finished.Store(true)
	}}

	go r.run()
	<-started

	stopped := make(chan struct{})
	go func() {
		r.stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("stop returned while a rebuild was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("stop did not return after the rebuild finished")
	}
	assert.True(t, finished.Load())
}

func TestRebuilder_RunAfterStopDoesNothing(t *testing.T) {
	var rebuilds atomic.Int32
	r := &rebuilder{rebuild: func() { rebuilds.Add(1) }}

	r.run()
	r.stop()
	r.run()

	assert.Equal(t, int32(1), rebuilds.Load())
}
