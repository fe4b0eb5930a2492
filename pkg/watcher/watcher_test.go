package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatchTriggersDebouncedCallback(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "gobody.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logLevel: info\n"), 0o644))

	fw, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)

	var mu sync.Mutex
	var calls []string
	fired := make(chan struct{}, 10)
	require.NoError(t, fw.Watch([]string{path}, func(p string) {
		mu.Lock()
		calls = append(calls, p)
		mu.Unlock()
		fired <- struct{}{}
	}))
	fw.Start()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0o644))
	}
	// Unwatched sibling files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("callback not triggered")
	}
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, fw.Close())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1, "burst of writes must collapse into one callback")
	assert.Equal(t, path, calls[0])
}

func TestCloseWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	assert.NoError(t, fw.Close())
}

func TestRemoveAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, fw.Watch([]string{path}, func(string) {}))
	require.NoError(t, fw.RemoveAll())
	assert.Empty(t, fw.callbacks)
	assert.NoError(t, fw.Close())
}
