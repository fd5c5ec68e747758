package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		event  fsnotify.Event
		want   Event
		wantOK bool
	}{
		{"create", fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Create}, Event{Path: "/d/a.txt"}, true},
		{"write", fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Write}, Event{Path: "/d/a.txt"}, true},
		{"remove", fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Remove}, Event{Path: "/d/a.txt", Removed: true}, true},
		{"rename", fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Rename}, Event{Path: "/d/a.txt", Removed: true}, true},
		{"hidden", fsnotify.Event{Name: "/d/.a.txt.swp", Op: fsnotify.Create}, Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.wantOK {
				t.Fatalf("translate() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.NewNop())
	assert.Error(t, err)
}

func TestWatcherForwardsEvents(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	seen := map[string]bool{}
	handler := func(_ context.Context, ev Event) error {
		mu.Lock()
		defer mu.Unlock()
		seen[filepath.Base(ev.Path)] = ev.Removed
		return nil
	}

	w, err := New(dir, handler, logger.NewNop())
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	p := filepath.Join(dir, "digest.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		removed, ok := seen["digest.txt"]
		return ok && !removed
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Remove(p))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen["digest.txt"]
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
