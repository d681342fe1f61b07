package corpusingester

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func newTestWatcher(t *testing.T, dir string) *CorpusWatcher {
	t.Helper()
	w, err := NewCorpusWatcher(DefaultWatchConfig(), dir, nil)
	if err != nil {
		t.Fatalf("NewCorpusWatcher() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func TestWatcherHashCache(t *testing.T) {
	w := newTestWatcher(t, t.TempDir())

	if _, ok := w.GetHash("constitution.md"); ok {
		t.Error("unexpected hash for unseen file")
	}

	w.SetHash("constitution.md", "abc123")
	hash, ok := w.GetHash("constitution.md")
	if !ok || hash != "abc123" {
		t.Errorf("GetHash = %q, %v, want abc123, true", hash, ok)
	}
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	w.handleFSEvent(fsnotify.Event{
		Name: filepath.Join(dir, "notes.txt"),
		Op:   fsnotify.Write,
	})

	w.pendingMu.Lock()
	pending := len(w.pending)
	w.pendingMu.Unlock()
	if pending != 0 {
		t.Errorf("pending = %d, want 0 for unwatched extension", pending)
	}
}

func TestWatcherFlushEmitsCreate(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	path := filepath.Join(dir, "constitution.md")
	if err := os.WriteFile(path, []byte("# Constitution\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w.handleFSEvent(fsnotify.Event{Name: path, Op: fsnotify.Create})
	w.flushPending(context.Background())

	select {
	case event := <-w.Events():
		if event.Operation != WatchOpCreate {
			t.Errorf("Operation = %q, want create", event.Operation)
		}
		if event.Path != "constitution.md" {
			t.Errorf("Path = %q, want constitution.md", event.Path)
		}
	default:
		t.Fatal("expected a watch event after flush")
	}
}

func TestWatcherSkipsUnchangedContent(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	path := filepath.Join(dir, "constitution.md")
	if err := os.WriteFile(path, []byte("# Constitution\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// First flush emits a create and caches the hash
	w.handleFSEvent(fsnotify.Event{Name: path, Op: fsnotify.Create})
	w.flushPending(context.Background())
	<-w.Events()

	// Second event with identical content should be suppressed
	w.handleFSEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	w.flushPending(context.Background())

	select {
	case event := <-w.Events():
		t.Errorf("unexpected event for unchanged content: %+v", event)
	default:
	}
}

func TestWatcherDeleteRemovesHash(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	path := filepath.Join(dir, "constitution.md")
	w.SetHash("constitution.md", "abc123")

	w.handleFSEvent(fsnotify.Event{Name: path, Op: fsnotify.Remove})
	w.flushPending(context.Background())

	select {
	case event := <-w.Events():
		if event.Operation != WatchOpDelete {
			t.Errorf("Operation = %q, want delete", event.Operation)
		}
	default:
		t.Fatal("expected a delete event")
	}

	if _, ok := w.GetHash("constitution.md"); ok {
		t.Error("hash should be removed on delete")
	}
}

func TestWatcherExcludedDirs(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	w.handleFSEvent(fsnotify.Event{
		Name: filepath.Join(dir, "node_modules", "pkg", "readme.md"),
		Op:   fsnotify.Write,
	})

	w.pendingMu.Lock()
	pending := len(w.pending)
	w.pendingMu.Unlock()
	if pending != 0 {
		t.Errorf("pending = %d, want 0 for excluded directory", pending)
	}
}
