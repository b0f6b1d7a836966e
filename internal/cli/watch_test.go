package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yildizm/InternSwipe/internal/catalog"
	"github.com/yildizm/InternSwipe/internal/deck"
	"github.com/yildizm/InternSwipe/internal/logger"
)

type reloadResult struct {
	items  []deck.Item
	source string
	err    error
}

func newTestWatcher(t *testing.T, paths []string) (*deckWatcher, chan reloadResult) {
	t.Helper()
	results := make(chan reloadResult, 16)
	log := logger.NewWithCallback("watch", func() bool { return false })
	log.SetOutput(io.Discard)

	w, err := newDeckWatcher(paths, catalog.RoleStudent, func(items []deck.Item, source string, err error) {
		results <- reloadResult{items, source, err}
	}, log)
	if err != nil {
		t.Fatalf("newDeckWatcher() error = %v", err)
	}
	t.Cleanup(func() { cleanupWatcher(w) })
	return w, results
}

func TestDeckWatcherRelevant(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "deck.yaml")
	if err := os.WriteFile(file, []byte(testDeck), 0o600); err != nil {
		t.Fatal(err)
	}
	other := t.TempDir()

	w, _ := newTestWatcher(t, []string{file, other})

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to deck file", fsnotify.Event{Name: file, Op: fsnotify.Write}, true},
		{"deck file replaced", fsnotify.Event{Name: file, Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: file, Op: fsnotify.Chmod}, false},
		{"sibling of deck file", fsnotify.Event{Name: filepath.Join(dir, "notes.yaml"), Op: fsnotify.Write}, false},
		{"yaml in watched directory", fsnotify.Event{Name: filepath.Join(other, "more.yml"), Op: fsnotify.Create}, true},
		{"non-yaml in watched directory", fsnotify.Event{Name: filepath.Join(other, "deck.yaml.swp"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.relevant(tt.event); got != tt.want {
				t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestDeckWatcherHandleEvent(t *testing.T) {
	file := writeFile(t, "deck.yaml", testDeck)
	w, results := newTestWatcher(t, []string{file})

	w.handleEvent(fsnotify.Event{Name: file, Op: fsnotify.Write})
	got := <-results
	if got.err != nil || len(got.items) != 2 || got.source != file {
		t.Errorf("unexpected reload: %+v", got)
	}

	if err := os.WriteFile(file, []byte("jobs: [[["), 0o600); err != nil {
		t.Fatal(err)
	}
	w.handleEvent(fsnotify.Event{Name: file, Op: fsnotify.Write})
	if got := <-results; got.err == nil {
		t.Error("a broken deck should be reported as an error")
	}
}

func TestDeckWatcherRun(t *testing.T) {
	file := writeFile(t, "deck.yaml", testDeck)
	w, results := newTestWatcher(t, []string{file})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	updated := testDeck + `  - id: "s2"
    name: "Priya Patel"
`
	if err := os.WriteFile(file, []byte(updated), 0o600); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-results:
			// editors and os.WriteFile may surface a truncated file first
			if got.err == nil {
				return
			}
		case <-timeout:
			t.Fatal("no reload after writing the deck file")
		}
	}
}

func TestNewDeckWatcherMissingPath(t *testing.T) {
	_, err := newDeckWatcher([]string{filepath.Join(t.TempDir(), "missing.yaml")}, catalog.RoleStudent, func([]deck.Item, string, error) {}, logger.NewWithCallback("watch", nil))
	if err == nil {
		t.Error("watching a missing path should fail")
	}
}
