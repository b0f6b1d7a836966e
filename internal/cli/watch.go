package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/yildizm/InternSwipe/internal/catalog"
	"github.com/yildizm/InternSwipe/internal/deck"
	"github.com/yildizm/InternSwipe/internal/logger"
)

// reloadFunc receives the reloaded deck, or the error that stopped it
type reloadFunc func(items []deck.Item, source string, err error)

// deckWatcher reloads the deck whenever one of its files changes
type deckWatcher struct {
	watcher *fsnotify.Watcher
	paths   []string
	files   map[string]bool
	dirs    map[string]bool
	role    catalog.Role
	reload  reloadFunc
	log     *logger.Logger
}

// newDeckWatcher watches paths. Files are watched through their parent
// directory so editors that replace the file on save are still seen.
func newDeckWatcher(paths []string, role catalog.Role, reload reloadFunc, log *logger.Logger) (*deckWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &deckWatcher{
		watcher: watcher,
		paths:   paths,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		role:    role,
		reload:  reload,
		log:     log,
	}

	for _, path := range paths {
		if err := w.add(path); err != nil {
			cleanupWatcher(w)
			return nil, err
		}
	}
	return w, nil
}

func (w *deckWatcher) add(path string) error {
	cleanPath := filepath.Clean(path)
	info, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}

	dir := cleanPath
	if info.IsDir() {
		w.dirs[cleanPath] = true
	} else {
		w.files[cleanPath] = true
		dir = filepath.Dir(cleanPath)
	}

	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.log.Debug("watching %s", dir)
	return nil
}

// Run handles events until ctx is done or the watcher is closed
func (w *deckWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				w.handleEvent(event)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WarnWithFields("watcher error", []logger.Field{logger.Error(err)})
		}
	}
}

// relevant reports whether event touches a deck file
func (w *deckWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}

	name := filepath.Clean(event.Name)
	if w.files[name] {
		return true
	}
	return w.dirs[filepath.Dir(name)] && isDeckFile(name)
}

// handleEvent reloads every watched path and hands the result on
func (w *deckWatcher) handleEvent(event fsnotify.Event) {
	c, err := loadCatalog(w.paths, false)
	if err != nil {
		w.log.WarnWithFields("reload failed", []logger.Field{logger.F("source", event.Name), logger.Error(err)})
		w.reload(nil, event.Name, err)
		return
	}

	items := c.Items(w.role)
	w.log.InfoWithFields("deck changed", []logger.Field{logger.F("source", event.Name), logger.Count(len(items))})
	w.reload(items, event.Name, nil)
}

// Close stops watching
func (w *deckWatcher) Close() error {
	return w.watcher.Close()
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(w *deckWatcher) {
	if err := w.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}

func isDeckFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}
