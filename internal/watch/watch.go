// Package watch re-runs a callback when diagram files matching a set of
// patterns change. Bursts of events are debounced into one call.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/calumari/pumlgen/internal/errors"
	"github.com/calumari/pumlgen/internal/logger"
)

// DefaultDebounce is used when New is given a non-positive period.
const DefaultDebounce = 300 * time.Millisecond

// Func receives the changed files, sorted.
type Func func(ctx context.Context, files []string) error

// Watcher watches the directories that can hold matching files.
type Watcher struct {
	patterns []string
	debounce time.Duration
	fn       Func
	watcher  *fsnotify.Watcher

	// ready is signalled by the debounce timer; Run drains it, so calls to
	// fn never overlap and none starts after Run returns.
	ready chan struct{}

	mu      sync.Mutex
	pending map[string]bool
	timer   *time.Timer
}

// New starts watching the directories for patterns. Patterns are file
// names or doublestar globs; "**" also watches every subdirectory.
func New(patterns []string, debounce time.Duration, fn Func) (*Watcher, error) {
	if len(patterns) == 0 {
		return nil, errors.WithHint(errors.WithStack(errors.ErrNoInputs), "pass at least one file or pattern to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	w := &Watcher{
		patterns: patterns,
		debounce: debounce,
		fn:       fn,
		watcher:  fw,
		ready:    make(chan struct{}, 1),
		pending:  make(map[string]bool),
	}
	for _, dir := range watchDirs(patterns) {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "watch %s", dir)
		}
		logger.Debugw("watching directory", logger.FieldFile, dir)
	}
	return w, nil
}

// watchDirs returns the directories to register for patterns.
func watchDirs(patterns []string) []string {
	var dirs []string
	for _, p := range patterns {
		if !isGlob(p) {
			dirs = append(dirs, filepath.Dir(p))
			continue
		}
		base, rest := doublestar.SplitPattern(filepath.ToSlash(p))
		base = filepath.FromSlash(base)
		dirs = append(dirs, base)
		if strings.Contains(rest, "**") {
			_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
				if err == nil && d.IsDir() && path != base {
					dirs = append(dirs, path)
				}
				return nil
			})
		}
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}

func isGlob(p string) bool { return strings.ContainsAny(p, "*?[{") }

// Match reports whether name is selected by one of the patterns.
func (w *Watcher) Match(name string) bool {
	for _, p := range w.patterns {
		if !isGlob(p) {
			if filepath.Clean(p) == filepath.Clean(name) {
				return true
			}
			continue
		}
		if ok, _ := doublestar.PathMatch(p, name); ok {
			return true
		}
	}
	return false
}

// Run processes events until ctx is cancelled. The callback runs on the
// calling goroutine; events arriving meanwhile are batched into the next
// call.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.ready:
			w.flush(ctx)
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("watch error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) && w.recursive() {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				logger.Warnw("watch new directory failed", logger.FieldFile, event.Name, logger.FieldError, err)
			}
			return
		}
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	if !w.Match(event.Name) {
		return
	}
	logger.Debugw("change detected", logger.FieldFile, event.Name)
	w.schedule(event.Name)
}

func (w *Watcher) recursive() bool {
	for _, p := range w.patterns {
		if strings.Contains(p, "**") {
			return true
		}
	}
	return false
}

// schedule records name and restarts the debounce timer.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending[name] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.ready <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	files := make([]string, 0, len(w.pending))
	for f := range w.pending {
		files = append(files, f)
	}
	clear(w.pending)
	w.mu.Unlock()

	if len(files) == 0 || ctx.Err() != nil {
		return
	}
	slices.Sort(files)
	if err := w.fn(ctx, files); err != nil {
		logger.Errorw("regeneration failed", logger.FieldError, err, logger.FieldCount, len(files))
	}
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	w.watcher.Close()
}
