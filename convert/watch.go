package convert

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a file must stay unchanged before it is
// converted again. Editors often write a file in several steps.
const DefaultDebounce = 100 * time.Millisecond

// Watcher converts source files again whenever they change.
type Watcher struct {
	logger    *zap.Logger
	converter Converter
	config    Config
	watcher   *fsnotify.Watcher
	debounce  time.Duration

	// roots holds the added paths, true for directories.
	roots map[string]bool
}

func NewWatcher(logger *zap.Logger, converter Converter, config Config) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	return &Watcher{
		logger:    logger,
		converter: converter,
		config:    config,
		watcher:   w,
		debounce:  DefaultDebounce,
		roots:     make(map[string]bool),
	}, nil
}

// SetDebounce changes the quiet period before a changed file is converted.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// Add watches path. Directories are watched with all their subdirectories
// and their files with a configured extension are converted. A single file
// is converted whatever its extension, and its siblings are left alone.
func (w *Watcher) Add(path string) error {
	path = filepath.Clean(path)
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(p)
		}
		if p == path {
			// a single file is watched through its directory
			return w.watcher.Add(filepath.Dir(p))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error adding %s to watcher: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error adding %s to watcher: %w", path, err)
	}
	w.roots[path] = info.IsDir()
	return nil
}

// target returns the directory name was found under, "" for a file added
// by itself, and whether name is to be converted at all.
func (w *Watcher) target(name string) (root string, ok bool) {
	name = filepath.Clean(name)
	if isDir, added := w.roots[name]; added && !isDir {
		return "", true
	}
	if !w.config.HasExtension(name) {
		return "", false
	}
	for dir, isDir := range w.roots {
		if !isDir || (ok && len(dir) <= len(root)) {
			continue
		}
		if rel, err := filepath.Rel(dir, name); err == nil && !escapes(rel) {
			root, ok = dir, true
		}
	}
	return root, ok
}

// Run converts changed files until ctx is done. onResult, if not nil, is
// called from Run's goroutine after every conversion.
func (w *Watcher) Run(ctx context.Context, onResult func(Result, error)) error {
	defer w.watcher.Close()

	pending := make(map[string]time.Time)
	interval := w.debounce / 2
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if _, ok := w.target(event.Name); !ok {
				continue
			}
			pending[event.Name] = time.Now()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log().Error("Watcher error", zap.Error(err))

		case now := <-ticker.C:
			for name, changed := range pending {
				if now.Sub(changed) < w.debounce {
					continue
				}
				delete(pending, name)
				w.convert(name, onResult)
			}
		}
	}
}

func (w *Watcher) convert(name string, onResult func(Result, error)) {
	root, _ := w.target(name)
	result, err := w.converter.Convert(root, name)
	if err != nil {
		w.log().Error("Error converting file", zap.String("file", name), zap.Error(err))
	} else {
		w.log().Info("Converted file",
			zap.String("file", name),
			zap.String("output", result.Output),
			zap.Int("issues", len(result.Issues)))
	}
	if onResult != nil {
		onResult(result, err)
	}
}

func (w *Watcher) log() *zap.Logger {
	if w.logger == nil {
		return zap.NewNop()
	}
	return w.logger
}
