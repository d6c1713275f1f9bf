package watcher

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/ttml-transcript/internal/logger"
)

// settleDelay gives the writer of a new file time to finish before it is read
const settleDelay = 500 * time.Millisecond

// New creates a Watcher over root and all of its subdirectories. Files with
// extension trigger handler, at most maxConcurrent at a time.
func New(root, extension string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Default to 2 concurrent if not specified
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	w := &implWatcher{
		root:          root,
		extension:     strings.ToLower(extension),
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
		delay:         settleDelay,
	}

	if err := w.addTree(root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return w, nil
}

// addTree watches dir and every directory below it
func (w *implWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		return w.watcher.Add(path)
	})
}
