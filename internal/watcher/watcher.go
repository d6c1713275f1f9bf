package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/ttml-transcript/internal/logger"
)

type implWatcher struct {
	root          string
	extension     string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	delay         time.Duration
	wg            sync.WaitGroup
}

// Start monitors the tree for new TTML files until ctx is canceled
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.root)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing conversions to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				w.logger.Debug(ctx, "Ignoring vanished path %s: %v", event.Name, err)
				continue
			}

			if info.IsDir() {
				w.watchNewDir(ctx, event.Name)
				continue
			}

			if !w.isTTMLFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-TTML file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New TTML file detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name); err != nil {
				w.wg.Wait()
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// watchNewDir starts watching a directory created after Start and picks up
// TTML files that landed in it before the watch was in place
func (w *implWatcher) watchNewDir(ctx context.Context, dir string) {
	if err := w.addTree(dir); err != nil {
		w.logger.Warn(ctx, "Failed to watch new directory %s: %v", dir, err)
		return
	}
	w.logger.Debug(ctx, "Watching new directory: %s", dir)

	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() || !w.isTTMLFile(path) {
			return nil
		}
		w.logger.Info(ctx, "New TTML file detected: %s", path)
		return w.dispatch(ctx, path)
	})
}

// dispatch hands filePath to the handler in a goroutine, blocking while
// maxConcurrent conversions are running
func (w *implWatcher) dispatch(ctx context.Context, filePath string) error {
	// Small delay to ensure file is fully written
	select {
	case <-time.After(w.delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case w.semaphore <- struct{}{}:
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			defer func() { <-w.semaphore }()

			if err := w.handler(ctx, filePath); err != nil {
				w.logger.Error(ctx, "Failed to convert %s: %v", filePath, err)
			}
		}()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isTTMLFile checks if the file has the watched extension
func (w *implWatcher) isTTMLFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == w.extension
}
