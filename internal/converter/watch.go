package converter

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/ttml-transcript/internal/discovery"
)

// WatchHandler converts files reported by the watcher. Each path is named
// once per session; a file rewritten later keeps its first output name.
func (c *implConverter) WatchHandler(outputDir string, includeTimestamps bool) func(ctx context.Context, path string) error {
	var (
		mu    sync.Mutex
		namer = discovery.NewNamer(c.writer.Extension())
		seen  = make(map[string]discovery.DiscoveredFile)
		ready bool
	)

	return func(ctx context.Context, path string) error {
		mu.Lock()
		if !ready {
			if err := c.ensureOutputDir(ctx, outputDir); err != nil {
				mu.Unlock()
				return err
			}
			ready = true
		}
		file, ok := seen[path]
		if !ok {
			var err error
			file, err = c.discoverer.Name(path, namer)
			if err != nil {
				mu.Unlock()
				return err
			}
			seen[path] = file
		}
		mu.Unlock()

		return c.ConvertDiscovered(ctx, file, outputDir, includeTimestamps)
	}
}
