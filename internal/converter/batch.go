package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"
	"time"

	"github.com/nguyentantai21042004/ttml-transcript/internal/discovery"
)

// Summary reports the outcome of a batch run
type Summary struct {
	Found       int
	Converted   int
	Failed      int
	Warnings    int // paths skipped during discovery
	Failures    []FileError
	Duration    time.Duration
}

// ConvertAll names every file in one ordered discovery pass, then converts
// them concurrently. A failing file is recorded and never stops the others.
func (c *implConverter) ConvertAll(ctx context.Context, root, outputDir string, includeTimestamps bool) (Summary, error) {
	startTime := time.Now()

	c.logger.Info(ctx, "Searching for TTML files in %s", root)

	namer := discovery.NewNamer(c.writer.Extension())
	res, err := c.discoverer.Discover(ctx, root, namer)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Summary{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return Summary{}, fmt.Errorf("discover: %w", err)
	}

	summary := Summary{
		Found:       len(res.Files),
		Warnings:    len(res.Warnings),
	}
	c.logger.Info(ctx, "Found %d TTML files", summary.Found)

	if err := c.ensureOutputDir(ctx, outputDir); err != nil {
		return summary, err
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = newSemaphore(c.cfg.Performance.MaxConcurrent)
	)

	var dispatchErr error
	for i, file := range res.Files {
		if err := sem.acquire(ctx); err != nil {
			dispatchErr = err
			break
		}

		wg.Add(1)
		go func(i int, file discovery.DiscoveredFile) {
			defer wg.Done()
			defer sem.release()

			c.logger.Info(ctx, "[%d/%d] Converting: %s", i+1, summary.Found, file.Path)
			err := c.ConvertDiscovered(ctx, file, outputDir, includeTimestamps)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.logger.Error(ctx, "Failed to convert %s: %v", file.Path, err)
				summary.Failed++
				summary.Failures = append(summary.Failures, FileError{Path: file.Path, Err: err})
				return
			}
			summary.Converted++
		}(i, file)
	}
	wg.Wait()

	sort.Slice(summary.Failures, func(i, j int) bool {
		return summary.Failures[i].Path < summary.Failures[j].Path
	})
	summary.Duration = time.Since(startTime)

	c.logger.Info(ctx, "Batch complete: %d converted, %d failed, %d paths skipped (%s)",
		summary.Converted, summary.Failed, summary.Warnings, summary.Duration.Round(time.Millisecond))

	if dispatchErr != nil {
		return summary, fmt.Errorf("batch interrupted: %w", dispatchErr)
	}
	return summary, nil
}
