package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/ttml-transcript/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Convert TTML files as they appear in the cache",
	Long: `Watch the TTML cache directory tree and convert every new .ttml file
into the output directory. Output names follow the batch naming rules and are
assigned once per file for the lifetime of the watch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runWatch(ctx)
	},
}

func (a *app) runWatch(ctx context.Context) error {
	handler := a.converter.WatchHandler(a.cfg.Paths.Output, a.cfg.Output.IncludeTimestamps)

	w, err := watcher.New(a.cfg.Paths.CacheDir, a.cfg.Naming.Extension, handler, a.log, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "Watching: %s", a.cfg.Paths.CacheDir)
	a.log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
	a.log.Info(ctx, "Press Ctrl+C to stop")
	a.log.Info(ctx, "========================================")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch %s: %w", a.cfg.Paths.CacheDir, err)
	}

	a.log.Info(ctx, "Watch stopped")
	return nil
}
