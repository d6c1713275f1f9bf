package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/ttml-transcript/internal/config"
	"github.com/nguyentantai21042004/ttml-transcript/internal/converter"
	"github.com/nguyentantai21042004/ttml-transcript/internal/discovery"
	"github.com/nguyentantai21042004/ttml-transcript/internal/logger"
	"github.com/nguyentantai21042004/ttml-transcript/internal/transcript"
)

// app bundles what every command needs after flags are applied
type app struct {
	cfg       *config.Config
	log       logger.Logger
	converter converter.Converter
}

func newApp(cmd *cobra.Command) (context.Context, *app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(cfg.Logging.Level)
	ctx, runID := logger.WithRunID(cmd.Context())
	log.Debug(ctx, "Run %s on %s/%s", runID, runtime.GOOS, runtime.GOARCH)

	w, err := transcript.NewWriter(cfg.Output.Format)
	if err != nil {
		return nil, nil, err
	}

	disc := discovery.New(cfg.Naming.Extension, discovery.MarkerIdentifier(cfg.Naming.Marker), log)

	return ctx, &app{
		cfg:       cfg,
		log:       log,
		converter: converter.New(cfg, disc, w, log),
	}, nil
}

// loadConfig reads the config file and applies flags set on the command line
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(flags.configPath)
	} else {
		cfg, err = config.LoadOptional(flags.configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("cache-dir") {
		cfg.Paths.CacheDir = flags.cacheDir
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Paths.Output = flags.outputDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flags.format
	}
	if cmd.Flags().Changed("timestamps") {
		cfg.Output.IncludeTimestamps = flags.timestamps
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Performance.MaxConcurrent = flags.concurrency
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
