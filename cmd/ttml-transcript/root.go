package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var flags struct {
	configPath  string
	cacheDir    string
	outputDir   string
	format      string
	logLevel    string
	timestamps  bool
	concurrency int
}

var rootCmd = &cobra.Command{
	Use:   "ttml-transcript [input.ttml output.txt]",
	Short: "Extract plain text transcripts from TTML caption files",
	Long: `ttml-transcript extracts the spoken text of TTML caption files.

With two arguments it converts a single file. Timestamps are never written
in this mode, --timestamps is ignored.

Without arguments it searches the podcast TTML cache (paths.cache_dir) for
every .ttml file and writes one transcript per file into the output
directory, named after the episode identifier found in the cache path.`,
	Args:          singleFileArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "config.yaml", "Configuration file path")
	pf.StringVar(&flags.cacheDir, "cache-dir", "", "Root directory searched for TTML files (default: podcast cache)")
	pf.StringVar(&flags.outputDir, "output-dir", "", "Directory batch transcripts are written to (default: transcripts)")
	pf.StringVar(&flags.format, "format", "", "Output format: txt|docx")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	pf.BoolVar(&flags.timestamps, "timestamps", false, "Prefix each line with its HH:MM:SS start time (batch and watch only)")
	pf.IntVar(&flags.concurrency, "concurrency", 0, "Maximum files converted at once")

	rootCmd.AddCommand(watchCmd)
}

// singleFileArgs accepts no arguments (batch) or input and output (single file)
func singleFileArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0, 2:
		return nil
	case 1:
		return fmt.Errorf("single-file mode needs both an input and an output path")
	default:
		return fmt.Errorf("accepts at most 2 args, received %d", len(args))
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx, a, err := newApp(cmd)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		return a.runSingle(ctx, args[0], args[1])
	}
	return a.runBatch(ctx)
}

func (a *app) runSingle(ctx context.Context, input, output string) error {
	if a.cfg.Output.IncludeTimestamps {
		a.log.Warn(ctx, "Timestamps are not written in single-file mode, ignoring --timestamps")
	}

	return a.converter.ConvertFile(ctx, input, output)
}

func (a *app) runBatch(ctx context.Context) error {
	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "TTML transcript extraction")
	a.log.Info(ctx, "Source: %s", a.cfg.Paths.CacheDir)
	a.log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
	a.log.Info(ctx, "Timestamps: %v", a.cfg.Output.IncludeTimestamps)
	a.log.Info(ctx, "========================================")

	summary, err := a.converter.ConvertAll(ctx, a.cfg.Paths.CacheDir, a.cfg.Paths.Output, a.cfg.Output.IncludeTimestamps)
	if err != nil {
		return err
	}

	a.log.Info(ctx, "Processed %d of %d files, %d failed", summary.Converted, summary.Found, summary.Failed)
	for _, f := range summary.Failures {
		a.log.Warn(ctx, "  %v", f)
	}
	return nil
}
