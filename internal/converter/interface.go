package converter

import (
	"context"

	"github.com/nguyentantai21042004/ttml-transcript/internal/discovery"
)

// Converter turns TTML files into transcript files
type Converter interface {
	// ConvertFile converts one file. Timestamps are always omitted.
	ConvertFile(ctx context.Context, inputPath, outputPath string) error
	// ConvertAll discovers every TTML file under root and writes one
	// transcript per file into outputDir
	ConvertAll(ctx context.Context, root, outputDir string, includeTimestamps bool) (Summary, error)
	// ConvertDiscovered converts a file already named by discovery
	ConvertDiscovered(ctx context.Context, file discovery.DiscoveredFile, outputDir string, includeTimestamps bool) error
	// WatchHandler returns a handler converting each new file once per session
	WatchHandler(outputDir string, includeTimestamps bool) func(ctx context.Context, path string) error
}
