package converter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/ttml-transcript/internal/discovery"
	"github.com/nguyentantai21042004/ttml-transcript/internal/ttml"
)

// ConvertFile converts a single TTML file to outputPath. Single-file mode
// never renders timestamps.
func (c *implConverter) ConvertFile(ctx context.Context, inputPath, outputPath string) error {
	title := discovery.BaseName(inputPath)
	if err := c.convert(ctx, inputPath, outputPath, title, false); err != nil {
		return err
	}

	c.logger.Info(ctx, "Transcript saved to %s", outputPath)
	return nil
}

// ConvertDiscovered converts file into outputDir under its assigned name
func (c *implConverter) ConvertDiscovered(ctx context.Context, file discovery.DiscoveredFile, outputDir string, includeTimestamps bool) error {
	outputPath := filepath.Join(outputDir, file.OutputName)
	if err := c.convert(ctx, file.Path, outputPath, file.Identifier, includeTimestamps); err != nil {
		return err
	}

	c.logger.Info(ctx, "[DONE] %s -> %s", file.Path, outputPath)
	return nil
}

// convert runs read -> parse -> format -> write for one file
func (c *implConverter) convert(ctx context.Context, inputPath, outputPath, title string, includeTimestamps bool) error {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, inputPath)
		}
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	doc, err := ttml.ParseBytes(content)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inputPath, err)
	}

	if doc.UnreadableBegins > 0 {
		c.logger.Debug(ctx, "%s: %d cues with unreadable begin kept without timestamp", inputPath, doc.UnreadableBegins)
	}
	c.logger.Debug(ctx, "%s: %d segments", inputPath, len(doc.Segments))

	if err := c.writeTranscript(ctx, outputPath, title, doc, includeTimestamps); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	return nil
}
