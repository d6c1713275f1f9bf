package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/ttml-transcript/internal/ttml"
)

// ensureOutputDir creates the output directory if it doesn't exist
func (c *implConverter) ensureOutputDir(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", ErrWriteFailure, dir, err)
	}
	c.logger.Debug(ctx, "Output directory ready: %s", dir)
	return nil
}

// writeTranscript writes into a temp file next to outputPath and renames
// it into place, so a failed write never leaves a truncated transcript
func (c *implConverter) writeTranscript(ctx context.Context, outputPath, title string, doc ttml.Document, includeTimestamps bool) error {
	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outputPath)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		c.cleanupTempFile(ctx, tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := c.writer.Write(tmpPath, title, doc, includeTimestamps); err != nil {
		c.cleanupTempFile(ctx, tmpPath)
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		c.cleanupTempFile(ctx, tmpPath)
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		c.cleanupTempFile(ctx, tmpPath)
		return fmt.Errorf("move into place %s: %w", outputPath, err)
	}

	return nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (c *implConverter) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		c.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		c.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
