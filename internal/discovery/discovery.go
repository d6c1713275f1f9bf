package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Discover walks root in lexical order and returns every file with the
// configured extension, named through namer. Unreadable directories are
// skipped and reported in Result.Warnings. A missing root is an error.
func (d *implDiscoverer) Discover(ctx context.Context, root string, namer *Namer) (Result, error) {
	if _, err := os.Stat(root); err != nil {
		return Result{}, fmt.Errorf("stat root: %w", err)
	}

	d.logger.Debug(ctx, "Walking %s for *%s files", root, d.extension)

	var res Result
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			d.logger.Warn(ctx, "Skipping unreadable path %s: %v", path, err)
			res.Warnings = append(res.Warnings, fmt.Errorf("read %s: %w", path, err))
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() || !d.matches(path) {
			return nil
		}

		file, err := d.Name(path, namer)
		if err != nil {
			d.logger.Warn(ctx, "Skipping %s: %v", path, err)
			res.Warnings = append(res.Warnings, err)
			return nil
		}

		d.logger.Debug(ctx, "Found %s -> %s", file.Path, file.OutputName)
		res.Files = append(res.Files, file)
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("walk %s: %w", root, err)
	}

	return res, nil
}

// Name derives the identifier for path and assigns its output name
func (d *implDiscoverer) Name(path string, namer *Namer) (DiscoveredFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return DiscoveredFile{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	id := d.identify(abs)
	return DiscoveredFile{
		Path:       abs,
		Identifier: id,
		OutputName: namer.Assign(id),
	}, nil
}

func (d *implDiscoverer) matches(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == d.extension
}
