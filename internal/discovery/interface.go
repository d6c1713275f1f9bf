package discovery

import "context"

// DiscoveredFile pairs a TTML input with the name its transcript is written under
type DiscoveredFile struct {
	Path       string // absolute input path
	Identifier string
	OutputName string
}

// Result is the outcome of one discovery pass
type Result struct {
	Files []DiscoveredFile

	// Warnings holds errors for paths skipped during the walk: unreadable
	// directories or files, and files that could not be named
	Warnings []error
}

// Discoverer finds TTML files under a root and names their outputs
type Discoverer interface {
	Discover(ctx context.Context, root string, namer *Namer) (Result, error)
	// Name derives and assigns the output name for a single file
	Name(path string, namer *Namer) (DiscoveredFile, error)
}

// IdentifierFunc derives a stable identifier from an input path
type IdentifierFunc func(path string) string
