package discovery

import (
	"strings"

	"github.com/nguyentantai21042004/ttml-transcript/internal/logger"
)

type implDiscoverer struct {
	extension string
	identify  IdentifierFunc
	logger    logger.Logger
}

// New creates a Discoverer matching files with extension (case-insensitive).
// A nil identify falls back to BaseName.
func New(extension string, identify IdentifierFunc, log logger.Logger) Discoverer {
	if identify == nil {
		identify = BaseName
	}
	return &implDiscoverer{
		extension: strings.ToLower(extension),
		identify:  identify,
		logger:    log,
	}
}
