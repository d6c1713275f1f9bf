package converter

import (
	"github.com/nguyentantai21042004/ttml-transcript/internal/config"
	"github.com/nguyentantai21042004/ttml-transcript/internal/discovery"
	"github.com/nguyentantai21042004/ttml-transcript/internal/logger"
	"github.com/nguyentantai21042004/ttml-transcript/internal/transcript"
)

type implConverter struct {
	cfg        *config.Config
	discoverer discovery.Discoverer
	writer     transcript.Writer
	logger     logger.Logger
}

// New creates a new Converter instance
func New(cfg *config.Config, disc discovery.Discoverer, w transcript.Writer, log logger.Logger) Converter {
	return &implConverter{
		cfg:        cfg,
		discoverer: disc,
		writer:     w,
		logger:     log,
	}
}
