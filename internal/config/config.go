package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultMarker is the path segment that prefixes the episode ID in the
	// podcast cache layout
	DefaultMarker = "PodcastContent"

	// podcastCacheDir is the TTML cache of the macOS Podcasts app, relative to $HOME
	podcastCacheDir = "Library/Group Containers/243LU875E5.groups.com.apple.podcasts/Library/Cache/Assets/TTML"

	FormatText = "txt"
	FormatDocx = "docx"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Naming      NamingConfig      `yaml:"naming"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PathsConfig struct {
	CacheDir string `yaml:"cache_dir"`
	Output   string `yaml:"output"`
}

type NamingConfig struct {
	Marker    string `yaml:"marker"`
	Extension string `yaml:"extension"`
}

type OutputConfig struct {
	Format            string `yaml:"format"`
	IncludeTimestamps bool   `yaml:"include_timestamps"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a Config with every default applied
func Default() *Config {
	cfg := &Config{}
	// defaults only, cannot fail
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Paths.CacheDir == "" {
		c.Paths.CacheDir = DefaultCacheDir()
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "transcripts"
	}
	if c.Naming.Marker == "" {
		c.Naming.Marker = DefaultMarker
	}
	if c.Naming.Extension == "" {
		c.Naming.Extension = ".ttml"
	}
	if !strings.HasPrefix(c.Naming.Extension, ".") {
		c.Naming.Extension = "." + c.Naming.Extension
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	c.Output.Format = strings.ToLower(c.Output.Format)
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 4
	}

	switch c.Output.Format {
	case FormatText, FormatDocx:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatDocx, c.Output.Format)
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be positive, got %d", c.Performance.MaxConcurrent)
	}

	return nil
}

// DefaultCacheDir resolves the podcast TTML cache under the user's home
// directory. Falls back to a relative path when $HOME is unknown.
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return podcastCacheDir
	}
	return filepath.Join(home, podcastCacheDir)
}
