package transcript

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/ttml-transcript/internal/ttml"
)

// Writer persists a rendered transcript to a file
type Writer interface {
	// Extension is the file extension of written files, including the dot
	Extension() string
	Write(path, title string, doc ttml.Document, includeTimestamps bool) error
}

// NewWriter returns the Writer for format ("txt" or "docx")
func NewWriter(format string) (Writer, error) {
	switch format {
	case "", "txt":
		return textWriter{}, nil
	case "docx":
		return docxWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type textWriter struct{}

func (textWriter) Extension() string { return ".txt" }

// Write ignores title, plain text output carries only the cue lines
func (textWriter) Write(path, _ string, doc ttml.Document, includeTimestamps bool) error {
	return os.WriteFile(path, []byte(Format(doc, includeTimestamps)), 0644)
}
