package transcript

import (
	"fmt"
	"math"
	"strings"

	"github.com/nguyentantai21042004/ttml-transcript/internal/ttml"
)

// FormatTimestamp renders seconds as HH:MM:SS, truncating the fraction.
// Hours are not wrapped at 24. Values beyond the int64 range are clamped.
func FormatTimestamp(seconds float64) string {
	var total int64
	switch {
	case math.IsNaN(seconds) || seconds < 0:
		total = 0
	case seconds >= math.MaxInt64:
		total = math.MaxInt64
	default:
		total = int64(seconds)
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Lines renders each segment of doc as one line
func Lines(doc ttml.Document, includeTimestamps bool) []string {
	lines := make([]string, 0, len(doc.Segments))
	for _, seg := range doc.Segments {
		if includeTimestamps && seg.HasStart {
			lines = append(lines, FormatTimestamp(seg.Start)+" "+seg.Text)
			continue
		}
		lines = append(lines, seg.Text)
	}
	return lines
}

// Format renders doc as plain text, one segment per line
func Format(doc ttml.Document, includeTimestamps bool) string {
	return strings.Join(Lines(doc, includeTimestamps), "\n")
}
