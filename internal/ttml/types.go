package ttml

import "errors"

// ErrMalformedDocument is returned when the input is not well-formed XML
var ErrMalformedDocument = errors.New("malformed document")

// Segment is one caption cue: the text of a <p> element and its begin time
type Segment struct {
	Text     string
	Start    float64 // seconds, valid only when HasStart is set
	HasStart bool
}

// Document holds the segments of one TTML file in document order
type Document struct {
	Segments []Segment

	// UnreadableBegins counts cues whose begin attribute was present but
	// could not be parsed. Those cues are kept without a start time.
	UnreadableBegins int
}
