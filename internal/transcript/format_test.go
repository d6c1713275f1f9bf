package transcript

import (
	"testing"

	"github.com/nguyentantai21042004/ttml-transcript/internal/ttml"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{0.99, "00:00:00"},
		{62.5, "00:01:02"},
		{3599.999, "00:59:59"},
		{3723, "01:02:03"},
		{90061, "25:01:01"},
		{360000, "100:00:00"},
		{-5, "00:00:00"},
		{1e19, "2562047788015215:30:07"},
		{1e300, "2562047788015215:30:07"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	doc := ttml.Document{Segments: []ttml.Segment{
		{Text: "Hello world", Start: 62.5, HasStart: true},
		{Text: "No start"},
		{Text: "Late", Start: 3723.9, HasStart: true},
	}}

	tests := []struct {
		name              string
		includeTimestamps bool
		want              string
	}{
		{
			name:              "with timestamps",
			includeTimestamps: true,
			want:              "00:01:02 Hello world\nNo start\n01:02:03 Late",
		},
		{
			name:              "without timestamps",
			includeTimestamps: false,
			want:              "Hello world\nNo start\nLate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(doc, tt.includeTimestamps)
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			if again := Format(doc, tt.includeTimestamps); again != got {
				t.Errorf("Format() not stable: %q then %q", got, again)
			}
		})
	}
}

func TestFormatEmpty(t *testing.T) {
	for _, ts := range []bool{true, false} {
		if got := Format(ttml.Document{}, ts); got != "" {
			t.Errorf("Format(empty, %v) = %q, want empty", ts, got)
		}
	}
}

func TestFormatParsed(t *testing.T) {
	doc, err := ttml.ParseBytes([]byte(`<tt><body><div><p begin="62.5"><span>Hello </span><span>world</span></p></div></body></tt>`))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if got := Format(doc, true); got != "00:01:02 Hello world" {
		t.Errorf("Format() = %q, want %q", got, "00:01:02 Hello world")
	}
}
