package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/ttml-transcript/internal/ttml"
)

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"", ".txt", false},
		{"txt", ".txt", false},
		{"docx", ".docx", false},
		{"srt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w, err := NewWriter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewWriter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && w.Extension() != tt.wantExt {
				t.Errorf("Extension() = %v, want %v", w.Extension(), tt.wantExt)
			}
		})
	}
}

func TestTextWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ep1.txt")
	doc := ttml.Document{Segments: []ttml.Segment{
		{Text: "first", Start: 1, HasStart: true},
		{Text: "second"},
	}}

	w, _ := NewWriter("txt")
	if err := w.Write(path, "ep1", doc, true); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "00:00:01 first\nsecond" {
		t.Errorf("file content = %q", got)
	}
}

func TestDocxWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ep1.docx")
	doc := ttml.Document{Segments: []ttml.Segment{{Text: "only line"}}}

	w, _ := NewWriter("docx")
	if err := w.Write(path, "ep1", doc, false); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}
