package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/ttml-transcript/internal/config"
	"github.com/nguyentantai21042004/ttml-transcript/internal/converter"
	"github.com/nguyentantai21042004/ttml-transcript/internal/discovery"
	"github.com/nguyentantai21042004/ttml-transcript/internal/logger"
	"github.com/nguyentantai21042004/ttml-transcript/internal/transcript"
)

func TestSingleFileArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"batch", nil, false},
		{"single file", []string{"in.ttml", "out.txt"}, false},
		{"input only", []string{"in.ttml"}, true},
		{"too many", []string{"a", "b", "c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := singleFileArgs(rootCmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("singleFileArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSingleFileIgnoresTimestamps(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "episode.ttml")
	out := filepath.Join(dir, "episode.txt")
	content := `<tt><body><div><p begin="62.5"><span>Hello </span><span>world</span></p></div></body></tt>`
	if err := os.WriteFile(in, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{
		"--config", filepath.Join(dir, "none.yaml"),
		"--log-level", "error",
		"--timestamps",
		in, out,
	})
	// an explicit --config that does not exist is an error
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected error for missing explicit config")
	}

	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0644); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetArgs([]string{"--config", cfgPath, "--timestamps", in, out})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Hello world" {
		t.Errorf("output = %q, want %q", got, "Hello world")
	}
}

func TestBatchMode(t *testing.T) {
	dir := t.TempDir()
	cache := filepath.Join(dir, "cache")
	outDir := filepath.Join(dir, "transcripts")
	for _, sub := range []string{"PodcastContentep1/a", "PodcastContentep1/b"} {
		path := filepath.Join(cache, filepath.FromSlash(sub), "transcript.ttml")
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(`<tt><body><p begin="1">Hi</p></body></tt>`), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"--config", cfgPath, "--cache-dir", cache, "--output-dir", outDir, "--timestamps"})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, name := range []string{"ep1.txt", "ep1_2.txt"} {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(got) != "00:00:01 Hi" {
			t.Errorf("%s = %q, want %q", name, got, "00:00:01 Hi")
		}
	}
}

func TestRunSingleReturnsErrorWithoutLogging(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	var buf bytes.Buffer
	log := logger.NewWithWriter("debug", &buf)
	w, err := transcript.NewWriter(cfg.Output.Format)
	if err != nil {
		t.Fatal(err)
	}
	disc := discovery.New(cfg.Naming.Extension, nil, log)
	a := &app{cfg: cfg, log: log, converter: converter.New(cfg, disc, w, log)}

	err = a.runSingle(context.Background(), filepath.Join(dir, "missing.ttml"), filepath.Join(dir, "out.txt"))
	if !errors.Is(err, converter.ErrNotFound) {
		t.Fatalf("runSingle() error = %v, want ErrNotFound", err)
	}
	if strings.Contains(buf.String(), "[ERROR]") {
		t.Errorf("failure logged before being returned: %q", buf.String())
	}
}
