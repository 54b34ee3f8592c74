package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/voice-scribe/internal/config"
	"github.com/nguyentantai21042004/voice-scribe/internal/logger"
)

func testCommandContext(t *testing.T) *commandContext {
	t.Helper()
	cfg := &config.Config{
		Paths: config.PathsConfig{Output: t.TempDir()},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return &commandContext{cfg: cfg, log: logger.New("error")}
}

func TestHistoryCommandEmpty(t *testing.T) {
	cctx := testCommandContext(t)

	var buf bytes.Buffer
	cmd := newHistoryCommand(cctx)
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(buf.String(), "No previous transcription runs") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestHistoryCommandListsRuns(t *testing.T) {
	cctx := testCommandContext(t)

	runDir := filepath.Join(cctx.cfg.Paths.Output, "20260314_150926")
	if err := os.MkdirAll(runDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(runDir, "interview.srt"), []byte("1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	cmd := newHistoryCommand(cctx)
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(buf.String(), "interview") {
		t.Errorf("output missing run basename: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "interview.srt") {
		t.Errorf("output missing run file: %q", buf.String())
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	want := []string{"transcribe", "watch", "history", "doctor"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
