package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/voice-scribe/internal/logger"
	"github.com/nguyentantai21042004/voice-scribe/internal/subtitle"
	"github.com/nguyentantai21042004/voice-scribe/internal/transcriber"
	"github.com/nguyentantai21042004/voice-scribe/pkg/executor"
)

// Engine shells out to the whisper CLI and parses the JSON transcript it
// produces. It satisfies transcriber.Inference via Transcribe.
type Engine struct {
	binary   string
	executor executor.Executor
	logger   logger.Logger
}

// NewEngine creates an Engine around the given whisper binary.
func NewEngine(binary string, exec executor.Executor, log logger.Logger) *Engine {
	return &Engine{binary: binary, executor: exec, logger: log}
}

// Transcribe runs whisper against the audio file, asking for a JSON
// transcript in a temporary directory, and returns the parsed segments.
func (e *Engine) Transcribe(ctx context.Context, req transcriber.Request) ([]subtitle.Segment, error) {
	tmpDir, err := os.MkdirTemp("", "voice-scribe-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	args := []string{
		req.AudioPath,
		"--model", req.Model,
		"--task", req.Task,
		"--device", string(req.Device),
		"--output_format", "json",
		"--output_dir", tmpDir,
	}
	if req.Language != "" {
		args = append(args, "--language", req.Language)
	}

	e.logger.Debug(ctx, "Running %s for %s on %s", e.binary, req.AudioPath, req.Device)

	if _, err := e.executor.Execute(ctx, e.binary, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(req.AudioPath), filepath.Ext(req.AudioPath))
	return loadSegments(filepath.Join(tmpDir, base+".json"))
}

type payloadSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type payload struct {
	Segments []payloadSegment `json:"segments"`
	Language string           `json:"language"`
}

// loadSegments parses the whisper JSON payload, preserving segment order.
func loadSegments(path string) ([]subtitle.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse whisper json: %w", err)
	}

	segments := make([]subtitle.Segment, len(p.Segments))
	for i, s := range p.Segments {
		segments[i] = subtitle.Segment{Start: s.Start, End: s.End, Text: s.Text}
	}
	return segments, nil
}
