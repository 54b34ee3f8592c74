package transcriber

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nguyentantai21042004/voice-scribe/internal/device"
	"github.com/nguyentantai21042004/voice-scribe/internal/output"
	"github.com/nguyentantai21042004/voice-scribe/internal/subtitle"
)

// Request carries everything the inference collaborator needs for one run.
// The model is bound to Device at load time and cannot move within a run.
type Request struct {
	AudioPath string
	Model     string
	Language  string // empty means auto-detect
	Task      string
	Device    device.Device
}

// Inference invokes the external speech-recognition model and returns the
// ordered segment sequence it produced.
type Inference func(ctx context.Context, req Request) ([]subtitle.Segment, error)

// Result describes one completed transcription run.
type Result struct {
	OutputDir string
	Files     []string
	Segments  []subtitle.Segment
	Device    device.Device
	Elapsed   time.Duration
}

// Transcribe runs the full pipeline for one audio file: resolve the target
// device, invoke inference, then encode and write every recognized format
// into a fresh timestamped batch. An unrecognized format is skipped with a
// warning; a CUDA inference failure is retried once on CPU before the run
// is declared fatal.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	startTime := t.now()

	formats, dropped := subtitle.ParseFormats(t.cfg.Output.Formats)
	for _, name := range dropped {
		t.logger.Warn(ctx, "Skipping unsupported output format %q", name)
	}
	if len(formats) == 0 {
		return nil, fmt.Errorf("no valid output formats requested (supported: %v)", subtitle.SupportedFormats)
	}

	// The input must be readable before any device resolution or write.
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("audio file %s: %w", audioPath, err)
	}

	resolution := t.selector.Resolve(ctx, device.Preference(t.cfg.Output.Device))
	dev := resolution.Device

	t.logger.Info(ctx, "Transcribing %s on %s (model %s)", audioPath, dev, t.cfg.Whisper.Model)

	req := Request{
		AudioPath: audioPath,
		Model:     t.cfg.Whisper.Model,
		Language:  t.cfg.Whisper.Language,
		Task:      t.cfg.Whisper.Task,
		Device:    dev,
	}

	segments, err := t.infer(ctx, req)
	if err != nil {
		if dev != device.CUDA {
			return nil, fmt.Errorf("transcription on %s: %w", dev, err)
		}
		t.logger.Warn(ctx, "Inference failed on CUDA, retrying on CPU: %v", err)
		dev = device.CPU
		req.Device = dev
		if segments, err = t.infer(ctx, req); err != nil {
			return nil, fmt.Errorf("transcription after CPU retry: %w", err)
		}
	}

	batch := output.NewBatch(t.cfg.Paths.Output, audioPath, formats, t.now())
	if err := batch.Create(); err != nil {
		return nil, err
	}

	result := &Result{OutputDir: batch.Dir, Segments: segments, Device: dev}
	for _, f := range formats {
		enc, _ := subtitle.EncoderFor(f)
		data, err := enc(segments)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f, err)
		}
		path := batch.Files[f]
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		t.logger.Info(ctx, "Saved %s to %s", f, path)
		result.Files = append(result.Files, path)
	}

	result.Elapsed = t.now().Sub(startTime)
	t.logger.Info(ctx, "Transcription completed in %s (%d segments)", result.Elapsed, len(segments))
	return result, nil
}
