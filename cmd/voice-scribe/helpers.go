package main

import (
	"github.com/nguyentantai21042004/voice-scribe/internal/device"
	"github.com/nguyentantai21042004/voice-scribe/internal/transcriber"
	"github.com/nguyentantai21042004/voice-scribe/internal/whisper"
	"github.com/nguyentantai21042004/voice-scribe/pkg/executor"
)

// buildTranscriber wires the production pipeline: whisper CLI engine,
// nvidia-smi CUDA prober, and the orchestrator around them.
func buildTranscriber(cctx *commandContext) transcriber.Transcriber {
	exec := executor.New()
	engine := whisper.NewEngine(cctx.cfg.Whisper.BinaryPath, exec, cctx.log)
	selector := device.NewSelector(device.NewNvidiaProber(exec), cctx.log)
	return transcriber.New(cctx.cfg, selector, engine.Transcribe, cctx.log)
}
