package transcriber

import (
	"time"

	"github.com/nguyentantai21042004/voice-scribe/internal/config"
	"github.com/nguyentantai21042004/voice-scribe/internal/device"
	"github.com/nguyentantai21042004/voice-scribe/internal/logger"
)

type implTranscriber struct {
	cfg      *config.Config
	selector *device.Selector
	infer    Inference
	logger   logger.Logger
	now      func() time.Time
}

// New creates a Transcriber around the injected inference function.
func New(cfg *config.Config, selector *device.Selector, infer Inference, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		selector: selector,
		infer:    infer,
		logger:   log,
		now:      time.Now,
	}
}
