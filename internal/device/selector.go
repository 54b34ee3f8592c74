package device

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/voice-scribe/internal/logger"
)

// Device is a concrete compute target, never the unresolved auto sentinel.
type Device string

const (
	CPU  Device = "cpu"
	CUDA Device = "cuda"
)

// Preference is the requested device before resolution.
type Preference string

const (
	PreferAuto Preference = "auto"
	PreferCUDA Preference = "cuda"
	PreferCPU  Preference = "cpu"
)

// Resolution is the outcome of resolving a preference: the device to use,
// whether the request was downgraded, and why.
type Resolution struct {
	Device   Device
	Fallback bool
	Reason   string
}

// Prober reports whether CUDA is usable on this host.
type Prober interface {
	CUDAAvailable(ctx context.Context) (bool, error)
}

// Selector maps device preferences onto usable devices. Resolution happens
// once per run, immediately before model load; results are never cached
// because GPU availability can change between runs.
type Selector struct {
	prober Prober
	logger logger.Logger
}

// NewSelector creates a Selector backed by the given CUDA prober.
func NewSelector(prober Prober, log logger.Logger) *Selector {
	return &Selector{prober: prober, logger: log}
}

// Resolve maps a requested preference onto a usable device. CPU requests
// never probe. CUDA requests that cannot be satisfied fall back to CPU with
// a reported reason instead of failing; probe errors count as unavailable.
func (s *Selector) Resolve(ctx context.Context, pref Preference) Resolution {
	switch Preference(strings.ToLower(strings.TrimSpace(string(pref)))) {
	case PreferCPU:
		s.logger.Info(ctx, "Using CPU (forced)")
		return Resolution{Device: CPU}

	case PreferCUDA:
		if s.cudaAvailable(ctx) {
			s.logger.Info(ctx, "Using CUDA GPU")
			return Resolution{Device: CUDA}
		}
		reason := "CUDA requested but not available"
		s.logger.Warn(ctx, "%s, falling back to CPU", reason)
		return Resolution{Device: CPU, Fallback: true, Reason: reason}

	case PreferAuto, Preference(""):
		if s.cudaAvailable(ctx) {
			s.logger.Info(ctx, "CUDA GPU detected")
			return Resolution{Device: CUDA}
		}
		s.logger.Info(ctx, "Using CPU (no CUDA GPU detected)")
		return Resolution{Device: CPU}

	default:
		reason := "unsupported device preference " + string(pref)
		s.logger.Warn(ctx, "%s, falling back to CPU", reason)
		return Resolution{Device: CPU, Fallback: true, Reason: reason}
	}
}

func (s *Selector) cudaAvailable(ctx context.Context) bool {
	ok, err := s.prober.CUDAAvailable(ctx)
	if err != nil {
		s.logger.Debug(ctx, "CUDA probe failed: %v", err)
		return false
	}
	return ok
}
