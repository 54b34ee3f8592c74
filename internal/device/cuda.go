package device

import (
	"context"
	"os/exec"
	"strings"

	"github.com/nguyentantai21042004/voice-scribe/pkg/executor"
)

// nvidiaProber detects CUDA by asking nvidia-smi for the GPU inventory.
type nvidiaProber struct {
	executor executor.Executor
}

// NewNvidiaProber creates a Prober that shells out to nvidia-smi.
func NewNvidiaProber(exec executor.Executor) Prober {
	return &nvidiaProber{executor: exec}
}

func (p *nvidiaProber) CUDAAvailable(ctx context.Context) (bool, error) {
	if _, err := exec.LookPath("nvidia-smi"); err != nil {
		return false, nil
	}

	out, err := p.executor.Execute(ctx, "nvidia-smi", "--query-gpu=name", "--format=csv,noheader")
	if err != nil {
		// A present but failing nvidia-smi means no usable GPU.
		return false, nil
	}

	return strings.TrimSpace(out) != "", nil
}
