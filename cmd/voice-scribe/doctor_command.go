package main

import (
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voice-scribe/internal/device"
	"github.com/nguyentantai21042004/voice-scribe/pkg/executor"
)

func newDoctorCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tooling required for transcription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exec := executor.New()
			out := cmd.OutOrStdout()
			missing := false

			if version, err := exec.Execute(cmd.Context(), "ffmpeg", "-version"); err != nil {
				missing = true
				fmt.Fprintln(out, "ffmpeg: not found in PATH")
			} else {
				fmt.Fprintf(out, "ffmpeg: %s\n", firstLine(version))
			}

			if path, err := osexec.LookPath(cctx.cfg.Whisper.BinaryPath); err != nil {
				missing = true
				fmt.Fprintf(out, "whisper: %q not found in PATH\n", cctx.cfg.Whisper.BinaryPath)
			} else {
				fmt.Fprintf(out, "whisper: %s\n", path)
			}

			prober := device.NewNvidiaProber(exec)
			if ok, _ := prober.CUDAAvailable(cmd.Context()); ok {
				fmt.Fprintln(out, "cuda: available")
			} else {
				fmt.Fprintln(out, "cuda: not available (transcription will run on cpu)")
			}

			if missing {
				return errors.New("missing required tooling")
			}
			fmt.Fprintln(out, "System is ready for transcription")
			return nil
		},
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}
