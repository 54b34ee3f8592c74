package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voice-scribe/internal/watcher"
)

func newWatchCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and transcribe new audio files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := os.MkdirAll(cctx.cfg.Paths.Input, 0755); err != nil {
				return fmt.Errorf("create input directory: %w", err)
			}

			t := buildTranscriber(cctx)
			handler := func(ctx context.Context, path string) error {
				_, err := t.Transcribe(ctx, path)
				return err
			}

			// Runs stay sequential: one transcription at a time.
			w, err := watcher.New(cctx.cfg.Paths.Input, handler, cctx.log, 1)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			cctx.log.Info(ctx, "Monitoring %s, writing to %s. Press Ctrl+C to stop", cctx.cfg.Paths.Input, cctx.cfg.Paths.Output)

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
