package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTranscribeCommand(cctx *commandContext) *cobra.Command {
	var modelFlag string
	var languageFlag string
	var taskFlag string
	var formatsFlag string
	var deviceFlag string

	cmd := &cobra.Command{
		Use:   "transcribe <audio>",
		Short: "Transcribe one audio file into the configured output formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cctx.cfg
			if modelFlag != "" {
				cfg.Whisper.Model = modelFlag
			}
			if languageFlag != "" {
				cfg.Whisper.Language = languageFlag
			}
			if taskFlag != "" {
				cfg.Whisper.Task = taskFlag
			}
			if formatsFlag != "" {
				cfg.Output.Formats = strings.Split(formatsFlag, ",")
			}
			if deviceFlag != "" {
				cfg.Output.Device = deviceFlag
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			result, err := buildTranscriber(cctx).Transcribe(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("transcription failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Transcription completed on %s (%d segments)\n", result.Device, len(result.Segments))
			fmt.Fprintf(out, "Output directory: %s\n", result.OutputDir)
			for _, f := range result.Files {
				fmt.Fprintf(out, "  %s\n", f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "Whisper model to use")
	cmd.Flags().StringVar(&languageFlag, "language", "", "Audio language code (empty for auto-detect)")
	cmd.Flags().StringVar(&taskFlag, "task", "", "Task type: transcribe or translate")
	cmd.Flags().StringVar(&formatsFlag, "formats", "", "Comma-separated output formats")
	cmd.Flags().StringVar(&deviceFlag, "device", "", "Processing device: auto, cuda or cpu")

	return cmd
}
