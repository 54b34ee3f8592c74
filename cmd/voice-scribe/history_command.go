package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voice-scribe/internal/output"
)

func newHistoryCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List previous transcription runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := output.History(cctx.cfg.Paths.Output)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintf(out, "No previous transcription runs found in %s\n", cctx.cfg.Paths.Output)
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.Started.Format("2006-01-02 15:04:05"),
					run.Basename,
					strconv.Itoa(len(run.Files)),
					strings.Join(run.Files, ", "),
				})
			}

			fmt.Fprintln(out, renderTable([]string{"Started", "Input", "Files", "Outputs"}, rows))
			return nil
		},
	}
}
