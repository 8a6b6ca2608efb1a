// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"time"

	"helmbridge/cli/internal/journal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var historyOpts struct {
	limit int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently journaled operations",
	Long: `Show the most recent operations recorded in the journal. The journal is a
Postgres table enabled by journal_dsn in the config or HELMBRIDGE_JOURNAL_DSN.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.JournalDSN == "" {
			return fmt.Errorf("journal is not configured; set journal_dsn or HELMBRIDGE_JOURNAL_DSN")
		}
		j, err := journal.Open(cmd.Context(), cfg.JournalDSN)
		if err != nil {
			return err
		}
		defer j.Close()

		entries, err := j.Recent(cmd.Context(), historyOpts.limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			pterm.Info.Println("No operations recorded")
			return nil
		}
		return pterm.DefaultTable.WithHasHeader().WithData(historyTable(entries)).Render()
	},
}

func historyTable(entries []journal.Entry) pterm.TableData {
	table := pterm.TableData{{"STARTED", "OPERATION", "TARGET", "RESULT", "DURATION", "MESSAGE"}}
	for _, e := range entries {
		result := pterm.Green("ok")
		if e.Failed {
			result = pterm.Red("failed")
		}
		table = append(table, []string{
			e.StartedAt.Local().Format(time.DateTime),
			e.Operation,
			e.Target,
			result,
			e.Duration.Round(time.Millisecond).String(),
			e.Message,
		})
	}
	return table
}

func init() {
	historyCmd.Flags().IntVar(&historyOpts.limit, "limit", 20, "number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
