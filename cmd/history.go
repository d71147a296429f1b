package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bryyzxm/auto-short/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously fetched transcripts",
	RunE:  historyRun,
}

func historyRun(cmd *cobra.Command, args []string) error {
	entries, err := history.Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No history entries found.")
		return nil
	}

	for _, item := range history.FormatForDisplay(entries) {
		fmt.Println(item)
	}
	return nil
}
