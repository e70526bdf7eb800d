package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studylog/internal/query"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the last seven days and the current streak",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	return printSummary(cmd)
}

// printSummary re-reads the store and prints the summary widgets.
func printSummary(cmd *cobra.Command) error {
	entries, err := env.repo.ListAll()
	if err != nil {
		return err
	}
	s := query.Summarize(entries, env.clock)
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(s))
	return nil
}
