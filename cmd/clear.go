package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all entries",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runClear(cmd *cobra.Command, args []string) error {
	entries, err := env.repo.ListAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries to clear.")
		return nil
	}

	if !clearYes {
		fmt.Fprintf(out, "Delete all %d entries? This cannot be undone. [y/N]: ", len(entries))
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if !confirmed(answer) {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := env.repo.ClearAll(); err != nil {
		return err
	}
	fmt.Fprintln(out, "All entries cleared.")
	return nil
}

// confirmed reports whether a prompt answer means yes.
func confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
