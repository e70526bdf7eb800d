package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a single entry by id",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid entry id %q: %w", args[0], err)
	}

	entries, err := env.repo.ListAll()
	if err != nil {
		return err
	}
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			break
		}
	}

	out := cmd.OutOrStdout()
	if !found {
		fmt.Fprintf(out, "No entry with id %d.\n", id)
		return nil
	}
	if err := env.repo.Remove(id); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted entry %d.\n", id)
	return printSummary(cmd)
}
