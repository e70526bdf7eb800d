package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studylog/internal/model"
	"github.com/Tiliavir/studylog/internal/query"
)

var (
	listCategory string
	listSort     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List study entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", query.AllCategories, "Only show this category (\"all\" for every category)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Order: newest, oldest, mostProblems, mostHours (default from config)")
}

func runList(cmd *cobra.Command, args []string) error {
	sortBy := listSort
	if sortBy == "" {
		sortBy = env.cfg.DefaultSort
	}
	key, err := query.ParseSortKey(sortBy)
	if err != nil {
		return err
	}

	entries, err := env.repo.ListAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries yet. Start tracking your progress!")
		return nil
	}

	shown := query.Sort(query.FilterByCategory(entries, listCategory), key)
	printList(out, shown, env.clock.Now())
	return nil
}

// printList renders entries one block each, separated by blank lines.
func printList(w io.Writer, entries []model.Entry, now time.Time) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found for this filter.")
		return
	}
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, renderEntry(e, now))
	}
}
