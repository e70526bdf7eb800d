package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tiliavir/studylog/internal/model"
	"github.com/Tiliavir/studylog/internal/timecalc"
)

var (
	addDate     string
	addProblems int
	addHours    float64
	addTopic    string
	addCategory string
	addNotes    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a study session",
	Example: `  studylog add --problems 5 --hours 1.5 --topic "Graphs" --category DSA
  studylog add --date 2026-02-26 --problems 0 --hours 2 --topic "REST" --category "Web Development" --notes "pagination"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Session date (YYYY-MM-DD); defaults to today")
	addCmd.Flags().IntVar(&addProblems, "problems", 0, "Number of problems solved")
	addCmd.Flags().Float64Var(&addHours, "hours", 0, "Hours studied")
	addCmd.Flags().StringVar(&addTopic, "topic", "", "Topic studied")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category (see config.yaml for the accepted list)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Optional notes")
	for _, name := range []string{"problems", "hours", "topic", "category"} {
		_ = addCmd.MarkFlagRequired(name)
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	now := env.clock.Now()
	today := model.DateOf(now)

	date := today
	if addDate != "" {
		d, err := model.ParseDate(addDate)
		if err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidEntry, err)
		}
		date = d
	}

	if !env.cfg.HasCategory(addCategory) {
		return fmt.Errorf("%w: unknown category %q (one of: %s)",
			model.ErrInvalidEntry, addCategory, strings.Join(env.cfg.Categories, ", "))
	}

	last, err := env.repo.LastID()
	if err != nil {
		return err
	}

	entry := model.Entry{
		ID:       timecalc.GenerateID(now, last),
		Date:     date,
		Problems: addProblems,
		Hours:    addHours,
		Topic:    addTopic,
		Category: addCategory,
		Notes:    addNotes,
	}
	if err := entry.Validate(today); err != nil {
		return err
	}

	if err := env.repo.Add(entry); err != nil {
		return err
	}
	env.log.Info("entry logged", zap.Int64("id", entry.ID), zap.String("category", entry.Category))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Logged %q on %s (id %d)\n", entry.Topic, entry.Date.Long(), entry.ID)
	return printSummary(cmd)
}
