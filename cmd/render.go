package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/studylog/internal/model"
	"github.com/Tiliavir/studylog/internal/query"
	"github.com/Tiliavir/studylog/internal/timecalc"
)

var (
	dateStyle     = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Padding(0, 1)
	topicStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	notesStyle    = mutedStyle.Italic(true).PaddingLeft(2)
	statStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Align(lipgloss.Center)
)

// renderEntry renders one entry block. Entries dated on the calendar day of
// now are tagged "today".
func renderEntry(e model.Entry, now time.Time) string {
	parts := []string{dateStyle.Render(e.Date.Long())}
	if timecalc.SameDay(e.Date.In(now.Location()), now) {
		parts = append(parts, " ", todayStyle.Render("today"))
	}
	parts = append(parts,
		" ",
		categoryStyle.Render(e.Category),
		" ",
		mutedStyle.Render(fmt.Sprintf("#%d", e.ID)),
	)
	header := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	lines := []string{
		header,
		topicStyle.Render(e.Topic),
		fmt.Sprintf("%d problems  %s hours", e.Problems, strconv.FormatFloat(e.Hours, 'f', -1, 64)),
	}
	if e.Notes != "" {
		lines = append(lines, notesStyle.Render(e.Notes))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSummary(s query.Summary) string {
	stat := func(label, value string) string {
		return statStyle.Render(lipgloss.JoinVertical(lipgloss.Center, value, mutedStyle.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		stat("problems this week", strconv.Itoa(s.Problems)),
		stat("hours this week", timecalc.FormatHours(s.Hours)),
		stat("day streak", strconv.Itoa(s.Streak)),
		stat("days studied", strconv.Itoa(s.DistinctDays)),
	)
}
