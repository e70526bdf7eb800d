package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tiliavir/studylog/internal/model"
)

// DefaultExportName is the suggested file name for a JSON export.
const DefaultExportName = "skilltracker-data.json"

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries",
	Long: `Export all entries in stored order (newest logged first).
Without --output the export is written to stdout. Suggested file name for
the JSON format: ` + DefaultExportName + `.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json, csv, md")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	entries, err := env.repo.ListAll()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch exportFormat {
	case "json":
		err = writeJSON(&buf, entries)
	case "csv":
		writeCSV(&buf, entries)
	case "md":
		writeMarkdown(&buf, entries)
	default:
		return fmt.Errorf("unknown export format %q (want json, csv or md)", exportFormat)
	}
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(exportOutput, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	env.log.Info("export written", zap.String("path", exportOutput), zap.String("format", exportFormat))
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", len(entries), exportOutput)
	return nil
}

// writeJSON writes entries as a two-space indented JSON array.
func writeJSON(w io.Writer, entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeCSV(w io.Writer, entries []model.Entry) {
	fmt.Fprintln(w, "id,date,category,topic,problems,hours,notes")
	for _, e := range entries {
		fmt.Fprintf(w, "%d,%s,%s,%s,%d,%s,%s\n",
			e.ID,
			e.Date,
			csvEscape(e.Category),
			csvEscape(e.Topic),
			e.Problems,
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
			csvEscape(e.Notes),
		)
	}
}

// writeMarkdown writes entries as a Markdown table.
func writeMarkdown(w io.Writer, entries []model.Entry) {
	fmt.Fprintln(w, "| Date | Category | Topic | Problems | Hours | Notes |")
	fmt.Fprintln(w, "|------|----------|-------|---------:|------:|-------|")
	for _, e := range entries {
		fmt.Fprintf(w, "| %s | %s | %s | %d | %s | %s |\n",
			e.Date,
			mdEscape(e.Category),
			mdEscape(e.Topic),
			e.Problems,
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
			mdEscape(e.Notes),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// mdEscape keeps a value inside one table cell.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "<br>")
	return strings.ReplaceAll(s, "\n", "<br>")
}
