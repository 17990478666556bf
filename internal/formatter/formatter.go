// Package formatter renders the human-readable enrichment report.
package formatter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"regions/internal/models"
)

// PreviewRows is the number of rows shown by Preview
const PreviewRows = 5

// previewColumns are shown when the table carries the usual result fields
var previewColumns = []string{"year", models.ConstituencyColumn, models.RegionColumn, "party", "vote_count"}

// Reporter writes progress and summary lines for one enrichment run
type Reporter struct {
	out  io.Writer
	warn *color.Color
	fail *color.Color
}

// New creates a Reporter writing to out
func New(out io.Writer) *Reporter {
	return &Reporter{
		out:  out,
		warn: color.New(color.FgYellow, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
	}
}

// Loaded confirms the input was read
func (r *Reporter) Loaded(path string, rows int) {
	fmt.Fprintf(r.out, "Loaded %s records from %s\n", humanize.Comma(int64(rows)), path)
}

// MissingColumn reports a table without the required column
func (r *Reporter) MissingColumn(column string, available []string) {
	r.fail.Fprintf(r.out, "Error: '%s' column not found in CSV file\n", column)
	fmt.Fprintf(r.out, "Available columns: %s\n", quoteList(available))
}

// Unknown warns about constituencies missing from the region table
func (r *Reporter) Unknown(names []string) {
	if len(names) == 0 {
		return
	}
	r.warn.Fprintf(r.out, "\nWarning: %d unknown constituencies found:\n", len(names))
	for _, name := range names {
		fmt.Fprintf(r.out, "  - %s\n", name)
	}
}

// Distribution prints the per-region row counts in the given order
func (r *Reporter) Distribution(counts []models.RegionCount) {
	fmt.Fprintln(r.out, "\nRegion distribution:")
	for _, c := range counts {
		fmt.Fprintf(r.out, "  %s: %s records\n", c.Region, humanize.Comma(int64(c.Count)))
	}
}

// Saved confirms where the enriched table was written
func (r *Reporter) Saved(path string) {
	fmt.Fprintf(r.out, "\nUpdated data saved to: %s\n", path)
}

// Archived confirms rows were copied to the archive
func (r *Reporter) Archived(rows int) {
	fmt.Fprintf(r.out, "Archived %s records\n", humanize.Comma(int64(rows)))
}

// Warning prints a user-facing warning line
func (r *Reporter) Warning(format string, args ...any) {
	r.warn.Fprintf(r.out, "Warning: ")
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Failure prints a user-facing error line
func (r *Reporter) Failure(format string, args ...any) {
	r.fail.Fprintf(r.out, "Error: ")
	fmt.Fprintf(r.out, format+"\n", args...)
}

// PreviewColumns picks the columns shown by Preview: the usual result
// fields when year, party and vote_count are all present, otherwise every
// output column.
func PreviewColumns(table *models.EnrichedTable) []string {
	header := table.Header()
	for _, want := range []string{"year", "party", "vote_count"} {
		if !contains(header, want) {
			return header
		}
	}
	return previewColumns
}

// Preview prints the first PreviewRows rows as an aligned table
func (r *Reporter) Preview(table *models.EnrichedTable) error {
	fmt.Fprintln(r.out, "\nPreview of updated data:")

	columns := PreviewColumns(table)
	w := tabwriter.NewWriter(r.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for i := 0; i < table.Len() && i < PreviewRows; i++ {
		cells := make([]string, len(columns))
		for j, c := range columns {
			cells[j], _ = table.Field(i, c)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func quoteList(list []string) string {
	quoted := make([]string, len(list))
	for i, s := range list {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
