package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/csmtools/stylelens/internal/aggregate"
)

// topN limits the per-dimension console summary tables.
const topN = 5

// WriteSummary renders the post-run console summary: total count, the
// most frequent rules and principles, and any unmapped rules.
func WriteSummary(w io.Writer, r *Report, noColor bool) {
	heading := color.New(color.FgCyan, color.Bold)
	if noColor {
		heading.DisableColor()
	}

	_, _ = heading.Fprintln(w, "=== Analysis Summary ===")
	_, _ = fmt.Fprintf(w, "Total violations found: %s\n", humanize.Comma(int64(r.Total())))

	if r.Total() == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = heading.Fprintln(w, "Most common violations")
	_, _ = fmt.Fprintln(w, renderEntryTable("Checkstyle Rule", top(r.ByRule, topN)))

	_, _ = fmt.Fprintln(w)
	_, _ = heading.Fprintln(w, "Most violated CSM principles")
	_, _ = fmt.Fprintln(w, renderEntryTable("CSM Principle", top(r.ByPrinciple, topN)))

	unmapped := r.UnmappedRules()
	if len(unmapped) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = heading.Fprintln(w, "Unmapped Checkstyle rules")
	_, _ = fmt.Fprintln(w, renderEntryTable("Checkstyle Rule", unmapped))
}

func renderEntryTable(keyHeader string, entries []aggregate.Entry) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false

	tbl.AppendHeader(table.Row{keyHeader, "Count"})

	for _, entry := range entries {
		tbl.AppendRow(table.Row{entry.Key, entry.Count})
	}

	return tbl.Render()
}

func top(entries []aggregate.Entry, limit int) []aggregate.Entry {
	if len(entries) <= limit {
		return entries
	}

	return entries[:limit]
}
