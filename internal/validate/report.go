package validate

import (
	"fmt"
	"sort"
	"strings"
)

// maxDetailRows caps how many offending rows a report line lists before
// truncating.
const maxDetailRows = 5

// Render formats grouped findings as the operator-facing validation report:
// a leading summary of total/pass/warning/fail counts, then one section per
// category with one line per finding. The output is deterministic for a
// given finding set.
func Render(results map[string][]Finding) string {
	var b strings.Builder

	line := strings.Repeat("=", 60)
	b.WriteString(line + "\n")
	b.WriteString("DATA VALIDATION REPORT\n")
	b.WriteString(line + "\n\n")

	total, passed, warnings, failures := Counts(results)
	b.WriteString("SUMMARY:\n")
	fmt.Fprintf(&b, "  Total Checks: %d\n", total)
	fmt.Fprintf(&b, "  Passed: %d\n", passed)
	fmt.Fprintf(&b, "  Warnings: %d\n", warnings)
	fmt.Fprintf(&b, "  Failed: %d\n\n", failures)

	for _, category := range Categories() {
		b.WriteString(categoryHeading(category) + ":\n")
		b.WriteString(strings.Repeat("-", 40) + "\n")

		findings := results[category]
		if len(findings) == 0 {
			b.WriteString("  No checks performed\n")
		}
		for _, f := range findings {
			fmt.Fprintf(&b, "  %s %s: %s\n", f.Severity.Symbol(), f.Check, f.Message)
			writeDetails(&b, f.Details)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func categoryHeading(category string) string {
	return strings.ToUpper(strings.ReplaceAll(category, "_", " "))
}

func writeDetails(b *strings.Builder, details Details) {
	switch d := details.(type) {
	case nil:
	case RowKeys:
		writeRowKeys(b, d.Rows)
	case MissingColumns:
		fmt.Fprintf(b, "    columns: %s\n", strings.Join(d.Columns, ", "))
	case NullCounts:
		cols := make([]string, 0, len(d.Counts))
		for col := range d.Counts {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			fmt.Fprintf(b, "    %s: %d nulls\n", col, d.Counts[col])
		}
	case ExpectedRecord:
		fmt.Fprintf(b, "    %d %s: expected %d-%d, got %d-%d\n",
			d.Year, d.TeamID, d.ExpectedWins, d.ExpectedLosses, d.ActualWins, d.ActualLosses)
	case BoundaryPair:
		fmt.Fprintf(b, "    %s %d: %s -> %s\n", d.Franchise, d.RelocationYear, d.Before, d.At)
	case SeasonCounts:
		for _, fs := range d.Franchises {
			status := "INSUFFICIENT"
			if fs.Sufficient {
				status = "ready"
			}
			fmt.Fprintf(b, "    %s: %d pre + %d post (%d) [%s]\n",
				fs.CanonicalID, fs.PreSeasons, fs.PostSeasons, fs.RelocationYear, status)
		}
	}
}

func writeRowKeys(b *strings.Builder, rows []RowKey) {
	n := len(rows)
	shown := rows
	if n > maxDetailRows {
		shown = rows[:maxDetailRows]
	}
	for _, r := range shown {
		fmt.Fprintf(b, "    %d %s\n", r.Year, r.TeamID)
	}
	if n > maxDetailRows {
		fmt.Fprintf(b, "    ... and %d more\n", n-maxDetailRows)
	}
}
