package summary

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderFranchiseTable writes the per-franchise summaries as an aligned text
// table for operators.
func RenderFranchiseTable(w io.Writer, summaries []FranchiseSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{
		"Franchise", "Name", "Seasons", "Span", "Relocated",
		"Pre", "Post", "Win%", "Delta", "Effect", "Status",
	})

	for _, s := range summaries {
		relocated := "-"
		if s.RelocationYear != 0 {
			relocated = fmt.Sprintf("%d", s.RelocationYear)
		}
		delta := "-"
		if s.HasDelta {
			delta = fmt.Sprintf("%+.3f", s.Delta)
		}
		effect := "-"
		if s.HasEffect {
			effect = fmt.Sprintf("%.2f (%s)", s.EffectSize, s.EffectBand)
		}
		status := ""
		if s.RelocationYear != 0 {
			status = "INSUFFICIENT"
			if s.Sufficient {
				status = "ready"
			}
		}
		t.AppendRow(table.Row{
			s.CanonicalID,
			s.CurrentName,
			s.Seasons,
			fmt.Sprintf("%d-%d", s.FirstYear, s.LastYear),
			relocated,
			s.Pre.Seasons,
			s.Post.Seasons,
			fmt.Sprintf("%.3f", s.MeanWinPct),
			delta,
			effect,
			status,
		})
	}
	t.Render()
}

// RenderDatasetSummary writes the whole-dataset summary block.
func RenderDatasetSummary(w io.Writer, ds DatasetSummary) {
	fmt.Fprintln(w, "DATASET SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  Total seasons: %d (%d mapped, %d unmapped)\n", ds.TotalSeasons, ds.MappedSeasons, ds.UnmappedSeasons)
	fmt.Fprintf(w, "  Franchises: %d (%d relocated)\n", ds.Franchises, ds.RelocatedFranchises)
	fmt.Fprintf(w, "  Sufficient for testing: %d/%d\n", ds.SufficientFranchises, ds.RelocatedFranchises)
	fmt.Fprintf(w, "  Ready for meta-analysis: %v\n", ds.ReadyForAnalysis)
	fmt.Fprintf(w, "  Findings: %d total, %d passed, %d warnings, %d failures\n",
		ds.FindingCounts.Total, ds.FindingCounts.Passed, ds.FindingCounts.Warnings, ds.FindingCounts.Failures)
}

// RenderUnmappedTable writes the unmapped identifier analysis.
func RenderUnmappedTable(w io.Writer, groups []UnmappedGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No unmapped franchise identifiers")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"ID", "Seasons", "Span", "Teams", "Leagues", "Classification"})
	for _, g := range groups {
		t.AppendRow(table.Row{
			g.FranchiseID,
			g.Seasons,
			fmt.Sprintf("%d-%d", g.FirstYear, g.LastYear),
			strings.Join(truncate(g.Names, 2), ", "),
			strings.Join(g.Leagues, ", "),
			g.Classification,
		})
	}
	t.Render()
}

func truncate(values []string, max int) []string {
	if len(values) <= max {
		return values
	}
	out := append([]string(nil), values[:max]...)
	return append(out, "...")
}
