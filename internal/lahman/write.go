package lahman

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/albapepper/lineage-data/internal/season"
	"github.com/albapepper/lineage-data/internal/summary"
)

// WriteAnnotated writes the annotated season table as CSV. The original
// columns come first, the lineage annotations after.
func WriteAnnotated(path string, annotated []season.Annotated) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"yearID", "teamID", "franchID", "lgID", "name", "W", "L", "G", "W_pct",
		"canonical_franchise", "is_relocated_franchise", "relocation_year",
		"pre_relocation", "post_relocation", "years_since_relocation", "relocation_era",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, a := range annotated {
		relocationYear := ""
		if a.RelocationYear != 0 {
			relocationYear = strconv.Itoa(a.RelocationYear)
		}
		yearsSince := ""
		if a.PostRelocation {
			yearsSince = strconv.Itoa(a.YearsSinceRelocation)
		}
		row := []string{
			strconv.Itoa(a.Year),
			a.TeamID,
			a.FranchiseID,
			a.League,
			a.Name,
			strconv.Itoa(a.Wins),
			strconv.Itoa(a.Losses),
			strconv.Itoa(a.Games()),
			fmt.Sprintf("%.3f", a.WinPct()),
			a.CanonicalFranchise,
			strconv.FormatBool(a.IsRelocated),
			relocationYear,
			strconv.FormatBool(a.PreRelocation),
			strconv.FormatBool(a.PostRelocation),
			yearsSince,
			a.RelocationEra,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// WriteSummaries writes the per-franchise summaries as CSV.
func WriteSummaries(path string, summaries []summary.FranchiseSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"franchise", "current_name", "relocation_year", "total_seasons",
		"pre_relocation_seasons", "post_relocation_seasons",
		"pre_avg_wpct", "post_avg_wpct", "wpct_change",
		"effect_size", "effect_magnitude", "sufficient_data",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range summaries {
		relocationYear := ""
		if s.RelocationYear != 0 {
			relocationYear = strconv.Itoa(s.RelocationYear)
		}
		delta := ""
		if s.HasDelta {
			delta = fmt.Sprintf("%.4f", s.Delta)
		}
		effectSize, effectBand := "", ""
		if s.HasEffect {
			effectSize = fmt.Sprintf("%.4f", s.EffectSize)
			effectBand = s.EffectBand
		}
		row := []string{
			s.CanonicalID,
			s.CurrentName,
			relocationYear,
			strconv.Itoa(s.Seasons),
			strconv.Itoa(s.Pre.Seasons),
			strconv.Itoa(s.Post.Seasons),
			fmt.Sprintf("%.4f", s.Pre.MeanWinPct),
			fmt.Sprintf("%.4f", s.Post.MeanWinPct),
			delta,
			effectSize,
			effectBand,
			strconv.FormatBool(s.Sufficient),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// WriteReport writes a rendered text report.
func WriteReport(path, report string) error {
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
