// Package summary reduces annotated season records and validation findings
// into per-franchise and per-dataset summaries. It performs no validation of
// its own.
package summary

import (
	"math"

	"github.com/albapepper/lineage-data/internal/franchise"
	"github.com/albapepper/lineage-data/internal/season"
	"github.com/albapepper/lineage-data/internal/validate"
)

// Effect size magnitude bands (absolute Cohen's d).
const (
	BandNegligible = "negligible"
	BandSmall      = "small"
	BandMedium     = "medium"
	BandLarge      = "large"
)

// minSufficientFranchises is how many relocated franchises must clear the
// per-side season bar before the dataset supports meta-analysis.
const minSufficientFranchises = 5

// SideStats are the aggregates for one side of the pre/post split.
type SideStats struct {
	Seasons    int
	MeanWinPct float64
}

// FranchiseSummary is the per-canonical-franchise reduction.
type FranchiseSummary struct {
	CanonicalID string
	CurrentName string

	Seasons   int
	FirstYear int
	LastYear  int

	Identifiers     []string
	RelocationYears []int

	// RelocationYear is the primary split point; zero for stable franchises.
	RelocationYear int

	MeanWinPct float64
	Pre        SideStats
	Post       SideStats

	// Delta is post mean minus pre mean; valid only when HasDelta.
	Delta    float64
	HasDelta bool

	// EffectSize is Cohen's d with pooled standard deviation; valid only when
	// HasEffect. EffectBand is its magnitude band.
	EffectSize float64
	HasEffect  bool
	EffectBand string

	// Sufficient mirrors the statistical-sufficiency bar: at least ten
	// seasons on each side of the split.
	Sufficient bool
}

// DatasetSummary is the whole-dataset reduction.
type DatasetSummary struct {
	TotalSeasons    int
	MappedSeasons   int
	UnmappedSeasons int

	Franchises           int
	RelocatedFranchises  int
	SufficientFranchises int

	// ReadyForAnalysis is set when enough relocated franchises clear the
	// sufficiency bar to support meta-analysis.
	ReadyForAnalysis bool

	FindingCounts FindingCounts
}

// FindingCounts tallies validation findings by severity.
type FindingCounts struct {
	Total    int
	Passed   int
	Warnings int
	Failures int
}

// Summarize reduces the annotated dataset and finding set into per-franchise
// summaries (sorted by canonical id) and a dataset summary.
func Summarize(annotated []season.Annotated, findings map[string][]validate.Finding, reg *franchise.Registry) ([]FranchiseSummary, DatasetSummary) {
	byFranchise := make(map[string][]season.Annotated)
	unmapped := 0
	for _, a := range annotated {
		if a.CanonicalFranchise == "" {
			unmapped++
			continue
		}
		byFranchise[a.CanonicalFranchise] = append(byFranchise[a.CanonicalFranchise], a)
	}

	var summaries []FranchiseSummary
	sufficient := 0
	for _, canonicalID := range reg.CanonicalIDs() {
		rows, ok := byFranchise[canonicalID]
		if !ok {
			continue
		}
		lin, _ := reg.Lookup(canonicalID)
		s := summarizeFranchise(lin, rows)
		if s.Sufficient {
			sufficient++
		}
		summaries = append(summaries, s)
	}

	total, passed, warnings, failures := validate.Counts(findings)
	ds := DatasetSummary{
		TotalSeasons:         len(annotated),
		MappedSeasons:        len(annotated) - unmapped,
		UnmappedSeasons:      unmapped,
		Franchises:           len(summaries),
		RelocatedFranchises:  countRelocated(summaries),
		SufficientFranchises: sufficient,
		ReadyForAnalysis:     sufficient >= minSufficientFranchises,
		FindingCounts: FindingCounts{
			Total:    total,
			Passed:   passed,
			Warnings: warnings,
			Failures: failures,
		},
	}
	return summaries, ds
}

func countRelocated(summaries []FranchiseSummary) int {
	n := 0
	for _, s := range summaries {
		if s.RelocationYear != 0 {
			n++
		}
	}
	return n
}

func summarizeFranchise(lin *franchise.FranchiseLineage, rows []season.Annotated) FranchiseSummary {
	s := FranchiseSummary{
		CanonicalID:     lin.CanonicalID,
		CurrentName:     lin.CurrentName,
		Identifiers:     append([]string(nil), lin.Identifiers...),
		RelocationYears: lin.RelocationYears(),
		Seasons:         len(rows),
	}

	var all, pre, post []float64
	s.FirstYear, s.LastYear = rows[0].Year, rows[0].Year
	for _, a := range rows {
		if a.Year < s.FirstYear {
			s.FirstYear = a.Year
		}
		if a.Year > s.LastYear {
			s.LastYear = a.Year
		}
		pct := a.WinPct()
		all = append(all, pct)
		switch {
		case a.PreRelocation:
			pre = append(pre, pct)
		case a.PostRelocation:
			post = append(post, pct)
		}
	}
	s.MeanWinPct = mean(all)

	if primary, ok := lin.PrimaryRelocation(); ok {
		s.RelocationYear = primary.Year
	}
	s.Pre = SideStats{Seasons: len(pre), MeanWinPct: mean(pre)}
	s.Post = SideStats{Seasons: len(post), MeanWinPct: mean(post)}

	if len(pre) > 0 && len(post) > 0 {
		s.Delta = s.Post.MeanWinPct - s.Pre.MeanWinPct
		s.HasDelta = true
		if d, ok := EffectSize(pre, post); ok {
			s.EffectSize = d
			s.HasEffect = true
			s.EffectBand = EffectBand(d)
		}
	}
	s.Sufficient = s.RelocationYear != 0 && len(pre) >= 10 && len(post) >= 10
	return s
}

// EffectSize computes Cohen's d for the post-minus-pre difference using the
// pooled standard deviation. Returns ok=false when either side has fewer than
// two observations or the pooled deviation is zero. Swapping the two sides
// negates the sign but preserves the magnitude.
func EffectSize(pre, post []float64) (float64, bool) {
	n1, n2 := len(pre), len(post)
	if n1 < 2 || n2 < 2 {
		return 0, false
	}
	pooled := math.Sqrt((float64(n1-1)*variance(pre) + float64(n2-1)*variance(post)) / float64(n1+n2-2))
	if pooled == 0 {
		return 0, false
	}
	return (mean(post) - mean(pre)) / pooled, true
}

// EffectBand maps an effect size to its magnitude band.
func EffectBand(d float64) string {
	switch abs := math.Abs(d); {
	case abs >= 0.8:
		return BandLarge
	case abs >= 0.5:
		return BandMedium
	case abs >= 0.2:
		return BandSmall
	default:
		return BandNegligible
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance is the sample variance (n-1 denominator).
func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values)-1)
}
