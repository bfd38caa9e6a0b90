package db

import (
	"context"
	"fmt"
	"time"

	"github.com/albapepper/lineage-data/internal/config"
	"github.com/albapepper/lineage-data/internal/season"
	"github.com/albapepper/lineage-data/internal/summary"
	"github.com/albapepper/lineage-data/internal/validate"
)

// ExportResult tracks counts and errors from an export run.
type ExportResult struct {
	SeasonsUpserted   int
	FindingsInserted  int
	SummariesUpserted int
	Errors            []string
}

// AddErrorf records a formatted error message.
func (r *ExportResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the export.
func (r *ExportResult) Summary() string {
	return fmt.Sprintf(
		"seasons=%d findings=%d summaries=%d errors=%d",
		r.SeasonsUpserted, r.FindingsInserted, r.SummariesUpserted, len(r.Errors),
	)
}

// EnsureSchema creates the export tables when they do not exist.
func (p *Pool) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ` + config.SeasonsTable + ` (
			year INT NOT NULL,
			team_id TEXT NOT NULL,
			franchise_id TEXT NOT NULL,
			league TEXT,
			name TEXT,
			wins INT NOT NULL,
			losses INT NOT NULL,
			canonical_franchise TEXT,
			is_relocated BOOLEAN NOT NULL DEFAULT FALSE,
			relocation_year INT,
			pre_relocation BOOLEAN NOT NULL DEFAULT FALSE,
			post_relocation BOOLEAN NOT NULL DEFAULT FALSE,
			years_since_relocation INT,
			relocation_era TEXT,
			PRIMARY KEY (year, team_id)
		)`,
		`CREATE TABLE IF NOT EXISTS ` + config.FindingsTable + ` (
			id BIGSERIAL PRIMARY KEY,
			run_at TIMESTAMPTZ NOT NULL,
			category TEXT NOT NULL,
			check_name TEXT NOT NULL,
			severity TEXT NOT NULL,
			message TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ` + config.SummariesTable + ` (
			canonical_id TEXT PRIMARY KEY,
			current_name TEXT NOT NULL,
			relocation_year INT,
			total_seasons INT NOT NULL,
			pre_seasons INT NOT NULL,
			post_seasons INT NOT NULL,
			pre_avg_wpct DOUBLE PRECISION,
			post_avg_wpct DOUBLE PRECISION,
			wpct_change DOUBLE PRECISION,
			effect_size DOUBLE PRECISION,
			effect_magnitude TEXT,
			sufficient_data BOOLEAN NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := p.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// StoreSeasons upserts annotated seasons, one row per (year, team).
func (p *Pool) StoreSeasons(ctx context.Context, annotated []season.Annotated, result *ExportResult) {
	for _, a := range annotated {
		var relocationYear, yearsSince *int
		if a.RelocationYear != 0 {
			y := a.RelocationYear
			relocationYear = &y
		}
		if a.PostRelocation {
			n := a.YearsSinceRelocation
			yearsSince = &n
		}
		var canonical *string
		if a.CanonicalFranchise != "" {
			canonical = &a.CanonicalFranchise
		}

		_, err := p.Exec(ctx, "insert_season",
			a.Year, a.TeamID, a.FranchiseID, a.League, a.Name, a.Wins, a.Losses,
			canonical, a.IsRelocated, relocationYear,
			a.PreRelocation, a.PostRelocation, yearsSince, a.RelocationEra,
		)
		if err != nil {
			result.AddErrorf("upsert season %d/%s: %v", a.Year, a.TeamID, err)
		} else {
			result.SeasonsUpserted++
		}
	}
}

// StoreFindings inserts all findings of one validation run, stamped with a
// shared run time.
func (p *Pool) StoreFindings(ctx context.Context, findings map[string][]validate.Finding, result *ExportResult) {
	runAt := time.Now().UTC()
	for _, category := range validate.Categories() {
		for _, f := range findings[category] {
			_, err := p.Exec(ctx, "insert_finding",
				runAt, category, f.Check, string(f.Severity), f.Message,
			)
			if err != nil {
				result.AddErrorf("insert finding %s/%s: %v", category, f.Check, err)
			} else {
				result.FindingsInserted++
			}
		}
	}
}

// StoreSummaries upserts per-franchise summaries.
func (p *Pool) StoreSummaries(ctx context.Context, summaries []summary.FranchiseSummary, result *ExportResult) {
	for _, s := range summaries {
		var relocationYear *int
		if s.RelocationYear != 0 {
			y := s.RelocationYear
			relocationYear = &y
		}
		var delta, effectSize *float64
		var effectBand *string
		if s.HasDelta {
			d := s.Delta
			delta = &d
		}
		if s.HasEffect {
			e := s.EffectSize
			effectSize = &e
			band := s.EffectBand
			effectBand = &band
		}

		_, err := p.Exec(ctx, "insert_summary",
			s.CanonicalID, s.CurrentName, relocationYear, s.Seasons,
			s.Pre.Seasons, s.Post.Seasons, s.Pre.MeanWinPct, s.Post.MeanWinPct,
			delta, effectSize, effectBand, s.Sufficient,
		)
		if err != nil {
			result.AddErrorf("upsert summary %s: %v", s.CanonicalID, err)
		} else {
			result.SummariesUpserted++
		}
	}
}
