// Package pipeline runs the full load -> annotate -> validate -> summarize
// flow and carries its outputs.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/albapepper/lineage-data/internal/config"
	"github.com/albapepper/lineage-data/internal/franchise"
	"github.com/albapepper/lineage-data/internal/lahman"
	"github.com/albapepper/lineage-data/internal/season"
	"github.com/albapepper/lineage-data/internal/summary"
	"github.com/albapepper/lineage-data/internal/validate"
)

// Result carries every stage's output. Stages after load never abort the run;
// data problems surface as findings, not errors.
type Result struct {
	Dataset        *validate.Dataset
	Annotated      []season.Annotated
	Findings       map[string][]validate.Finding
	Summaries      []summary.FranchiseSummary
	DatasetSummary summary.DatasetSummary
	Unmapped       []summary.UnmappedGroup
}

// Summary returns a one-line overview for logging.
func (r *Result) Summary() string {
	total, passed, warnings, failures := validate.Counts(r.Findings)
	return fmt.Sprintf(
		"seasons=%d mapped=%d checks=%d passed=%d warnings=%d failures=%d",
		r.DatasetSummary.TotalSeasons, r.DatasetSummary.MappedSeasons,
		total, passed, warnings, failures,
	)
}

// Registry builds the lineage registry, honoring a YAML override when the
// config names one.
func Registry(cfg *config.Config) (*franchise.Registry, error) {
	if cfg.RegistryPath != "" {
		reg, err := franchise.LoadFile(cfg.RegistryPath)
		if err != nil {
			return nil, fmt.Errorf("load registry %s: %w", cfg.RegistryPath, err)
		}
		return reg, nil
	}
	return franchise.Build()
}

// Run executes the whole pipeline against cfg.DataPath.
func Run(ctx context.Context, cfg *config.Config, reg *franchise.Registry, engine *validate.Engine, logger *slog.Logger) (*Result, error) {
	logger.Info("Loading season table...", "source", cfg.DataPath)
	ds, err := lahman.Load(ctx, cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("Season table loaded", "rows", len(ds.Records), "columns", len(ds.Columns))

	return RunDataset(ds, reg, engine, logger), nil
}

// RunDataset executes the stages after load against an already-parsed dataset.
func RunDataset(ds *validate.Dataset, reg *franchise.Registry, engine *validate.Engine, logger *slog.Logger) *Result {
	logger.Info("Annotating seasons...")
	annotated := season.Annotate(ds.Records, reg)

	logger.Info("Running validation checks...")
	findings := engine.RunAll(ds, reg)
	total, passed, warnings, failures := validate.Counts(findings)
	logger.Info("Validation done",
		"checks", total, "passed", passed, "warnings", warnings, "failures", failures)

	logger.Info("Summarizing...")
	summaries, dsSummary := summary.Summarize(annotated, findings, reg)
	unmapped := summary.AnalyzeUnmapped(ds.Records, reg)
	logger.Info("Summary done",
		"franchises", dsSummary.Franchises,
		"relocated", dsSummary.RelocatedFranchises,
		"sufficient", dsSummary.SufficientFranchises,
		"ready", dsSummary.ReadyForAnalysis)

	result := &Result{
		Dataset:        ds,
		Annotated:      annotated,
		Findings:       findings,
		Summaries:      summaries,
		DatasetSummary: dsSummary,
		Unmapped:       unmapped,
	}
	logger.Info("Pipeline complete", "summary", result.Summary())
	return result
}
