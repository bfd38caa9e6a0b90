package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/albapepper/lineage-data/internal/config"
	"github.com/albapepper/lineage-data/internal/lahman"
	"github.com/albapepper/lineage-data/internal/summary"
	"github.com/albapepper/lineage-data/internal/validate"
)

// Output file names under cfg.OutputDir.
const (
	AnnotatedFile = "mlb_team_seasons_annotated.csv"
	SummariesFile = "relocation_summary.csv"
	ReportFile    = "validation_report.txt"
)

// Report renders the full text report: validation findings, dataset summary,
// per-franchise table, and unmapped identifier analysis.
func (r *Result) Report() string {
	var b strings.Builder
	b.WriteString(validate.Render(r.Findings))
	b.WriteString("\n")
	summary.RenderDatasetSummary(&b, r.DatasetSummary)
	b.WriteString("\n")
	summary.RenderFranchiseTable(&b, r.Summaries)
	b.WriteString("\n")
	summary.RenderUnmappedTable(&b, r.Unmapped)
	return b.String()
}

// WriteOutputs persists the annotated table, the per-franchise summaries, and
// the text report under cfg.OutputDir.
func WriteOutputs(cfg *config.Config, r *Result) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", cfg.OutputDir, err)
	}

	if err := lahman.WriteAnnotated(filepath.Join(cfg.OutputDir, AnnotatedFile), r.Annotated); err != nil {
		return err
	}
	if err := lahman.WriteSummaries(filepath.Join(cfg.OutputDir, SummariesFile), r.Summaries); err != nil {
		return err
	}

	report := fmt.Sprintf("Generated: %s\n\n%s", time.Now().Format(time.RFC3339), r.Report())
	return lahman.WriteReport(filepath.Join(cfg.OutputDir, ReportFile), report)
}
