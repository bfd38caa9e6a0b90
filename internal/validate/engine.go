package validate

import (
	"time"

	"github.com/albapepper/lineage-data/internal/franchise"
)

// Check categories, in report order.
const (
	CategoryQuality      = "basic_quality"
	CategoryHistory      = "historical_accuracy"
	CategoryContinuity   = "franchise_continuity"
	CategoryFacts        = "external_validation"
	CategoryCompleteness = "data_completeness"
)

// Categories returns all check categories in report order.
func Categories() []string {
	return []string{
		CategoryQuality,
		CategoryHistory,
		CategoryContinuity,
		CategoryFacts,
		CategoryCompleteness,
	}
}

// Engine runs every registered check over a dataset snapshot. Each check is a
// pure function of (dataset, registry); the engine only invokes and groups,
// so findings are independently interpretable.
type Engine struct {
	// CurrentYear bounds the plausible season range. Defaults to the wall
	// clock year; tests pin it.
	CurrentYear int
}

// NewEngine returns an engine bound to the current calendar year.
func NewEngine() *Engine {
	return &Engine{CurrentYear: time.Now().Year()}
}

// RunAll invokes every check and groups findings by category. It always
// completes and returns the full finding set, even when every check fails;
// whether any fail-severity finding blocks a pipeline is the caller's call.
func (e *Engine) RunAll(ds *Dataset, reg *franchise.Registry) map[string][]Finding {
	history := historyChecks{currentYear: e.CurrentYear}
	return map[string][]Finding{
		CategoryQuality:      checkQuality(ds, reg),
		CategoryHistory:      history.run(ds, reg),
		CategoryContinuity:   checkContinuity(ds, reg),
		CategoryFacts:        checkFacts(ds, reg),
		CategoryCompleteness: checkSufficiency(ds, reg),
	}
}

// Counts tallies findings by severity across all categories.
func Counts(results map[string][]Finding) (total, passed, warnings, failures int) {
	for _, findings := range results {
		for _, f := range findings {
			total++
			switch f.Severity {
			case SeverityPass:
				passed++
			case SeverityWarning:
				warnings++
			case SeverityFail:
				failures++
			}
		}
	}
	return total, passed, warnings, failures
}

// HasFailures reports whether any finding is fail severity. Downstream
// callers typically refuse to persist an annotated dataset when it does.
func HasFailures(results map[string][]Finding) bool {
	for _, findings := range results {
		for _, f := range findings {
			if f.Severity == SeverityFail {
				return true
			}
		}
	}
	return false
}

// Failures returns every fail-severity finding across all categories, in
// category order.
func Failures(results map[string][]Finding) []Finding {
	var out []Finding
	for _, category := range Categories() {
		for _, f := range results[category] {
			if f.Severity == SeverityFail {
				out = append(out, f)
			}
		}
	}
	return out
}
