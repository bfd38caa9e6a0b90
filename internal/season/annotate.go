package season

import (
	"fmt"

	"github.com/albapepper/lineage-data/internal/franchise"
)

const (
	// EraNone is the RelocationEra value for rows outside every era window.
	EraNone = "none"

	// EraWindow is the half-width in years of the band around each relocation
	// event used to flag "around relocation" seasons.
	EraWindow = 3
)

// Annotate resolves every record against the registry and computes its
// relocation-relative fields. It is a pure function of its inputs: no state
// accumulates across calls, so annotating the same rows twice yields
// identical output. Rows whose identifier does not resolve, or whose lineage
// has no relocations, pass through with default values rather than being
// filtered; callers wanting an analysis-ready subset filter on
// CanonicalFranchise and the registry's RelocatedIDs themselves.
func Annotate(records []Record, reg *franchise.Registry) []Annotated {
	res := franchise.NewResolver(reg)
	out := make([]Annotated, len(records))
	for i, rec := range records {
		var lin *franchise.FranchiseLineage
		if canonical, ok := res.Resolve(rec.FranchiseID); ok {
			lin, _ = reg.Lookup(canonical)
		}
		out[i] = annotateOne(rec, lin)
	}
	return out
}

// annotateOne computes the annotation for a single record given its resolved
// lineage (nil when the identifier is unknown).
func annotateOne(rec Record, lin *franchise.FranchiseLineage) Annotated {
	a := Annotated{Record: rec, RelocationEra: EraNone}
	if lin == nil {
		return a
	}
	a.CanonicalFranchise = lin.CanonicalID

	primary, ok := lin.PrimaryRelocation()
	if !ok {
		return a
	}
	a.IsRelocated = true
	a.RelocationYear = primary.Year

	if rec.Year < primary.Year {
		a.PreRelocation = true
	} else {
		a.PostRelocation = true
		a.YearsSinceRelocation = rec.Year - primary.Year
	}

	// Era windows are applied in chronological event order; when windows of
	// two relocations overlap, the later relocation's label wins.
	for _, ev := range lin.Relocations {
		if rec.Year >= ev.Year-EraWindow && rec.Year <= ev.Year+EraWindow {
			a.RelocationEra = EraLabel(ev.Year)
		}
	}
	return a
}

// EraLabel returns the RelocationEra label for a relocation year.
func EraLabel(year int) string {
	return fmt.Sprintf("around_%d", year)
}
