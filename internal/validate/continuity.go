package validate

import (
	"fmt"

	"github.com/albapepper/lineage-data/internal/franchise"
)

// leagueChangeAllowed names the franchises permitted to change league
// affiliation across a relocation boundary. Everyone else warns. The Astros'
// 2013 NL -> AL switch and the Brewers' 1998 AL -> NL switch are documented
// league realignments, not relocation artifacts.
var leagueChangeAllowed = map[string]bool{
	"HOU": true,
	"MIL": true,
}

// checkContinuity verifies that each relocation boundary is covered by data
// and that identifier and league behavior across the boundary matches the
// lineage's encoded expectations. A missing row at exactly the boundary is
// the most damaging failure mode for the downstream statistics, so gaps fail.
func checkContinuity(ds *Dataset, reg *franchise.Registry) []Finding {
	var findings []Finding

	for _, canonicalID := range reg.CanonicalIDs() {
		lin, _ := reg.Lookup(canonicalID)
		if !lin.Relocated() {
			continue
		}
		rows := lineageRows(ds.Records, lin.Identifiers)
		if len(rows) == 0 {
			// Dataset simply doesn't cover this franchise.
			continue
		}
		idx := byYear(rows)

		for _, ev := range lin.Relocations {
			before, okBefore := idx[ev.Year-1]
			at, okAt := idx[ev.Year]

			if !okBefore || !okAt {
				var missing string
				switch {
				case !okBefore && !okAt:
					missing = fmt.Sprintf("%d and %d", ev.Year-1, ev.Year)
				case !okBefore:
					missing = fmt.Sprintf("%d", ev.Year-1)
				default:
					missing = fmt.Sprintf("%d", ev.Year)
				}
				findings = append(findings, fail("relocation_continuity",
					fmt.Sprintf("%s: missing season %s around %d relocation", canonicalID, missing, ev.Year), nil))
				continue
			}

			changed := before.FranchiseID != at.FranchiseID
			if changed != ev.IdentifierChanges {
				expectation := "stay constant"
				if ev.IdentifierChanges {
					expectation = "change"
				}
				findings = append(findings, warning("identifier_continuity",
					fmt.Sprintf("%s: identifier expected to %s at %d relocation", canonicalID, expectation, ev.Year),
					BoundaryPair{Franchise: canonicalID, RelocationYear: ev.Year, Before: before.FranchiseID, At: at.FranchiseID}))
				continue
			}

			if before.League != at.League && !leagueChangeAllowed[canonicalID] {
				findings = append(findings, warning("league_continuity",
					fmt.Sprintf("%s: league changed from %s to %s at %d", canonicalID, before.League, at.League, ev.Year),
					BoundaryPair{Franchise: canonicalID, RelocationYear: ev.Year, Before: before.League, At: at.League}))
				continue
			}

			findings = append(findings, pass("relocation_continuity",
				fmt.Sprintf("%s: continuous data across %d relocation", canonicalID, ev.Year)))
		}
	}

	return findings
}
