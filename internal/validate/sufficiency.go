package validate

import (
	"fmt"

	"github.com/albapepper/lineage-data/internal/franchise"
)

// Minimum seasons on each side of the primary relocation split for a
// franchise to support paired significance testing downstream.
const (
	minSeasonsPre  = 10
	minSeasonsPost = 10
)

// checkSufficiency tallies pre- and post-relocation seasons for every
// relocated franchise covered by the dataset and reports whether each clears
// the bar for statistical testing.
func checkSufficiency(ds *Dataset, reg *franchise.Registry) []Finding {
	var counts []FranchiseSeasons
	insufficient := 0

	for _, canonicalID := range reg.RelocatedIDs() {
		lin, _ := reg.Lookup(canonicalID)
		rows := lineageRows(ds.Records, lin.Identifiers)
		if len(rows) == 0 {
			continue
		}
		primary, _ := lin.PrimaryRelocation()

		var pre, post int
		for _, r := range rows {
			if r.Year < primary.Year {
				pre++
			} else {
				post++
			}
		}
		sufficient := pre >= minSeasonsPre && post >= minSeasonsPost
		if !sufficient {
			insufficient++
		}
		counts = append(counts, FranchiseSeasons{
			CanonicalID:    canonicalID,
			RelocationYear: primary.Year,
			PreSeasons:     pre,
			PostSeasons:    post,
			Sufficient:     sufficient,
		})
	}

	if insufficient > 0 {
		return []Finding{warning("statistical_sufficiency",
			fmt.Sprintf("%d franchises have insufficient data for robust statistical analysis", insufficient),
			SeasonCounts{Franchises: counts})}
	}
	return []Finding{pass("statistical_sufficiency",
		"all relocated franchises have sufficient data for statistical analysis")}
}
