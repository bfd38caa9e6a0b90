package validate

import (
	"fmt"

	"github.com/albapepper/lineage-data/internal/franchise"
)

// knownFact is one well-documented record season used as an oracle. Structural
// checks cannot see silent corruption; comparing a handful of famous seasons
// against their documented records can.
type knownFact struct {
	Year        int
	TeamID      string
	Wins        int
	Losses      int
	Description string
}

var knownFacts = []knownFact{
	{1906, "CHN", 116, 36, "Cubs record-setting season"},
	{1962, "NYN", 40, 120, "Mets worst season"},
	{2001, "SEA", 116, 46, "Mariners tied AL record"},
	{1899, "CL4", 20, 134, "Cleveland Spiders worst record ever"},
}

// checkFacts cross-validates the dataset against the known-fact table. A
// missing season is only a warning (the dataset may not cover it); a present
// season with the wrong record is a fail, because the dataset then disagrees
// with an established fact.
func checkFacts(ds *Dataset, _ *franchise.Registry) []Finding {
	index := make(map[RowKey]int, len(ds.Records))
	for i, r := range ds.Records {
		key := RowKey{Year: r.Year, TeamID: r.TeamID}
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}

	var findings []Finding
	for _, fact := range knownFacts {
		i, ok := index[RowKey{Year: fact.Year, TeamID: fact.TeamID}]
		if !ok {
			findings = append(findings, warning("historical_facts",
				fmt.Sprintf("missing data for known historical fact: %s (%d)", fact.Description, fact.Year), nil))
			continue
		}
		row := ds.Records[i]
		if row.Wins != fact.Wins || row.Losses != fact.Losses {
			findings = append(findings, fail("historical_facts",
				fmt.Sprintf("historical fact mismatch: %s - expected %d-%d, got %d-%d",
					fact.Description, fact.Wins, fact.Losses, row.Wins, row.Losses),
				ExpectedRecord{
					Year:           fact.Year,
					TeamID:         fact.TeamID,
					ExpectedWins:   fact.Wins,
					ExpectedLosses: fact.Losses,
					ActualWins:     row.Wins,
					ActualLosses:   row.Losses,
				}))
			continue
		}
		findings = append(findings, pass("historical_facts",
			fmt.Sprintf("confirmed historical fact: %s", fact.Description)))
	}
	return findings
}
