package summary

import (
	"sort"
	"strings"

	"github.com/albapepper/lineage-data/internal/franchise"
	"github.com/albapepper/lineage-data/internal/season"
)

// Classifications for unmapped franchise identifiers.
const (
	ClassDefunct19thCentury = "defunct_19th_century"
	ClassFederalLeague      = "federal_league"
	ClassPlayersLeague      = "players_league"
	ClassReviewNeeded       = "review_needed"
)

// federalLeagueIDs are the 1914-1915 Federal League franchise codes.
var federalLeagueIDs = map[string]bool{
	"CHH": true, "BLT": true, "BTT": true, "KCP": true,
	"NEW": true, "PBS": true, "SLI": true,
}

// UnmappedGroup describes all seasons sharing one unresolvable raw franchise
// identifier, with a coarse classification of why it is outside the registry.
type UnmappedGroup struct {
	FranchiseID    string
	Seasons        int
	FirstYear      int
	LastYear       int
	Names          []string
	Leagues        []string
	Classification string
}

// AnalyzeUnmapped groups the rows whose franchise identifier resolves to no
// lineage and classifies each group. Output is sorted by identifier.
func AnalyzeUnmapped(records []season.Record, reg *franchise.Registry) []UnmappedGroup {
	res := franchise.NewResolver(reg)

	groups := make(map[string]*UnmappedGroup)
	for _, r := range records {
		if res.Known(r.FranchiseID) {
			continue
		}
		g, ok := groups[r.FranchiseID]
		if !ok {
			g = &UnmappedGroup{FranchiseID: r.FranchiseID, FirstYear: r.Year, LastYear: r.Year}
			groups[r.FranchiseID] = g
		}
		g.Seasons++
		if r.Year < g.FirstYear {
			g.FirstYear = r.Year
		}
		if r.Year > g.LastYear {
			g.LastYear = r.Year
		}
		g.Names = appendUnique(g.Names, r.Name)
		g.Leagues = appendUnique(g.Leagues, r.League)
	}

	out := make([]UnmappedGroup, 0, len(groups))
	for _, g := range groups {
		g.Classification = classify(*g)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FranchiseID < out[j].FranchiseID })
	return out
}

func classify(g UnmappedGroup) string {
	switch {
	case federalLeagueIDs[g.FranchiseID] || anyContains(g.Names, "Federal"):
		return ClassFederalLeague
	case anyContains(g.Names, "Players") || (g.FirstYear == 1890 && g.LastYear == 1890):
		return ClassPlayersLeague
	case g.LastYear < 1900:
		return ClassDefunct19thCentury
	default:
		return ClassReviewNeeded
	}
}

func anyContains(values []string, substr string) bool {
	for _, v := range values {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}

func appendUnique(values []string, v string) []string {
	if v == "" {
		return values
	}
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
