package validate

import (
	"fmt"

	"github.com/albapepper/lineage-data/internal/franchise"
	"github.com/albapepper/lineage-data/internal/season"
)

const (
	// firstProfessionalSeason is the first year of professional baseball.
	firstProfessionalSeason = 1871

	// modernEraStart is the first year of the 162-game schedule.
	modernEraStart = 1961

	modernGamesMin = 160
	modernGamesMax = 164
)

// strikeYears are seasons shortened by strikes or other stoppages; game-count
// bounds do not apply to them.
var strikeYears = map[int]bool{
	1981: true,
	1994: true,
	2020: true,
}

// historyChecks validates the dataset against historical plausibility rules.
type historyChecks struct {
	currentYear int
}

func (h historyChecks) run(ds *Dataset, _ *franchise.Registry) []Finding {
	var findings []Finding
	findings = append(findings, h.checkYearRange(ds)...)
	findings = append(findings, checkGameCounts(ds)...)
	findings = append(findings, checkWinPercentages(ds)...)
	return findings
}

func (h historyChecks) checkYearRange(ds *Dataset) []Finding {
	if len(ds.Records) == 0 {
		return []Finding{warning("year_range", "dataset is empty", nil)}
	}

	minYear, maxYear := ds.Records[0].Year, ds.Records[0].Year
	for _, r := range ds.Records[1:] {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}

	var findings []Finding
	if minYear < firstProfessionalSeason {
		findings = append(findings, warning("year_range",
			fmt.Sprintf("data includes years before %d (first professional season): %d", firstProfessionalSeason, minYear), nil))
	}
	if maxYear > h.currentYear {
		// Future seasons indicate corruption, not early data.
		findings = append(findings, fail("year_range",
			fmt.Sprintf("data includes future years: %d", maxYear), nil))
	}
	if len(findings) == 0 {
		findings = append(findings, pass("year_range",
			fmt.Sprintf("year range %d-%d is plausible", minYear, maxYear)))
	}
	return findings
}

func checkGameCounts(ds *Dataset) []Finding {
	var low, high []RowKey
	for _, r := range ds.Records {
		if r.Year < modernEraStart || strikeYears[r.Year] {
			continue
		}
		g := effectiveGames(r)
		if g < modernGamesMin {
			low = append(low, RowKey{Year: r.Year, TeamID: r.TeamID})
		} else if g > modernGamesMax {
			high = append(high, RowKey{Year: r.Year, TeamID: r.TeamID})
		}
	}

	var findings []Finding
	if len(low) > 0 {
		findings = append(findings, warning("game_counts",
			fmt.Sprintf("%d modern seasons with unusually low game counts", len(low)),
			RowKeys{Rows: low}))
	}
	if len(high) > 0 {
		findings = append(findings, warning("game_counts",
			fmt.Sprintf("%d modern seasons with unusually high game counts", len(high)),
			RowKeys{Rows: high}))
	}
	if len(findings) == 0 {
		findings = append(findings, pass("game_counts", "modern-era game counts within expected range"))
	}
	return findings
}

func checkWinPercentages(ds *Dataset) []Finding {
	var impossible, extreme []RowKey
	for _, r := range ds.Records {
		pct := effectiveWinPct(r)
		key := RowKey{Year: r.Year, TeamID: r.TeamID}
		switch {
		case pct < 0 || pct > 1:
			impossible = append(impossible, key)
		case pct < 0.2 || pct > 0.8:
			extreme = append(extreme, key)
		}
	}

	var findings []Finding
	if len(impossible) > 0 {
		findings = append(findings, fail("win_percentages",
			fmt.Sprintf("%d seasons with impossible win percentages", len(impossible)),
			RowKeys{Rows: impossible}))
	} else {
		findings = append(findings, pass("win_percentages", "all win percentages within [0, 1]"))
	}
	if len(extreme) > 0 {
		// Informational: extreme seasons are real (1899 Spiders, 1906 Cubs)
		// but worth surfacing for the downstream statistics.
		findings = append(findings, warning("extreme_records",
			fmt.Sprintf("%d seasons with extreme win percentages (< 20%% or > 80%%)", len(extreme)),
			RowKeys{Rows: extreme}))
	}
	return findings
}

// effectiveGames prefers the stored G column, falling back to W+L.
func effectiveGames(r season.Record) int {
	if r.StoredGames != nil {
		return *r.StoredGames
	}
	return r.Games()
}

// effectiveWinPct prefers the stored W_pct column, falling back to W/(W+L).
func effectiveWinPct(r season.Record) float64 {
	if r.StoredWinPct != nil {
		return *r.StoredWinPct
	}
	return r.WinPct()
}
