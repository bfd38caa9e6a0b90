package validate

import (
	"fmt"
	"math"

	"github.com/albapepper/lineage-data/internal/franchise"
)

// Tolerances for recomputed derived columns. Source data rounding is
// tolerated, so mismatches warn rather than fail.
const (
	gamesTolerance  = 1
	winPctTolerance = 0.01
)

// checkQuality runs the schema and derived-column checks.
func checkQuality(ds *Dataset, _ *franchise.Registry) []Finding {
	var findings []Finding
	findings = append(findings, checkRequiredColumns(ds))
	findings = append(findings, checkNullValues(ds))
	if f, ok := checkCalculationAccuracy(ds); ok {
		findings = append(findings, f)
	}
	return findings
}

func checkRequiredColumns(ds *Dataset) Finding {
	var missing []string
	for _, col := range RequiredColumns() {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fail("required_columns",
			fmt.Sprintf("missing required columns: %v", missing),
			MissingColumns{Columns: missing})
	}
	return pass("required_columns", "all required columns present")
}

func checkNullValues(ds *Dataset) Finding {
	critical := []string{ColYear, ColFranchID, ColWins, ColLosses}
	counts := make(map[string]int)
	for _, col := range critical {
		if n := ds.NullCounts[col]; n > 0 {
			counts[col] = n
		}
	}
	if len(counts) > 0 {
		return fail("null_values", "null values found in critical columns", NullCounts{Counts: counts})
	}
	return pass("null_values", "no null values in critical columns")
}

// checkCalculationAccuracy recomputes G and W_pct from W and L and compares
// against the stored columns. Returns ok=false when the source carried
// neither derived column, in which case there is nothing to verify.
func checkCalculationAccuracy(ds *Dataset) (Finding, bool) {
	if !ds.HasColumn(ColGames) && !ds.HasColumn(ColWinPct) {
		return Finding{}, false
	}

	var gameErrors, pctErrors int
	var offending []RowKey
	for _, r := range ds.Records {
		bad := false
		if r.StoredGames != nil && abs(*r.StoredGames-r.Games()) > gamesTolerance {
			gameErrors++
			bad = true
		}
		if r.StoredWinPct != nil && math.Abs(*r.StoredWinPct-r.WinPct()) > winPctTolerance {
			pctErrors++
			bad = true
		}
		if bad {
			offending = append(offending, RowKey{Year: r.Year, TeamID: r.TeamID})
		}
	}

	if gameErrors > 0 || pctErrors > 0 {
		return warning("calculation_accuracy",
			fmt.Sprintf("calculation mismatches: %d games, %d win percentages", gameErrors, pctErrors),
			RowKeys{Rows: offending}), true
	}
	return pass("calculation_accuracy", "stored game and win percentage columns match recomputed values"), true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
