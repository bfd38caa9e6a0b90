package validate

import "github.com/albapepper/lineage-data/internal/season"

// Canonical column names of the input table.
const (
	ColYear     = "yearID"
	ColTeamID   = "teamID"
	ColFranchID = "franchID"
	ColLeague   = "lgID"
	ColName     = "name"
	ColWins     = "W"
	ColLosses   = "L"
	ColGames    = "G"
	ColWinPct   = "W_pct"
)

// RequiredColumns are the columns the input table must carry. G and W_pct are
// accepted when present and derived otherwise.
func RequiredColumns() []string {
	return []string{ColYear, ColTeamID, ColFranchID, ColLeague, ColName, ColWins, ColLosses}
}

// Dataset is the loaded season table as seen by the validation engine: the
// parsed records plus enough loader metadata (header, null cells) for the
// schema and quality checks to act as a defense-in-depth layer behind the
// loader's own boundary checks.
type Dataset struct {
	Columns []string
	Records []season.Record

	// NullCounts tracks empty or unparseable cells per column, recorded by
	// the loader as it parses.
	NullCounts map[string]int
}

// HasColumn reports whether the source table carried the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// byYear indexes a franchise's rows by year, keeping the first row seen for
// each year.
func byYear(records []season.Record) map[int]season.Record {
	idx := make(map[int]season.Record, len(records))
	for _, r := range records {
		if _, seen := idx[r.Year]; !seen {
			idx[r.Year] = r
		}
	}
	return idx
}

// lineageRows returns the rows whose raw franchise identifier belongs to the
// given identifier set, preserving input order.
func lineageRows(records []season.Record, identifiers []string) []season.Record {
	set := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		set[id] = struct{}{}
	}
	var out []season.Record
	for _, r := range records {
		if _, ok := set[r.FranchiseID]; ok {
			out = append(out, r)
		}
	}
	return out
}
