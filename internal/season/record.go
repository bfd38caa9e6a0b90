// Package season defines the per-team-season record types and the epoch
// annotator that attaches canonical franchise identity and relocation-relative
// facts to each row.
package season

// Record is one team's performance in one year, as loaded from the source
// table. TeamID and FranchiseID are raw per-era identifiers; FranchiseID is
// the key resolved against the registry.
type Record struct {
	Year        int
	TeamID      string
	FranchiseID string
	League      string
	Name        string
	Wins        int
	Losses      int

	// StoredGames and StoredWinPct hold the source table's own G and W_pct
	// columns when present. The quality checks compare them against the
	// recomputed values; they are nil when the source omitted the columns.
	StoredGames  *int
	StoredWinPct *float64
}

// Games returns wins plus losses.
func (r Record) Games() int {
	return r.Wins + r.Losses
}

// WinPct returns wins over games, or 0 for a season with no games.
func (r Record) WinPct() float64 {
	g := r.Games()
	if g == 0 {
		return 0
	}
	return float64(r.Wins) / float64(g)
}

// Annotated is a Record plus resolved canonical identity and
// relocation-relative fields. For a franchise that never relocated (or a row
// whose identifier did not resolve) every relocation field keeps its zero
// value and RelocationEra is EraNone.
type Annotated struct {
	Record

	CanonicalFranchise string
	IsRelocated        bool

	// RelocationYear is the primary (most recent) relocation year, the single
	// pre/post split point. Zero when the franchise never relocated.
	RelocationYear int

	PreRelocation  bool
	PostRelocation bool

	// YearsSinceRelocation is defined only when PostRelocation is true.
	YearsSinceRelocation int

	// RelocationEra labels rows within the +-3 year window of a specific
	// relocation event, e.g. "around_1966". EraNone otherwise.
	RelocationEra string
}
