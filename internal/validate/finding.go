// Package validate implements the validation engine: independent checks over
// the season dataset and the franchise registry, each producing typed,
// severity-tagged findings. Checks never abort; every data problem is a
// finding so operators see the complete picture in one pass.
package validate

// Severity is the three-way outcome of a single check.
type Severity string

const (
	SeverityPass    Severity = "pass"
	SeverityWarning Severity = "warning"
	SeverityFail    Severity = "fail"
)

// Symbol returns the one-character status marker used in reports.
func (s Severity) Symbol() string {
	switch s {
	case SeverityPass:
		return "✓"
	case SeverityWarning:
		return "⚠"
	case SeverityFail:
		return "✗"
	default:
		return "?"
	}
}

// Finding is one result of one validation check. Findings are produced, never
// mutated.
type Finding struct {
	Check    string
	Severity Severity
	Message  string

	// Details carries structured evidence. It is one of the closed set of
	// shapes below, or nil when a check has nothing to attach.
	Details Details
}

// Details is the closed set of per-check evidence shapes. Consumers can
// switch exhaustively over the concrete types.
type Details interface {
	isDetails()
}

// RowKey identifies one offending season row.
type RowKey struct {
	Year   int
	TeamID string
}

// RowKeys lists the rows a check flagged.
type RowKeys struct {
	Rows []RowKey
}

// MissingColumns lists required columns absent from the input table.
type MissingColumns struct {
	Columns []string
}

// NullCounts reports per-column null cell counts.
type NullCounts struct {
	Counts map[string]int
}

// ExpectedRecord is the evidence for a cross-source fact mismatch: the
// documented win/loss record versus what the dataset holds.
type ExpectedRecord struct {
	Year           int
	TeamID         string
	ExpectedWins   int
	ExpectedLosses int
	ActualWins     int
	ActualLosses   int
}

// BoundaryPair is the before/after value of one column across a relocation
// boundary.
type BoundaryPair struct {
	Franchise      string
	RelocationYear int
	Before         string
	At             string
}

// FranchiseSeasons is the pre/post season tally for one relocated franchise.
type FranchiseSeasons struct {
	CanonicalID    string
	RelocationYear int
	PreSeasons     int
	PostSeasons    int
	Sufficient     bool
}

// SeasonCounts carries the sufficiency tally for all relocated franchises.
type SeasonCounts struct {
	Franchises []FranchiseSeasons
}

func (RowKeys) isDetails()        {}
func (MissingColumns) isDetails() {}
func (NullCounts) isDetails()     {}
func (ExpectedRecord) isDetails() {}
func (BoundaryPair) isDetails()   {}
func (SeasonCounts) isDetails()   {}

func pass(check, message string) Finding {
	return Finding{Check: check, Severity: SeverityPass, Message: message}
}

func warning(check, message string, details Details) Finding {
	return Finding{Check: check, Severity: SeverityWarning, Message: message, Details: details}
}

func fail(check, message string, details Details) Finding {
	return Finding{Check: check, Severity: SeverityFail, Message: message, Details: details}
}
