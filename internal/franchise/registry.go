// Package franchise provides the franchise lineage registry: the knowledge
// base of canonical franchise identities, their historical identifiers, and
// their relocation events. The registry is built once and read-only afterward.
package franchise

import (
	"fmt"
	"sort"
)

// RelocationEvent is a documented year in which a franchise changed city while
// its on-field identity continued. Year is the first season under the new
// identity.
type RelocationEvent struct {
	Year         int
	FromCity     string
	ToCity       string
	FromTeamName string
	ToTeamName   string
	Notes        string

	// IdentifierChanges records whether the raw franchise identifier is
	// expected to change at this boundary. Lahman keeps franchID constant for
	// some lineages (Dodgers) and switches it for others (Braves BSN -> ML1 ->
	// ATL), so this is encoded per event rather than inferred from data.
	IdentifierChanges bool
}

// FranchiseLineage is one canonical franchise identity spanning all of its
// historical identifiers and locations. Constructed once at registry build
// time; immutable afterward.
type FranchiseLineage struct {
	CanonicalID string
	CurrentName string
	FoundedYear int

	// Identifiers holds every raw per-era key that denotes this lineage.
	// Identifier sets must be disjoint across all lineages in a registry.
	Identifiers []string

	// Relocations in chronological order. Empty for stable franchises.
	Relocations []RelocationEvent

	Notes string
}

// Relocated reports whether the lineage has at least one relocation.
func (l *FranchiseLineage) Relocated() bool {
	return len(l.Relocations) > 0
}

// PrimaryRelocation returns the most recent relocation event, used as the
// single pre/post split point for multiply-relocated franchises.
func (l *FranchiseLineage) PrimaryRelocation() (RelocationEvent, bool) {
	if len(l.Relocations) == 0 {
		return RelocationEvent{}, false
	}
	primary := l.Relocations[0]
	for _, ev := range l.Relocations[1:] {
		if ev.Year > primary.Year {
			primary = ev
		}
	}
	return primary, true
}

// RelocationYears returns the years of all relocation events in order.
func (l *FranchiseLineage) RelocationYears() []int {
	years := make([]int, len(l.Relocations))
	for i, ev := range l.Relocations {
		years[i] = ev.Year
	}
	return years
}

// HasIdentifier reports whether raw is one of the lineage's identifiers.
func (l *FranchiseLineage) HasIdentifier(raw string) bool {
	for _, id := range l.Identifiers {
		if id == raw {
			return true
		}
	}
	return false
}

// DuplicateIdentifierError is the construction-fatal error raised when the
// same raw identifier appears in two lineages. It means the knowledge base is
// self-contradictory, so there is no recovery policy.
type DuplicateIdentifierError struct {
	Identifier string
	First      string
	Second     string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("identifier %q mapped to both %s and %s", e.Identifier, e.First, e.Second)
}

// Registry is the immutable table of franchise lineages plus the
// identifier -> canonical mapping derived from them.
type Registry struct {
	lineages     map[string]*FranchiseLineage
	byIdentifier map[string]string
	order        []string
}

// BuildFrom constructs a registry from an arbitrary lineage slice. Tests use
// this with small tables; Build uses it with the full MLB table. Scanning the
// identifier sets into a single map enforces the disjointness invariant:
// any collision aborts construction with DuplicateIdentifierError.
func BuildFrom(lineages []FranchiseLineage) (*Registry, error) {
	reg := &Registry{
		lineages:     make(map[string]*FranchiseLineage, len(lineages)),
		byIdentifier: make(map[string]string),
	}
	for i := range lineages {
		lin := lineages[i]
		if _, exists := reg.lineages[lin.CanonicalID]; exists {
			return nil, fmt.Errorf("canonical id %q defined twice", lin.CanonicalID)
		}
		reg.lineages[lin.CanonicalID] = &lin
		reg.order = append(reg.order, lin.CanonicalID)

		for _, id := range lin.Identifiers {
			if prev, exists := reg.byIdentifier[id]; exists {
				return nil, &DuplicateIdentifierError{
					Identifier: id,
					First:      prev,
					Second:     lin.CanonicalID,
				}
			}
			reg.byIdentifier[id] = lin.CanonicalID
		}
	}
	sort.Strings(reg.order)
	return reg, nil
}

// Build constructs the registry from the built-in MLB lineage table.
func Build() (*Registry, error) {
	return BuildFrom(MLB())
}

// Lookup returns the lineage for a canonical id.
func (r *Registry) Lookup(canonicalID string) (*FranchiseLineage, bool) {
	lin, ok := r.lineages[canonicalID]
	return lin, ok
}

// CanonicalIDs returns all canonical ids in sorted order.
func (r *Registry) CanonicalIDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// RelocatedIDs returns the canonical ids of lineages with at least one
// relocation, in sorted order.
func (r *Registry) RelocatedIDs() []string {
	var out []string
	for _, id := range r.order {
		if r.lineages[id].Relocated() {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of lineages in the registry.
func (r *Registry) Len() int {
	return len(r.lineages)
}
