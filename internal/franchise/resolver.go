package franchise

// Resolver maps raw per-era identifiers to canonical franchise ids. It is a
// pure lookup built once from a registry; its correctness is entirely a
// function of registry construction.
type Resolver struct {
	byIdentifier map[string]string
}

// NewResolver builds a resolver from the registry's identifier map.
func NewResolver(reg *Registry) *Resolver {
	m := make(map[string]string, len(reg.byIdentifier))
	for id, canonical := range reg.byIdentifier {
		m[id] = canonical
	}
	return &Resolver{byIdentifier: m}
}

// Resolve returns the canonical id for a raw identifier. Unknown identifiers
// are not an error: ok is false and the caller decides what to do.
func (r *Resolver) Resolve(raw string) (string, bool) {
	canonical, ok := r.byIdentifier[raw]
	return canonical, ok
}

// Known reports whether the raw identifier belongs to some lineage.
func (r *Resolver) Known(raw string) bool {
	_, ok := r.byIdentifier[raw]
	return ok
}
