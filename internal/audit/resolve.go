package audit

// resolve.go — follows alias references from a variable down to its terminal
// literal and returns the chain in primitive-first order.

import (
	"strings"

	"tokenaudit/internal/tokens"
)

const (
	// MarkerCircular replaces a chain element whose id was already visited.
	MarkerCircular = "[CIRCULAR]"
	// MarkerMissing is appended to the last resolvable path when an alias
	// target does not exist.
	MarkerMissing = "[MISSING]"
	// UnknownCollection stands in for a collection id with no match.
	UnknownCollection = "Unknown"

	// Separator joins chain elements for display.
	Separator = " → "
)

// Chain is a resolved alias chain, ordered from the deepest referent to the
// queried variable. Each element is "<Collection>/<VariableName>" or a marker.
type Chain []string

func (c Chain) String() string { return strings.Join(c, Separator) }

// Diagnostics counts the degraded outcomes seen while resolving. None of them
// abort a run.
type Diagnostics struct {
	Missing            int // alias targets that could not be found
	Circular           int // alias chains that revisited an id
	UnknownCollections int // distinct variables whose collection id had no match
}

// Resolver walks alias chains over a Store.
type Resolver struct {
	store       tokens.Store
	collections map[string]string // id -> display name
	unknown     map[string]bool   // variable ids already counted as UnknownCollections
	diag        Diagnostics
}

// NewResolver indexes the store's collections by id.
func NewResolver(store tokens.Store) *Resolver {
	cols := store.Collections()
	names := make(map[string]string, len(cols))
	for _, c := range cols {
		names[c.ID] = c.Name
	}
	return &Resolver{store: store, collections: names, unknown: make(map[string]bool)}
}

// Diagnostics returns the counters accumulated since the resolver was built.
func (r *Resolver) Diagnostics() Diagnostics { return r.diag }

// Resolve returns v's chain using a fresh visited set.
func (r *Resolver) Resolve(v *tokens.Variable) Chain {
	if v == nil {
		return nil
	}
	return r.resolve(v, v.ID, make(map[string]bool))
}

// FullPath returns "<collection name>/<variable name>", substituting
// UnknownCollection for an unmatched collection id.
func (r *Resolver) FullPath(v *tokens.Variable) string {
	name, ok := r.collections[v.CollectionID]
	if !ok {
		if !r.unknown[v.ID] {
			r.unknown[v.ID] = true
			r.diag.UnknownCollections++
		}
		name = UnknownCollection
	}
	return name + "/" + v.Name
}

// resolve is the recursive step. v is nil when id could not be looked up.
// visited belongs to a single top-level Resolve call.
func (r *Resolver) resolve(v *tokens.Variable, id string, visited map[string]bool) Chain {
	if visited[id] {
		r.diag.Circular++
		return Chain{MarkerCircular}
	}
	if v == nil {
		return nil
	}
	visited[id] = true

	path := r.FullPath(v)

	val, ok := v.FirstValue()
	if !ok || !val.IsAlias() {
		return Chain{path}
	}

	target, _ := r.store.Variable(val.Alias)
	deeper := r.resolve(target, val.Alias, visited)
	if len(deeper) == 0 {
		r.diag.Missing++
		return Chain{path + Separator + MarkerMissing}
	}
	return append(deeper, path)
}
