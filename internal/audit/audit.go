// Package audit resolves design-token alias chains and buckets them into
// canonical path groups.
//
// A run is pure: it reads a tokens.Store, builds fresh per-run state and
// returns a Result. Rendering the result is deterministic, so two runs over
// the same snapshot produce byte-identical text.
package audit

import (
	"fmt"
	"sort"
	"strings"

	"tokenaudit/internal/tokens"
)

const (
	reportTitle      = "=== Variable Dependency Audit (primitive first) ==="
	noCollectionsMsg = "No collections found"
	noVariablesMsg   = "No variables found"
)

// Options tunes which variables are used as scan starting points.
type Options struct {
	// Exclude, when set, skips starting variables whose full path it
	// returns true for. The path is the one printed in the report, built from
	// the variable's own collection id (Resolver.FullPath), not from the
	// collection that lists it. Excluded variables can still appear inside
	// other chains.
	Exclude func(fullPath string) bool
}

// Result holds the bucketed chains of one run.
type Result struct {
	// Groups maps each non-empty path group to its sorted display lines.
	Groups      map[PathGroup][]string
	Total       int
	Diagnostics Diagnostics

	// Empty is set, instead of any groups, when the store has no
	// collections or no variables at all.
	Empty string
}

// Counts returns the number of lines per non-empty path group.
func (r *Result) Counts() map[PathGroup]int {
	out := make(map[PathGroup]int, len(r.Groups))
	for g, lines := range r.Groups {
		out[g] = len(lines)
	}
	return out
}

// Run audits every variable of every non-primitive collection in store.
func Run(store tokens.Store, opts Options) *Result {
	res := &Result{Groups: make(map[PathGroup][]string)}

	collections := store.Collections()
	if len(collections) == 0 {
		res.Empty = noCollectionsMsg
		return res
	}

	r := NewResolver(store)
	seen := 0
	for _, coll := range collections {
		seen += len(coll.VariableIDs)
		// Primitives are only ever chain endpoints.
		if ClassifyLayer(coll.Name) == LayerPrimitive {
			continue
		}
		for _, id := range coll.VariableIDs {
			v, ok := store.Variable(id)
			if !ok {
				continue
			}
			if opts.Exclude != nil && opts.Exclude(r.FullPath(v)) {
				continue
			}
			chain := r.Resolve(v)
			// Unaliased variables carry no dependency information.
			if len(chain) <= 1 {
				continue
			}
			g := Classify(chain)
			res.Groups[g] = append(res.Groups[g], chain.String())
			res.Total++
		}
	}
	if seen == 0 {
		res.Empty = noVariablesMsg
	}

	for _, lines := range res.Groups {
		sort.Strings(lines)
	}
	res.Diagnostics = r.Diagnostics()
	return res
}

// Render formats res as the audit report text.
func Render(res *Result) string {
	if res.Empty != "" {
		return res.Empty + "\n"
	}

	var b strings.Builder
	b.WriteString(reportTitle + "\n\n")
	for _, g := range Groups {
		lines := res.Groups[g]
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "Path Group %d (%d variables):\n", int(g), len(lines))
		b.WriteString(strings.Join(lines, "\n") + "\n\n")
	}
	if other := res.Groups[GroupOther]; len(other) > 0 {
		fmt.Fprintf(&b, "Other / Unexpected paths (%d – please review):\n", len(other))
		b.WriteString(strings.Join(other, "\n") + "\n\n")
	}
	fmt.Fprintf(&b, "Total chains found: %d\n", res.Total)
	return b.String()
}
