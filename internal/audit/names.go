package audit

// names.go — flat listing of every fully-qualified variable name.

import (
	"fmt"
	"strings"

	"tokenaudit/internal/tokens"
)

// ListNames returns "<Collection>/<Variable>" for every variable, in
// collection order and then stored member order. Ids that do not resolve are
// skipped.
func ListNames(store tokens.Store) []string {
	var names []string
	for _, coll := range store.Collections() {
		prefix := coll.Name + "/"
		for _, id := range coll.VariableIDs {
			if v, ok := store.Variable(id); ok {
				names = append(names, prefix+v.Name)
			}
		}
	}
	return names
}

// RenderNames joins names one per line and appends the variable total.
func RenderNames(names []string) string {
	if len(names) == 0 {
		return noVariablesMsg + "\n"
	}
	return fmt.Sprintf("%s\n\nTotal variables: %d\n", strings.Join(names, "\n"), len(names))
}
