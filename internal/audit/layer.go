package audit

// layer.go — maps collection names to layers and variable paths to top groups.

import (
	"strconv"
	"strings"
)

// Layer is the ordinal position of a collection in the token architecture.
type Layer int

const (
	LayerPrimitive Layer = 1 // raw values, only ever chain endpoints
	LayerMapping   Layer = 2 // brand / mapping collections
	LayerConsumer  Layer = 3 // semantic and component collections
)

func (l Layer) String() string { return strconv.Itoa(int(l)) }

// ClassifyLayer derives a collection's layer from its name. Every name maps
// to exactly one layer; anything not recognised as primitive or mapping is a
// consumer.
func ClassifyLayer(collectionName string) Layer {
	n := strings.ToLower(collectionName)
	switch {
	case strings.Contains(n, "primitive"):
		return LayerPrimitive
	case strings.Contains(n, "brand"), strings.Contains(n, "map"), strings.Contains(n, "mapping"):
		return LayerMapping
	default:
		return LayerConsumer
	}
}

// TopGroup returns the lower-cased segment before the first "/" of a variable
// path (collection prefix already removed), or "" when the path has no group.
func TopGroup(variablePath string) string {
	group, _, found := strings.Cut(variablePath, "/")
	if !found {
		return ""
	}
	return strings.ToLower(group)
}
