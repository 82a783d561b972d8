package audit

// pattern.go — classifies a resolved chain into one of the canonical path
// groups by its layer/top-group signature.

import (
	"strconv"
	"strings"
)

// PathGroup is the bucket a chain lands in. The zero value is GroupOther.
type PathGroup int

const (
	GroupOther PathGroup = iota
	Group1               // primitive → semantic
	Group2               // primitive → component
	Group3               // primitive → global → semantic
	Group4               // primitive → global → semantic → semantic
	Group5               // unresolved rule, never matched
	Group6               // primitive → global → component mapping → component
	Group7               // primitive → global → component mapping → semantic
	Group8               // primitive → component mapping → component
)

// Groups lists the numbered path groups in report order.
var Groups = []PathGroup{Group1, Group2, Group3, Group4, Group5, Group6, Group7, Group8}

func (g PathGroup) String() string {
	if g == GroupOther {
		return "Other"
	}
	return strconv.Itoa(int(g))
}

// Step is one chain element reduced to its layer and top group.
type Step struct {
	Layer    Layer
	TopGroup string
}

// Token renders the step as "<layer>-<topGroup>", e.g. "2-global".
func (s Step) Token() string { return s.Layer.String() + "-" + s.TopGroup }

func (s Step) is(layer Layer, group string) bool {
	return s.Layer == layer && s.TopGroup == group
}

func (s Step) primitive() bool { return s.Layer == LayerPrimitive }

func (s Step) componentMapping() bool {
	return s.Layer == LayerMapping && strings.HasPrefix(s.TopGroup, "component")
}

func (s Step) global() bool    { return s.is(LayerMapping, "global") }
func (s Step) semantic() bool  { return s.is(LayerConsumer, "semantic") }
func (s Step) component() bool { return s.is(LayerConsumer, "component") }

// Signature derives one Step per chain element by splitting it into
// collection name and variable path at the first "/".
func Signature(chain Chain) []Step {
	steps := make([]Step, len(chain))
	for i, p := range chain {
		coll, rest, _ := strings.Cut(p, "/")
		steps[i] = Step{Layer: ClassifyLayer(coll), TopGroup: TopGroup(rest)}
	}
	return steps
}

// shape matches a whole signature.
type shape struct {
	group PathGroup
	match func([]Step) bool // nil when the rule is unresolved
}

// shapes is evaluated in order; the first match wins.
var shapes = []shape{
	{Group1, func(s []Step) bool {
		return len(s) == 2 && s[0].primitive() && s[1].semantic()
	}},
	{Group2, func(s []Step) bool {
		return len(s) == 2 && s[0].primitive() && s[1].component()
	}},
	{Group3, func(s []Step) bool {
		return len(s) == 3 && s[0].primitive() && s[1].global() && s[2].semantic()
	}},
	{Group4, func(s []Step) bool {
		return len(s) == 4 && s[0].primitive() && s[1].global() && s[2].semantic() && s[3].semantic()
	}},
	// The intended shape of group 5 has not been settled; it stays declared so
	// reports keep their numbering.
	{Group5, nil},
	{Group6, func(s []Step) bool {
		return len(s) == 4 && s[0].primitive() && s[1].global() && s[2].componentMapping() && s[3].component()
	}},
	{Group7, func(s []Step) bool {
		return len(s) == 4 && s[0].primitive() && s[1].global() && s[2].componentMapping() && s[3].semantic()
	}},
	{Group8, func(s []Step) bool {
		return len(s) == 3 && s[0].primitive() && s[1].componentMapping() && s[2].component()
	}},
}

// Classify returns the first path group whose shape matches chain, or
// GroupOther.
func Classify(chain Chain) PathGroup {
	steps := Signature(chain)
	for _, sh := range shapes {
		if sh.match != nil && sh.match(steps) {
			return sh.group
		}
	}
	return GroupOther
}
