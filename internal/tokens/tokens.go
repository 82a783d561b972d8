// Package tokens models a design tool's variable store: collections of
// variables whose per-mode values are either literals or aliases to other
// variables.
//
// The audit only ever reads a Store; nothing in this package mutates the
// snapshot after it has been built.
package tokens

// Collection is a named grouping of variables.
type Collection struct {
	ID          string
	Name        string
	VariableIDs []string // member order as stored in the source file
}

// Value is the value bound to one mode of a variable. When Alias is non-empty
// the value is a reference, by id, to another variable; otherwise Literal
// holds the raw value (number, string, color object, ...).
type Value struct {
	Alias   string
	Literal any
}

// IsAlias reports whether v points at another variable.
func (v Value) IsAlias() bool { return v.Alias != "" }

// ModeValue binds a mode id to a value.
type ModeValue struct {
	ModeID string
	Value  Value
}

// Variable is a named token. Name may encode a "/"-separated group hierarchy,
// e.g. "Color/Blue/500".
type Variable struct {
	ID           string
	Name         string
	CollectionID string
	Values       []ModeValue // document order; Values[0] is the first mode
}

// FirstValue returns the value of the first mode. ok is false when the
// variable has no modes at all.
func (v *Variable) FirstValue() (val Value, ok bool) {
	if v == nil || len(v.Values) == 0 {
		return Value{}, false
	}
	return v.Values[0].Value, true
}

// Store is the read-only view of a variable store consumed by the audit.
type Store interface {
	// Collections returns every collection in source order.
	Collections() []Collection

	// Variable looks up a variable by id.
	Variable(id string) (*Variable, bool)
}

// Snapshot is an in-memory Store.
type Snapshot struct {
	collections []Collection
	variables   []Variable
	byID        map[string]*Variable
}

// NewSnapshot indexes variables by id. When two variables share an id the
// later one wins.
func NewSnapshot(collections []Collection, variables []Variable) *Snapshot {
	s := &Snapshot{
		collections: collections,
		variables:   variables,
		byID:        make(map[string]*Variable, len(variables)),
	}
	for i := range s.variables {
		s.byID[s.variables[i].ID] = &s.variables[i]
	}
	return s
}

func (s *Snapshot) Collections() []Collection { return s.collections }

func (s *Snapshot) Variable(id string) (*Variable, bool) {
	v, ok := s.byID[id]
	return v, ok
}

// Variables returns every variable in the order it was added.
func (s *Snapshot) Variables() []Variable { return s.variables }
