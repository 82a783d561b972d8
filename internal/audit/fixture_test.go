package audit

import "tokenaudit/internal/tokens"

// fixture builds small in-memory stores. Collections are keyed by name; the
// collection id is "c:" + name.
type fixture struct {
	cols []tokens.Collection
	vars []tokens.Variable
}

func newFixture(collections ...string) *fixture {
	f := &fixture{}
	for _, name := range collections {
		f.cols = append(f.cols, tokens.Collection{ID: "c:" + name, Name: name})
	}
	return f
}

func (f *fixture) add(collection string, v tokens.Variable) *fixture {
	v.CollectionID = "c:" + collection
	for i := range f.cols {
		if f.cols[i].Name == collection {
			f.cols[i].VariableIDs = append(f.cols[i].VariableIDs, v.ID)
		}
	}
	f.vars = append(f.vars, v)
	return f
}

// literal adds a variable whose first mode holds a literal.
func (f *fixture) literal(collection, id, name string) *fixture {
	return f.add(collection, tokens.Variable{
		ID:     id,
		Name:   name,
		Values: []tokens.ModeValue{{ModeID: "m1", Value: tokens.Value{Literal: "#0044ff"}}},
	})
}

// alias adds a variable whose first mode points at target.
func (f *fixture) alias(collection, id, name, target string) *fixture {
	return f.add(collection, tokens.Variable{
		ID:     id,
		Name:   name,
		Values: []tokens.ModeValue{{ModeID: "m1", Value: tokens.Value{Alias: target}}},
	})
}

func (f *fixture) store() *tokens.Snapshot {
	return tokens.NewSnapshot(f.cols, f.vars)
}

func (f *fixture) variable(id string) *tokens.Variable {
	v, _ := f.store().Variable(id)
	return v
}
