package snapshot

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"tokenaudit/internal/tokens"
)

// restFormat decodes the local-variables REST response. Collections and
// variables are keyed by id under "meta"; their order is the document order.
type restFormat struct{}

type restDoc struct {
	Meta struct {
		VariableCollections yaml.Node `yaml:"variableCollections"`
		Variables           yaml.Node `yaml:"variables"`
	} `yaml:"meta"`
}

func (restFormat) Name() string { return "rest" }

func (restFormat) Decode(data []byte) (*tokens.Snapshot, error) {
	var doc restDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	var cols []tokens.Collection
	if doc.Meta.VariableCollections.Kind != 0 {
		pairs, err := mappingPairs(&doc.Meta.VariableCollections)
		if err != nil {
			return nil, fmt.Errorf("meta.variableCollections: %w", err)
		}
		for _, p := range pairs {
			var c collectionDoc
			if err := p.value.Decode(&c); err != nil {
				return nil, fmt.Errorf("collection %q: %w", p.key, err)
			}
			if c.ID == "" {
				c.ID = p.key
			}
			cols = append(cols, c.toCollection())
		}
	}

	var vars []tokens.Variable
	if doc.Meta.Variables.Kind != 0 {
		pairs, err := mappingPairs(&doc.Meta.Variables)
		if err != nil {
			return nil, fmt.Errorf("meta.variables: %w", err)
		}
		for _, p := range pairs {
			var d variableDoc
			if err := p.value.Decode(&d); err != nil {
				return nil, fmt.Errorf("variable %q: %w", p.key, err)
			}
			if d.ID == "" {
				d.ID = p.key
			}
			v, err := d.toVariable()
			if err != nil {
				return nil, err
			}
			vars = append(vars, v)
		}
	}
	return tokens.NewSnapshot(cols, vars), nil
}
