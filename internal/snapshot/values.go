package snapshot

// values.go — shared decoding of variable records and valuesByMode maps.

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"tokenaudit/internal/tokens"
)

// aliasType is the value type tag the design tool uses for references.
const aliasType = "VARIABLE_ALIAS"

// variableDoc is a variable record as it appears in both export shapes.
type variableDoc struct {
	ID           string    `yaml:"id"`
	Name         string    `yaml:"name"`
	CollectionID string    `yaml:"variableCollectionId"`
	ValuesByMode yaml.Node `yaml:"valuesByMode"`
}

// collectionDoc is a collection record as it appears in both export shapes.
type collectionDoc struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	VariableIDs []string `yaml:"variableIds"`
}

// aliasDoc matches {"type": "VARIABLE_ALIAS", "id": "..."}.
type aliasDoc struct {
	Type string `yaml:"type"`
	ID   string `yaml:"id"`
}

func (d variableDoc) toVariable() (tokens.Variable, error) {
	values, err := decodeModes(&d.ValuesByMode)
	if err != nil {
		return tokens.Variable{}, fmt.Errorf("variable %q: %w", d.ID, err)
	}
	return tokens.Variable{
		ID:           d.ID,
		Name:         d.Name,
		CollectionID: d.CollectionID,
		Values:       values,
	}, nil
}

func (d collectionDoc) toCollection() tokens.Collection {
	return tokens.Collection{ID: d.ID, Name: d.Name, VariableIDs: d.VariableIDs}
}

// decodeModes turns a valuesByMode mapping into mode values, preserving the
// document order of its keys.
func decodeModes(n *yaml.Node) ([]tokens.ModeValue, error) {
	if n.Kind == 0 || n.ShortTag() == "!!null" {
		return nil, nil
	}
	pairs, err := mappingPairs(n)
	if err != nil {
		return nil, fmt.Errorf("valuesByMode: %w", err)
	}
	out := make([]tokens.ModeValue, 0, len(pairs))
	for _, p := range pairs {
		val, err := decodeValue(p.value)
		if err != nil {
			return nil, fmt.Errorf("mode %q: %w", p.key, err)
		}
		out = append(out, tokens.ModeValue{ModeID: p.key, Value: val})
	}
	return out, nil
}

// decodeValue recognises alias objects; everything else is kept as a literal.
func decodeValue(n *yaml.Node) (tokens.Value, error) {
	if n.Kind == yaml.MappingNode {
		var a aliasDoc
		if err := n.Decode(&a); err == nil && a.Type == aliasType && a.ID != "" {
			return tokens.Value{Alias: a.ID}, nil
		}
	}
	var lit any
	if err := n.Decode(&lit); err != nil {
		return tokens.Value{}, err
	}
	return tokens.Value{Literal: lit}, nil
}

type nodePair struct {
	key   string
	value *yaml.Node
}

// mappingPairs returns the key/value pairs of a mapping node in order. A
// document node is unwrapped first.
func mappingPairs(n *yaml.Node) ([]nodePair, error) {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	pairs := make([]nodePair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		pairs = append(pairs, nodePair{key: n.Content[i].Value, value: n.Content[i+1]})
	}
	return pairs, nil
}
