package snapshot

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"tokenaudit/internal/tokens"
)

// pluginFormat decodes a plugin-API dump:
//
//	collections: [{id, name, variableIds}]
//	variables:   [{id, name, variableCollectionId, valuesByMode}]
type pluginFormat struct{}

type pluginDoc struct {
	Collections []collectionDoc `yaml:"collections"`
	Variables   []variableDoc   `yaml:"variables"`
}

func (pluginFormat) Name() string { return "plugin" }

func (pluginFormat) Decode(data []byte) (*tokens.Snapshot, error) {
	var doc pluginDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	cols := make([]tokens.Collection, 0, len(doc.Collections))
	for _, c := range doc.Collections {
		cols = append(cols, c.toCollection())
	}
	vars := make([]tokens.Variable, 0, len(doc.Variables))
	for _, d := range doc.Variables {
		v, err := d.toVariable()
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return tokens.NewSnapshot(cols, vars), nil
}
