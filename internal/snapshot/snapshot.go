// Package snapshot loads exported variable data into a tokens.Snapshot.
//
// Two export shapes are understood:
//
//	rest    — the body of Figma's GET /v1/files/:key/variables/local
//	plugin  — {"collections": [...], "variables": [...]} as dumped from the
//	          plugin API (getLocalVariableCollections / getVariableById)
//
// Both are decoded with yaml.v3; JSON is valid YAML, and decoding through
// yaml.Node keeps the document order of maps, which decides collection order
// and which mode counts as "first".
package snapshot

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"tokenaudit/internal/tokens"
)

// Format decodes one export shape.
type Format interface {
	// Name returns the format's short identifier (e.g. "rest").
	Name() string

	// Decode parses raw export bytes.
	Decode(data []byte) (*tokens.Snapshot, error)
}

// formats is the registry of known export shapes.
var formats = map[string]Format{
	"rest":   restFormat{},
	"plugin": pluginFormat{},
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for n := range formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, error) {
	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (known: %s)", name, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Detect picks a format from the top-level keys of data: a "meta" key means
// a REST response, anything else is treated as a plugin dump.
func Detect(data []byte) (Format, error) {
	var top map[string]yaml.Node
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("detect format: %w", err)
	}
	if _, ok := top["meta"]; ok {
		return formats["rest"], nil
	}
	return formats["plugin"], nil
}

// Decode parses data with the named format, or auto-detects when format is
// empty.
func Decode(data []byte, format string) (*tokens.Snapshot, error) {
	var (
		f   Format
		err error
	)
	if format == "" {
		f, err = Detect(data)
	} else {
		f, err = Lookup(format)
	}
	if err != nil {
		return nil, err
	}
	snap, err := f.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s export: %w", f.Name(), err)
	}
	return snap, nil
}

// Load reads and decodes the export file at path.
func Load(path, format string) (*tokens.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	snap, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}
