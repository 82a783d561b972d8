// Package settings loads tokenaudit configuration from
// .tokenaudit/settings.yaml.
//
// The file names variables the audit should not use as scan starting points,
// as glob patterns over fully-qualified paths ("<Collection>/<Variable>"):
//
//	format: rest
//	exclude:
//	  - "Legacy/**"
//	  - "Semantic/Deprecated/*"
package settings

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dir and File locate the settings file relative to a root directory.
const (
	Dir  = ".tokenaudit"
	File = "settings.yaml"
)

// Settings holds tokenaudit configuration.
type Settings struct {
	// Format is the default export format name; empty means auto-detect.
	Format string `yaml:"format"`

	// Exclude lists glob patterns for variables that are never audited as
	// starting points. They may still appear inside other chains.
	Exclude []string `yaml:"exclude"`
}

// Load reads <root>/.tokenaudit/settings.yaml.
// Returns nil (not an error) if the file does not exist.
func Load(root string) (*Settings, error) {
	p := filepath.Join(root, Dir, File)
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", p, err)
	}
	for _, pat := range s.Exclude {
		if strings.HasSuffix(pat, "/**") {
			continue
		}
		if _, err := path.Match(pat, ""); err != nil {
			return nil, fmt.Errorf("%s: bad exclude pattern %q: %w", p, pat, err)
		}
	}
	return &s, nil
}

// IsExcluded reports whether the fully-qualified variable path matches any
// exclude pattern. Safe to call on a nil *Settings receiver.
func (s *Settings) IsExcluded(varPath string) bool {
	if s == nil {
		return false
	}
	for _, pat := range s.Exclude {
		if matchPattern(strings.TrimSpace(pat), varPath) {
			return true
		}
	}
	return false
}

// matchPattern reports whether p matches pattern.
//
// "prefix/**" matches the prefix group itself and every path beneath it.
// All other patterns use path.Match semantics (single * does not cross /).
func matchPattern(pattern, p string) bool {
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return p == prefix || strings.HasPrefix(p, prefix+"/")
	}
	matched, _ := path.Match(pattern, p)
	return matched
}
