package settings

// settings_test.go — Tests for settings loading and exclude-pattern matching.

import (
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// matchPattern
// ---------------------------------------------------------------------------

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		// /** matches the prefix itself.
		{"Legacy/**", "Legacy", true},
		// /** matches variables directly inside.
		{"Legacy/**", "Legacy/Color", true},
		// /** matches nested groups.
		{"Legacy/**", "Legacy/Color/Blue/500", true},
		// /** does not match a collection that only shares a prefix.
		{"Legacy/**", "Legacy Brand/Color", false},
		// /** does not match the group deeper in another collection.
		{"Legacy/**", "Semantic/Legacy/Color", false},
		// Single * stays within one segment.
		{"Semantic/Deprecated/*", "Semantic/Deprecated/Link", true},
		{"Semantic/Deprecated/*", "Semantic/Deprecated/Link/Hover", false},
		{"*/Debug/**", "Semantic/Debug/Outline", false},
		// Exact match; spaces are ordinary characters.
		{"Semantic/Link Hover", "Semantic/Link Hover", true},
		{"Semantic/Link", "Semantic/Link Hover", false},
	}
	for _, tc := range tests {
		got := matchPattern(tc.pattern, tc.path)
		if got != tc.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// IsExcluded
// ---------------------------------------------------------------------------

func TestSettings_IsExcluded(t *testing.T) {
	s := &Settings{Exclude: []string{"Legacy/**", " Semantic/Deprecated/* "}}

	excluded := []string{
		"Legacy/Color/Blue",
		"Semantic/Deprecated/Link",
	}
	kept := []string{
		"Semantic/Link",
		"Primitives/Legacy/Blue",
	}
	for _, p := range excluded {
		if !s.IsExcluded(p) {
			t.Errorf("IsExcluded(%q) = false, want true", p)
		}
	}
	for _, p := range kept {
		if s.IsExcluded(p) {
			t.Errorf("IsExcluded(%q) = true, want false", p)
		}
	}
}

func TestSettings_IsExcluded_NilReceiver(t *testing.T) {
	var s *Settings
	if s.IsExcluded("anything") {
		t.Error("nil Settings.IsExcluded should always return false")
	}
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, Dir), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, Dir, File), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad_FileNotExist(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("expected nil error for missing file, got: %v", err)
	}
	if s != nil {
		t.Fatalf("expected nil settings for missing file, got: %+v", s)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := writeSettings(t, `
format: rest
exclude:
  - "Legacy/**"
  - "Semantic/Deprecated/*"
`)
	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s == nil {
		t.Fatal("expected non-nil settings")
	}
	if s.Format != "rest" {
		t.Errorf("Format = %q, want rest", s.Format)
	}
	if len(s.Exclude) != 2 {
		t.Fatalf("expected 2 exclude rules, got %d", len(s.Exclude))
	}
	if !s.IsExcluded("Legacy/Old") {
		t.Error("Legacy/Old should be excluded")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeSettings(t, ":\tbad yaml:")
	if _, err := Load(dir); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoad_BadPattern(t *testing.T) {
	dir := writeSettings(t, "exclude:\n  - \"Semantic/[\"\n")
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed pattern, got nil")
	}
}
