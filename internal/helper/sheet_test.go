package helper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSheet_Layout(t *testing.T) {
	s := DefaultSheet()
	ids := s.BoxIDs()
	if len(ids) != 18 {
		t.Fatalf("Expected 18 boxes, got %d", len(ids))
	}
	if ids[0] != "h1" || ids[8] != "h9" || ids[9] != "c1" || ids[17] != "c9" {
		t.Errorf("Unexpected box ids: %v", ids)
	}
	if s.DefaultFatePoints != "10" {
		t.Errorf("Expected default fate points 10, got %q", s.DefaultFatePoints)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Default sheet invalid: %v", err)
	}
}

func TestEmptyState(t *testing.T) {
	st := DefaultSheet().EmptyState()
	if st.FatePoints != "10" {
		t.Errorf("Expected fate points 10, got %q", st.FatePoints)
	}
	if len(st.Boxes) != 18 {
		t.Errorf("Expected 18 boxes, got %d", len(st.Boxes))
	}
	for id, v := range st.Boxes {
		if v != "" {
			t.Errorf("Box %s should be empty, got %q", id, v)
		}
	}
	for _, k := range []string{"mild", "moderate", "severe"} {
		if v, ok := st.Consequences[k]; !ok || v != "" {
			t.Errorf("Consequence %s: got %q (present=%v)", k, v, ok)
		}
	}
}

func TestLoadSheet_RepoFile(t *testing.T) {
	s, err := LoadSheet(filepath.Join("..", "..", "sheets", "sotc.yaml"))
	if err != nil {
		t.Fatalf("LoadSheet: %v", err)
	}
	if len(s.BoxIDs()) != 18 {
		t.Errorf("Expected 18 boxes, got %d", len(s.BoxIDs()))
	}
	if len(s.Consequences) != 3 {
		t.Errorf("Expected 3 consequences, got %d", len(s.Consequences))
	}
}

func TestLoadSheet_FillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	yml := "tracks:\n  - key: s\n    label: Stress\n    boxes: 4\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSheet(path)
	if err != nil {
		t.Fatalf("LoadSheet: %v", err)
	}
	if got := strings.Join(s.BoxIDs(), ","); got != "s1,s2,s3,s4" {
		t.Errorf("Unexpected box ids %q", got)
	}
	if len(s.Consequences) != 3 {
		t.Errorf("Expected default consequences, got %d", len(s.Consequences))
	}
	if s.DefaultFatePoints != "10" || s.Title == "" {
		t.Errorf("Expected defaults filled, got %+v", s)
	}
}

func TestLoadSheet_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		yml  string
	}{
		{"bad yaml", "tracks: [\n"},
		{"zero boxes", "tracks:\n  - key: h\n    boxes: 0\n"},
		{"missing key", "tracks:\n  - label: Health\n    boxes: 3\n"},
		{"clashes with fp", "consequences:\n  - key: fp\n"},
		{"duplicate box", "tracks:\n  - key: h\n    boxes: 2\n  - key: h\n    boxes: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.yml), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSheet(path); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := LoadSheet(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
