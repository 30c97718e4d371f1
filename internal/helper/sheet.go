// Package helper implements the stress and consequence tracker that sits
// next to the dice roller. The browser form is the only place its state
// lives: every submission is read back verbatim and echoed with a new roll.
package helper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FatePointsField is the form field holding the fate-point count.
const FatePointsField = "fp"

// DefaultSheet returns the standard layout: a health track "h" and a
// composure track "c" with nine boxes each, and mild, moderate and severe
// consequences.
func DefaultSheet() *Sheet {
	return &Sheet{
		Title: "Spirit of the Century",
		Tracks: []Track{
			{Key: "h", Label: "Health", Boxes: 9},
			{Key: "c", Label: "Composure", Boxes: 9},
		},
		Consequences: []Consequence{
			{Key: "mild", Label: "Mild"},
			{Key: "moderate", Label: "Moderate"},
			{Key: "severe", Label: "Severe"},
		},
		DefaultFatePoints: "10",
	}
}

// LoadSheet loads a sheet layout from a YAML file. Missing sections fall
// back to the default layout.
func LoadSheet(path string) (*Sheet, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // operator-supplied config path
	if err != nil {
		return nil, err
	}
	var s Sheet
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse sheet %s: %w", cleanPath, err)
	}
	def := DefaultSheet()
	if s.Title == "" {
		s.Title = def.Title
	}
	if len(s.Tracks) == 0 {
		s.Tracks = def.Tracks
	}
	if len(s.Consequences) == 0 {
		s.Consequences = def.Consequences
	}
	if s.DefaultFatePoints == "" {
		s.DefaultFatePoints = def.DefaultFatePoints
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", cleanPath, err)
	}
	return &s, nil
}

// Validate reports layout mistakes that would make two inputs share a form
// field.
func (s *Sheet) Validate() error {
	seen := map[string]bool{FatePointsField: true}
	for _, tr := range s.Tracks {
		if strings.TrimSpace(tr.Key) == "" {
			return errors.New("track key is required")
		}
		if tr.Boxes <= 0 {
			return fmt.Errorf("track %q: boxes must be positive", tr.Key)
		}
		for _, id := range tr.BoxIDs() {
			if seen[id] {
				return fmt.Errorf("duplicate form field %q", id)
			}
			seen[id] = true
		}
	}
	for _, c := range s.Consequences {
		if strings.TrimSpace(c.Key) == "" {
			return errors.New("consequence key is required")
		}
		if seen[c.Key] {
			return fmt.Errorf("duplicate form field %q", c.Key)
		}
		seen[c.Key] = true
	}
	return nil
}

// BoxIDs returns the form field names of the track's boxes, numbered from 1.
func (t Track) BoxIDs() []string {
	out := make([]string, t.Boxes)
	for i := range out {
		out[i] = t.Key + strconv.Itoa(i+1)
	}
	return out
}

// BoxIDs returns every box field name on the sheet, track by track.
func (s *Sheet) BoxIDs() []string {
	var out []string
	for _, tr := range s.Tracks {
		out = append(out, tr.BoxIDs()...)
	}
	return out
}

// EmptyState returns the state of a fresh form: nothing checked, no
// consequences, and the default fate points.
func (s *Sheet) EmptyState() State {
	st := State{
		Boxes:        make(map[string]string, len(s.BoxIDs())),
		Consequences: make(map[string]string, len(s.Consequences)),
		FatePoints:   s.DefaultFatePoints,
	}
	for _, id := range s.BoxIDs() {
		st.Boxes[id] = ""
	}
	for _, c := range s.Consequences {
		st.Consequences[c.Key] = ""
	}
	return st
}
