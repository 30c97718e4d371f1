package sheetpdf

import (
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"

	"sotchelper/internal/helper"
)

func TestGenerate_NilSheet(t *testing.T) {
	b, err := Generate(nil, helper.State{}, "")
	if !errors.Is(err, ErrNoSheet) {
		t.Fatalf("Expected ErrNoSheet, got %v", err)
	}
	if b != nil {
		t.Error("expected no PDF bytes for nil sheet")
	}
}

func TestGenerate_EmptyState(t *testing.T) {
	s := helper.DefaultSheet()
	b, err := Generate(s, s.EmptyState(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(b) < 100 {
		t.Errorf("PDF too short: %d bytes", len(b))
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}
}

func TestGenerate_FilledState(t *testing.T) {
	s := helper.DefaultSheet()
	st := s.StateFromForm(url.Values{
		"h1":     {"on"},
		"h2":     {"on"},
		"c5":     {"on"},
		"mild":   {"Shaken"},
		"severe": {"Café brawl scar"},
		"fp":     {"7"},
	})
	filled, err := Generate(s, st, "+2")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(filled, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}

	empty, err := Generate(s, s.EmptyState(), "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(filled) <= len(empty) {
		t.Errorf("filled sheet (%d bytes) should be larger than an empty one (%d bytes)", len(filled), len(empty))
	}
}

func TestGenerate_CustomTracks(t *testing.T) {
	s := &helper.Sheet{
		Title:  "Custom",
		Tracks: []helper.Track{{Key: "s", Boxes: 12}},
	}
	b, err := Generate(s, s.StateFromForm(url.Values{"s12": {"on"}}), "-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestBoxOffset_WrapsAtMargin(t *testing.T) {
	for i := 0; i < 60; i++ {
		dx, _ := boxOffset(i)
		if dx+boxSize > contentW {
			t.Fatalf("box %d ends at %.1f, past content width %.1f", i+1, dx+boxSize, float64(contentW))
		}
	}
	if _, dy := boxOffset(boxesPerRow - 1); dy != 0 {
		t.Errorf("last box of the first row moved down by %.1f", dy)
	}
	dx, dy := boxOffset(boxesPerRow)
	if dx != 0 || dy <= 0 {
		t.Errorf("box %d should start a new row, got offset (%.1f, %.1f)", boxesPerRow+1, dx, dy)
	}
}

func TestBuild_LongTrackUsesMoreRows(t *testing.T) {
	short := &helper.Sheet{Title: "Short", Tracks: []helper.Track{{Key: "s", Boxes: 9}}}
	long := &helper.Sheet{Title: "Long", Tracks: []helper.Track{{Key: "s", Boxes: 40}}}

	a, err := build(short, short.EmptyState(), "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := build(long, long.EmptyState(), "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if b.GetY() <= a.GetY() {
		t.Errorf("40-box track ends at y=%.1f, expected below the 9-box track at y=%.1f", b.GetY(), a.GetY())
	}
}

func TestBuild_WrapsLongConsequence(t *testing.T) {
	s := helper.DefaultSheet()
	shortPDF, err := build(s, s.StateFromForm(url.Values{"mild": {"Shaken"}}), "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	longText := strings.Repeat("Bruised ribs from the airship brawl ", 12)
	longPDF, err := build(s, s.StateFromForm(url.Values{"mild": {longText}}), "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if longPDF.GetY() <= shortPDF.GetY() {
		t.Errorf("long consequence should wrap onto more lines: y=%.1f vs %.1f", longPDF.GetY(), shortPDF.GetY())
	}
}
