package gds

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCell_WriteSVG(t *testing.T) {
	c := NewCell("C")
	c.Add(Rectangle(Pt(0, 0), Pt(10, 5), 1))
	c.Add(Rectangle(Pt(2, 2), Pt(4, 4), 2))

	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg ") {
		t.Errorf("output does not start with an svg element: %.40q", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output not closed")
	}
	if got := strings.Count(out, "<polygon "); got != 2 {
		t.Errorf("got %d polygon elements, want 2", got)
	}
	// The two layers render with distinct fills.
	if !strings.Contains(out, layerColor(1)) || !strings.Contains(out, layerColor(2)) {
		t.Error("layer colors missing from output")
	}
	// Layout y flips into SVG coordinates.
	if !strings.Contains(out, "10.000,-5.000") {
		t.Error("expected y-flipped vertex 10.000,-5.000")
	}
}

func TestCell_WriteSVG_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCell("E").WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if !strings.Contains(buf.String(), "viewBox=") {
		t.Error("empty cell should still produce a valid viewBox")
	}
}

func TestLibrary_WriteSVG(t *testing.T) {
	lib := NewLibrary("chip")
	top, _ := lib.NewCell("TOP")
	top.Add(Rectangle(Pt(0, 0), Pt(1, 1), 1))
	other, _ := lib.NewCell("OTHER")
	other.Add(Rectangle(Pt(0, 0), Pt(1, 1), 1))
	other.Add(Rectangle(Pt(2, 0), Pt(3, 1), 1))

	var buf bytes.Buffer
	if err := lib.WriteSVG(&buf, ""); err != nil {
		t.Fatalf("WriteSVG top: %v", err)
	}
	if got := strings.Count(buf.String(), "<polygon "); got != 1 {
		t.Errorf("top cell rendered %d polygons, want 1", got)
	}

	buf.Reset()
	if err := lib.WriteSVG(&buf, "OTHER"); err != nil {
		t.Fatalf("WriteSVG named: %v", err)
	}
	if got := strings.Count(buf.String(), "<polygon "); got != 2 {
		t.Errorf("named cell rendered %d polygons, want 2", got)
	}

	if err := lib.WriteSVG(&buf, "MISSING"); err == nil {
		t.Error("expected error for unknown cell")
	}
}

func TestLibrary_SaveSVG(t *testing.T) {
	lib := NewLibrary("chip")
	top, _ := lib.NewCell("TOP")
	top.Add(Rectangle(Pt(0, 0), Pt(5, 5), 1))

	path := filepath.Join(t.TempDir(), "top.svg")
	if err := lib.SaveSVG(path, ""); err != nil {
		t.Fatalf("SaveSVG: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<polygon ") {
		t.Error("saved file has no polygons")
	}
}
