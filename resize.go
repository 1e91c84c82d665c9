package gds

import "fmt"

// ResizeShapes expands (positive margin) or shrinks (negative margin)
// every polygon, placing the results on the given layer. Polygons that
// collapse entirely under a negative margin are dropped with a warning.
//
// Joins are mitered with MiterLimit, so corners stay sharp without
// growing unbounded spikes at re-entrant angles.
func ResizeShapes(polys []*Polygon, margin float64, layer int) []*Polygon {
	log := Logger()
	out := make([]*Polygon, 0, len(polys))
	for i, p := range polys {
		res := Offset(p, margin)
		if res == nil {
			log.Warn("polygon collapsed under resize margin",
				"index", i, "margin", margin)
			continue
		}
		res.Layer = layer
		if res.SelfIntersects() {
			log.Warn("resized polygon self-intersects, inspect the margin",
				"index", i, "margin", margin)
		}
		out = append(out, res)
	}
	log.Debug("shapes resized",
		"count", len(out), "dropped", len(polys)-len(out), "margin", margin)
	return out
}

// DefaultResizeLayer is the layer resized geometry lands on, matching the
// mask-bias convention of the original process.
const DefaultResizeLayer = 4

// ResizeFile reads a GDSII file, resizes the polygons of its top-level
// cell by margin, and writes the result as a new single-cell library.
func ResizeFile(inPath, outPath string, margin float64, layer int) error {
	lib, err := OpenGDS(inPath)
	if err != nil {
		return fmt.Errorf("resize %s: %w", inPath, err)
	}
	top, err := lib.TopLevel()
	if err != nil {
		return fmt.Errorf("resize %s: %w", inPath, err)
	}

	out := NewLibrary(lib.Name)
	cell, err := out.NewCell("TOP")
	if err != nil {
		return err
	}
	cell.AddPolygons(ResizeShapes(top.Polygons(), margin, layer))
	return out.SaveGDS(outPath)
}
