package gds

import (
	"fmt"
	"io"
	"os"
)

// layerPalette provides deterministic fill colors per layer for SVG
// inspection output.
var layerPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
}

// layerColor returns the palette color for a layer.
func layerColor(layer int) string {
	if layer < 0 {
		layer = -layer
	}
	return layerPalette[layer%len(layerPalette)]
}

// WriteSVG renders the cell as an SVG document for inspection. The y axis
// is flipped so the image matches layout orientation, and each layer gets
// its own fill color.
func (c *Cell) WriteSVG(w io.Writer) error {
	bounds := c.Bounds().Expand(10)
	if bounds.Width() == 0 || bounds.Height() == 0 {
		bounds = NewRect(Pt(0, 0), Pt(1, 1)).Expand(10)
	}

	// Flipping y maps layout Min.Y/Max.Y to the viewBox bottom/top.
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.3f %.3f %.3f %.3f">`+"\n",
		bounds.Min.X, -bounds.Max.Y, bounds.Width(), bounds.Height())
	if err != nil {
		return err
	}

	for _, p := range c.polygons {
		if len(p.Points) < 3 {
			continue
		}
		if _, err := fmt.Fprintf(w, `<polygon fill="%s" fill-opacity="0.6" points="`,
			layerColor(p.Layer)); err != nil {
			return err
		}
		for i, pt := range p.Points {
			sep := " "
			if i == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%s%.3f,%.3f", sep, pt.X, -pt.Y); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\"/>\n"); err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "</svg>\n")
	return err
}

// WriteSVG renders one cell of the library as SVG. An empty cellName
// selects the top-level cell.
func (l *Library) WriteSVG(w io.Writer, cellName string) error {
	var c *Cell
	var err error
	if cellName == "" {
		c, err = l.TopLevel()
	} else {
		c, err = l.Cell(cellName)
	}
	if err != nil {
		return err
	}
	return c.WriteSVG(w)
}

// SaveSVG writes one cell of the library to an SVG file.
func (l *Library) SaveSVG(path, cellName string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := l.WriteSVG(f, cellName); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
