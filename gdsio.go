package gds

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/qchiplab/gds/internal/gdsii"
)

// WriteGDS serializes the library as a GDSII stream. Coordinates snap to
// the database grid (1 nm).
func (l *Library) WriteGDS(w io.Writer) error {
	out := gdsii.Library{
		Name:      l.Name,
		UserUnit:  UserUnit,
		MeterUnit: MeterUnit,
	}
	for _, c := range l.cells {
		cell := gdsii.Cell{Name: c.Name}
		for _, p := range c.polygons {
			poly := gdsii.Polygon{
				Layer:    p.Layer,
				Datatype: p.Datatype,
				Points:   make([]gdsii.Point, len(p.Points)),
			}
			for i, pt := range p.Points {
				poly.Points[i] = gdsii.Point{
					X: int32(math.Round(pt.X / UserUnit)),
					Y: int32(math.Round(pt.Y / UserUnit)),
				}
			}
			cell.Polygons = append(cell.Polygons, poly)
		}
		out.Cells = append(out.Cells, cell)
	}
	if err := gdsii.NewWriter(w).Write(&out); err != nil {
		return fmt.Errorf("write gds library %q: %w", l.Name, err)
	}
	Logger().Info("library written",
		"library", l.Name, "cells", len(l.cells))
	return nil
}

// SaveGDS writes the library to a file.
func (l *Library) SaveGDS(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := l.WriteGDS(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadGDS parses a GDSII stream into a library. Only boundary elements
// are kept; coordinates are scaled back to user units.
func ReadGDS(r io.Reader) (*Library, error) {
	in, err := gdsii.Read(r)
	if err != nil {
		return nil, fmt.Errorf("read gds library: %w", err)
	}
	unit := in.UserUnit
	if unit == 0 {
		unit = UserUnit
	}
	lib := NewLibrary(in.Name)
	for _, c := range in.Cells {
		cell, err := lib.NewCell(c.Name)
		if err != nil {
			return nil, err
		}
		for _, p := range c.Polygons {
			points := make([]Point, len(p.Points))
			for i, pt := range p.Points {
				points[i] = Point{
					X: float64(pt.X) * unit,
					Y: float64(pt.Y) * unit,
				}
			}
			poly := NewPolygon(points, p.Layer)
			poly.Datatype = p.Datatype
			cell.Add(poly)
		}
	}
	Logger().Info("library read",
		"library", lib.Name, "cells", len(lib.cells))
	return lib, nil
}

// OpenGDS reads a library from a file.
func OpenGDS(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGDS(f)
}
