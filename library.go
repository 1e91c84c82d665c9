package gds

import "fmt"

// Library default units: coordinates are expressed in µm and stored in
// 1 nm database units, the common convention for superconducting chips.
const (
	// UserUnit is the size of one database unit in user units.
	UserUnit = 1e-3

	// MeterUnit is the size of one database unit in meters.
	MeterUnit = 1e-9
)

// Library is a named, ordered collection of cells, serializable to a
// GDSII stream.
type Library struct {
	Name string

	cells  []*Cell
	byName map[string]*Cell
}

// NewLibrary creates an empty library.
func NewLibrary(name string) *Library {
	if name == "" {
		name = "library"
	}
	return &Library{
		Name:   name,
		byName: make(map[string]*Cell),
	}
}

// NewCell creates a cell in the library. Cell names must be unique.
func (l *Library) NewCell(name string) (*Cell, error) {
	if _, ok := l.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateCell, name)
	}
	c := NewCell(name)
	l.cells = append(l.cells, c)
	l.byName[name] = c
	return c, nil
}

// AddCell adds an existing cell to the library.
func (l *Library) AddCell(c *Cell) error {
	if _, ok := l.byName[c.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCell, c.Name)
	}
	l.cells = append(l.cells, c)
	l.byName[c.Name] = c
	return nil
}

// Cells returns the cells in insertion order.
func (l *Library) Cells() []*Cell {
	return l.cells
}

// Cell returns the named cell.
func (l *Library) Cell(name string) (*Cell, error) {
	c, ok := l.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCellNotFound, name)
	}
	return c, nil
}

// TopLevel returns the first top-level cell of the library. Without cell
// references every cell is top level, so this is the first cell added.
func (l *Library) TopLevel() (*Cell, error) {
	if len(l.cells) == 0 {
		return nil, ErrNoCells
	}
	return l.cells[0], nil
}
