package gds

// Shape is anything that can be rendered to layout polygons. Both
// *Polygon and *Path satisfy it.
type Shape interface {
	Polygons() []*Polygon
}

// Polygons returns the polygon itself, satisfying Shape.
func (p *Polygon) Polygons() []*Polygon {
	return []*Polygon{p}
}

// Cell is a named container of layout shapes.
type Cell struct {
	Name string

	polygons []*Polygon
}

// NewCell creates a standalone cell. Cells meant for serialization are
// usually created through Library.NewCell instead.
func NewCell(name string) *Cell {
	return &Cell{Name: name}
}

// Add renders each shape and stores its polygons in the cell. It returns
// the cell so additions can be chained.
func (c *Cell) Add(shapes ...Shape) *Cell {
	for _, s := range shapes {
		c.polygons = append(c.polygons, s.Polygons()...)
	}
	return c
}

// AddPolygons stores a polygon list in the cell and returns the cell for
// chaining. It is a convenience for generators that return slices.
func (c *Cell) AddPolygons(polys []*Polygon) *Cell {
	c.polygons = append(c.polygons, polys...)
	return c
}

// Polygons returns the polygons stored in the cell.
func (c *Cell) Polygons() []*Polygon {
	return c.polygons
}

// Bounds returns the bounding box of every polygon in the cell.
func (c *Cell) Bounds() Rect {
	if len(c.polygons) == 0 {
		return Rect{}
	}
	b := c.polygons[0].Bounds()
	for _, p := range c.polygons[1:] {
		b = b.Union(p.Bounds())
	}
	return b
}

// Layers returns the sorted set of layers used in the cell.
func (c *Cell) Layers() []int {
	seen := make(map[int]bool)
	var layers []int
	for _, p := range c.polygons {
		if !seen[p.Layer] {
			seen[p.Layer] = true
			layers = append(layers, p.Layer)
		}
	}
	// Insertion sort; layer counts are tiny.
	for i := 1; i < len(layers); i++ {
		for j := i; j > 0 && layers[j] < layers[j-1]; j-- {
			layers[j], layers[j-1] = layers[j-1], layers[j]
		}
	}
	return layers
}
