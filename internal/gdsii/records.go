// Package gdsii implements the record-level GDSII stream format: big-endian
// records of (length, record type, data type) headers followed by typed
// payloads. Only the record subset needed for flat polygon layouts is
// supported.
package gdsii

import "errors"

// Record types used by flat polygon libraries.
const (
	RecHeader   = 0x00
	RecBgnLib   = 0x01
	RecLibName  = 0x02
	RecUnits    = 0x03
	RecEndLib   = 0x04
	RecBgnStr   = 0x05
	RecStrName  = 0x06
	RecEndStr   = 0x07
	RecBoundary = 0x08
	RecPath     = 0x09
	RecSRef     = 0x0A
	RecLayer    = 0x0D
	RecDatatype = 0x0E
	RecWidth    = 0x0F
	RecXY       = 0x10
	RecEndEl    = 0x11
	RecSName    = 0x12
	RecPathtype = 0x21
)

// Payload data types.
const (
	DataNone   = 0x00
	DataBitArr = 0x01
	DataInt16  = 0x02
	DataInt32  = 0x03
	DataReal32 = 0x04
	DataReal64 = 0x05
	DataASCII  = 0x06
)

// Version is the stream format version written in the HEADER record.
// 600 marks support for 32000-character strings, matching common tools.
const Version = 600

// MaxVertices is the format limit on boundary vertices. An XY record
// holds at most 8191 coordinate pairs, one of which closes the contour.
const MaxVertices = 8190

// Sentinel errors for the gdsii package.
var (
	// ErrNotGDS is returned when the stream does not start with a HEADER
	// record.
	ErrNotGDS = errors.New("gdsii: not a GDSII stream")

	// ErrTruncated is returned when the stream ends inside a record.
	ErrTruncated = errors.New("gdsii: truncated stream")

	// ErrTooManyVertices is returned when a boundary exceeds MaxVertices.
	ErrTooManyVertices = errors.New("gdsii: boundary exceeds vertex limit")

	// ErrBadRecord is returned when a record payload does not match its
	// declared size or type.
	ErrBadRecord = errors.New("gdsii: malformed record")
)

// Point is a coordinate pair in database units.
type Point struct {
	X, Y int32
}

// Polygon is a BOUNDARY element: a closed contour on a layer.
type Polygon struct {
	Layer    int
	Datatype int
	Points   []Point
}

// Cell is a structure (BGNSTR..ENDSTR) holding boundary elements.
type Cell struct {
	Name     string
	Polygons []Polygon
}

// Library is a full GDSII library as read from or written to a stream.
type Library struct {
	Name string

	// UserUnit is the size of one database unit in user units.
	UserUnit float64

	// MeterUnit is the size of one database unit in meters.
	MeterUnit float64

	Cells []Cell
}
