package gdsii

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Writer serializes a Library to a GDSII stream.
type Writer struct {
	w *bufio.Writer

	// Now supplies the library and structure timestamps. Defaults to
	// time.Now; tests pin it for reproducible output.
	Now func() time.Time
}

// NewWriter creates a stream writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   bufio.NewWriter(w),
		Now: time.Now,
	}
}

// Write serializes the library and flushes the underlying writer.
func (w *Writer) Write(lib *Library) error {
	stamp := timestamp(w.Now())

	if err := w.record(RecHeader, DataInt16, int16Payload(Version)); err != nil {
		return err
	}
	if err := w.record(RecBgnLib, DataInt16, stamp); err != nil {
		return err
	}
	if err := w.record(RecLibName, DataASCII, asciiPayload(lib.Name)); err != nil {
		return err
	}
	units := make([]byte, 16)
	binary.BigEndian.PutUint64(units[0:], encodeReal64(lib.UserUnit))
	binary.BigEndian.PutUint64(units[8:], encodeReal64(lib.MeterUnit))
	if err := w.record(RecUnits, DataReal64, units); err != nil {
		return err
	}

	for i := range lib.Cells {
		if err := w.cell(&lib.Cells[i], stamp); err != nil {
			return err
		}
	}

	if err := w.record(RecEndLib, DataNone, nil); err != nil {
		return err
	}
	return w.w.Flush()
}

// cell writes one BGNSTR..ENDSTR block.
func (w *Writer) cell(c *Cell, stamp []byte) error {
	if err := w.record(RecBgnStr, DataInt16, stamp); err != nil {
		return err
	}
	if err := w.record(RecStrName, DataASCII, asciiPayload(c.Name)); err != nil {
		return err
	}
	for i := range c.Polygons {
		if err := w.boundary(&c.Polygons[i]); err != nil {
			return fmt.Errorf("cell %q polygon %d: %w", c.Name, i, err)
		}
	}
	return w.record(RecEndStr, DataNone, nil)
}

// boundary writes one BOUNDARY element. The contour is closed by
// repeating the first vertex, as the format requires.
func (w *Writer) boundary(p *Polygon) error {
	if len(p.Points) > MaxVertices {
		return fmt.Errorf("%w: %d vertices", ErrTooManyVertices, len(p.Points))
	}
	if err := w.record(RecBoundary, DataNone, nil); err != nil {
		return err
	}
	if err := w.record(RecLayer, DataInt16, int16Payload(int16(p.Layer))); err != nil {
		return err
	}
	if err := w.record(RecDatatype, DataInt16, int16Payload(int16(p.Datatype))); err != nil {
		return err
	}
	xy := make([]byte, 8*(len(p.Points)+1))
	for i, pt := range p.Points {
		binary.BigEndian.PutUint32(xy[8*i:], uint32(pt.X))
		binary.BigEndian.PutUint32(xy[8*i+4:], uint32(pt.Y))
	}
	if n := len(p.Points); n > 0 {
		binary.BigEndian.PutUint32(xy[8*n:], uint32(p.Points[0].X))
		binary.BigEndian.PutUint32(xy[8*n+4:], uint32(p.Points[0].Y))
	}
	if err := w.record(RecXY, DataInt32, xy); err != nil {
		return err
	}
	return w.record(RecEndEl, DataNone, nil)
}

// record writes one record: 2-byte total length, record type, data type,
// then the payload.
func (w *Writer) record(recType, dataType byte, payload []byte) error {
	total := len(payload) + 4
	if total > 0xFFFF {
		return fmt.Errorf("%w: record 0x%02x payload too large", ErrBadRecord, recType)
	}
	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:], uint16(total))
	hdr[2] = recType
	hdr[3] = dataType
	if _, err := w.w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.w.Write(payload)
	return err
}

// int16Payload encodes a single big-endian int16 payload.
func int16Payload(v int16) []byte {
	return []byte{byte(uint16(v) >> 8), byte(v)}
}

// asciiPayload encodes a string payload, NUL-padded to even length.
func asciiPayload(s string) []byte {
	b := []byte(s)
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	return b
}

// timestamp encodes a time as the twelve int16 fields of BGNLIB/BGNSTR
// (modification and access time, both set to t).
func timestamp(t time.Time) []byte {
	fields := []int16{
		int16(t.Year()), int16(t.Month()), int16(t.Day()),
		int16(t.Hour()), int16(t.Minute()), int16(t.Second()),
	}
	b := make([]byte, 0, 24)
	for i := 0; i < 2; i++ {
		for _, f := range fields {
			b = append(b, byte(uint16(f)>>8), byte(f))
		}
	}
	return b
}
