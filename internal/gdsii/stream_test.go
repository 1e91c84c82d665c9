package gdsii

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

func testLibrary() *Library {
	return &Library{
		Name:      "chip",
		UserUnit:  1e-3,
		MeterUnit: 1e-9,
		Cells: []Cell{
			{
				Name: "TOP",
				Polygons: []Polygon{
					{Layer: 1, Datatype: 0, Points: []Point{
						{0, 0}, {1000, 0}, {1000, 500}, {0, 500},
					}},
					{Layer: 2, Datatype: 3, Points: []Point{
						{-10, -10}, {10, -10}, {0, 10},
					}},
				},
			},
			{Name: "EMPTY"},
		},
	}
}

func writeStream(t *testing.T, lib *Library) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}
	if err := w.Write(lib); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.Bytes()
}

func TestStream_Roundtrip(t *testing.T) {
	want := testLibrary()
	got, err := Read(bytes.NewReader(writeStream(t, want)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.Name != want.Name {
		t.Errorf("Name = %q, want %q", got.Name, want.Name)
	}
	if got.UserUnit != want.UserUnit || got.MeterUnit != want.MeterUnit {
		t.Errorf("units = (%g, %g), want (%g, %g)",
			got.UserUnit, got.MeterUnit, want.UserUnit, want.MeterUnit)
	}
	if len(got.Cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(got.Cells))
	}
	top := got.Cells[0]
	if top.Name != "TOP" || len(top.Polygons) != 2 {
		t.Fatalf("top cell = %q with %d polygons", top.Name, len(top.Polygons))
	}
	for i, p := range top.Polygons {
		w := want.Cells[0].Polygons[i]
		if p.Layer != w.Layer || p.Datatype != w.Datatype {
			t.Errorf("polygon %d layer/datatype = %d/%d, want %d/%d",
				i, p.Layer, p.Datatype, w.Layer, w.Datatype)
		}
		if len(p.Points) != len(w.Points) {
			t.Fatalf("polygon %d has %d points, want %d", i, len(p.Points), len(w.Points))
		}
		for j := range p.Points {
			if p.Points[j] != w.Points[j] {
				t.Errorf("polygon %d point %d = %v, want %v", i, j, p.Points[j], w.Points[j])
			}
		}
	}
	if got.Cells[1].Name != "EMPTY" || len(got.Cells[1].Polygons) != 0 {
		t.Errorf("second cell = %q with %d polygons",
			got.Cells[1].Name, len(got.Cells[1].Polygons))
	}
}

func TestStream_StartsWithHeader(t *testing.T) {
	data := writeStream(t, testLibrary())
	if binary.BigEndian.Uint16(data[:2]) != 6 || data[2] != RecHeader || data[3] != DataInt16 {
		t.Errorf("stream does not open with a HEADER record: % x", data[:6])
	}
	if v := binary.BigEndian.Uint16(data[4:6]); v != Version {
		t.Errorf("header version = %d, want %d", v, Version)
	}
}

func TestStream_DeterministicWithPinnedClock(t *testing.T) {
	a := writeStream(t, testLibrary())
	b := writeStream(t, testLibrary())
	if !bytes.Equal(a, b) {
		t.Error("two writes with the same clock differ")
	}
}

func TestRead_NotGDS(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{0x00, 0x06, 0x02, 0x06, 'h', 'i'}))
	if !errors.Is(err, ErrNotGDS) {
		t.Errorf("err = %v, want ErrNotGDS", err)
	}
}

func TestRead_Truncated(t *testing.T) {
	data := writeStream(t, testLibrary())
	_, err := Read(bytes.NewReader(data[:len(data)-6]))
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("err = %v, want ErrTruncated", err)
	}
}

func TestRead_SkipsPathElements(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	// Hand-assemble a cell holding a PATH followed by a BOUNDARY.
	mustRecord := func(recType, dataType byte, payload []byte) {
		if err := w.record(recType, dataType, payload); err != nil {
			t.Fatalf("record 0x%02x: %v", recType, err)
		}
	}
	stamp := timestamp(w.Now())
	mustRecord(RecHeader, DataInt16, int16Payload(Version))
	mustRecord(RecBgnLib, DataInt16, stamp)
	mustRecord(RecLibName, DataASCII, asciiPayload("lib"))
	units := make([]byte, 16)
	binary.BigEndian.PutUint64(units[0:], encodeReal64(1e-3))
	binary.BigEndian.PutUint64(units[8:], encodeReal64(1e-9))
	mustRecord(RecUnits, DataReal64, units)
	mustRecord(RecBgnStr, DataInt16, stamp)
	mustRecord(RecStrName, DataASCII, asciiPayload("TOP"))

	mustRecord(RecPath, DataNone, nil)
	mustRecord(RecLayer, DataInt16, int16Payload(5))
	mustRecord(RecXY, DataInt32, make([]byte, 16))
	mustRecord(RecEndEl, DataNone, nil)

	if err := w.boundary(&Polygon{Layer: 7, Points: []Point{{0, 0}, {2, 0}, {2, 2}}}); err != nil {
		t.Fatalf("boundary: %v", err)
	}
	mustRecord(RecEndStr, DataNone, nil)
	mustRecord(RecEndLib, DataNone, nil)
	if err := w.w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	lib, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(lib.Cells) != 1 || len(lib.Cells[0].Polygons) != 1 {
		t.Fatalf("cells = %+v", lib.Cells)
	}
	if lib.Cells[0].Polygons[0].Layer != 7 {
		t.Errorf("kept polygon layer = %d, want 7", lib.Cells[0].Polygons[0].Layer)
	}
}

func TestWrite_VertexLimit(t *testing.T) {
	pts := make([]Point, MaxVertices+1)
	lib := &Library{
		Name: "big", UserUnit: 1e-3, MeterUnit: 1e-9,
		Cells: []Cell{{Name: "C", Polygons: []Polygon{{Points: pts}}}},
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Write(lib); !errors.Is(err, ErrTooManyVertices) {
		t.Errorf("err = %v, want ErrTooManyVertices", err)
	}
}
