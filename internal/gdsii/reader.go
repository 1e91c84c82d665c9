package gdsii

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Read parses a GDSII stream into a Library. BOUNDARY elements are kept;
// PATH, SREF and other elements, along with unknown records, are skipped
// so that files produced by other tools still load.
func Read(r io.Reader) (*Library, error) {
	br := bufio.NewReader(r)

	recType, dataType, payload, err := readRecord(br)
	if err != nil {
		return nil, err
	}
	if recType != RecHeader || dataType != DataInt16 {
		return nil, ErrNotGDS
	}

	lib := &Library{}
	var cell *Cell
	var poly *Polygon

	for {
		recType, _, payload, err = readRecord(br)
		if err != nil {
			if err == io.EOF {
				return nil, ErrTruncated
			}
			return nil, err
		}

		switch recType {
		case RecEndLib:
			return lib, nil

		case RecLibName:
			lib.Name = asciiValue(payload)

		case RecUnits:
			if len(payload) != 16 {
				return nil, fmt.Errorf("%w: UNITS payload %d bytes", ErrBadRecord, len(payload))
			}
			lib.UserUnit = decodeReal64(binary.BigEndian.Uint64(payload[0:]))
			lib.MeterUnit = decodeReal64(binary.BigEndian.Uint64(payload[8:]))

		case RecBgnStr:
			lib.Cells = append(lib.Cells, Cell{})
			cell = &lib.Cells[len(lib.Cells)-1]

		case RecStrName:
			if cell != nil {
				cell.Name = asciiValue(payload)
			}

		case RecEndStr:
			cell = nil

		case RecBoundary:
			if cell != nil {
				cell.Polygons = append(cell.Polygons, Polygon{})
				poly = &cell.Polygons[len(cell.Polygons)-1]
			}

		case RecPath, RecSRef:
			// Unsupported element kinds: their records are consumed and
			// dropped until ENDEL.
			poly = nil

		case RecLayer:
			if poly != nil && len(payload) >= 2 {
				poly.Layer = int(int16(binary.BigEndian.Uint16(payload)))
			}

		case RecDatatype:
			if poly != nil && len(payload) >= 2 {
				poly.Datatype = int(int16(binary.BigEndian.Uint16(payload)))
			}

		case RecXY:
			if poly != nil {
				if len(payload)%8 != 0 {
					return nil, fmt.Errorf("%w: XY payload %d bytes", ErrBadRecord, len(payload))
				}
				n := len(payload) / 8
				pts := make([]Point, 0, n)
				for i := 0; i < n; i++ {
					pts = append(pts, Point{
						X: int32(binary.BigEndian.Uint32(payload[8*i:])),
						Y: int32(binary.BigEndian.Uint32(payload[8*i+4:])),
					})
				}
				// Drop the closing vertex the format repeats.
				if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
					pts = pts[:len(pts)-1]
				}
				poly.Points = pts
			}

		case RecEndEl:
			poly = nil

		default:
			// Unknown record: payload already consumed, nothing to keep.
		}
	}
}

// readRecord reads one record header and payload.
func readRecord(r *bufio.Reader) (recType, dataType byte, payload []byte, err error) {
	var hdr [4]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = ErrTruncated
		}
		return 0, 0, nil, err
	}
	total := int(binary.BigEndian.Uint16(hdr[:2]))
	if total < 4 {
		return 0, 0, nil, fmt.Errorf("%w: record length %d", ErrBadRecord, total)
	}
	payload = make([]byte, total-4)
	if _, err = io.ReadFull(r, payload); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrTruncated
		}
		return 0, 0, nil, err
	}
	return hdr[2], hdr[3], payload, nil
}

// asciiValue decodes a string payload, trimming NUL padding.
func asciiValue(payload []byte) string {
	return strings.TrimRight(string(payload), "\x00")
}
