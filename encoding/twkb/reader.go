// Package twkb implements the TWKB (Tiny Well-Known Binary) reader: a
// compact, variable-length, delta-coded encoding. There is no TWKB writer;
// round-tripping a TWKB-sourced value happens through package ewkb (see
// geowkb.TWKBToEWKB at the module root).
package twkb

import (
	"bufio"
	"bytes"
	"fmt"
	"math"

	"github.com/restayway/geowkb/geom"
)

const (
	metaBBox     uint8 = 0x01
	metaSize     uint8 = 0x02
	metaIDList   uint8 = 0x04
	metaExtended uint8 = 0x08
	metaEmpty    uint8 = 0x10
)

// header carries the parsed, fixed-for-the-whole-value metadata a TWKB
// geometry's byte 1/2 (and optional extended byte) describe. The delta
// accumulator is deliberately not a field here — see accumulator below and
// spec.md's Design Notes on keeping it an explicit, threaded parameter.
type header struct {
	kind  geom.Kind
	dims  []int // semantic coordinate slots present, in read order: some subset of {0:x, 1:y, 2:z, 3:m}
	scale [4]float64
	empty bool
}

// accumulator is the running per-dimension delta base. It is passed by
// pointer through every recursive decode call so that, for Multi-*
// geometries, all children continue deltaing from the previous child's
// last coordinate (spec.md §4.2) — and so a fresh top-level parse always
// starts from an explicit zero value rather than inherited reader state.
type accumulator [4]int64

// Read decodes a single TWKB-encoded geometry from data.
func Read(data []byte) (geom.Geometry, error) {
	r := bufio.NewReader(bytes.NewReader(data))

	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	if hdr.kind == geom.KindGeometryCollection {
		return nil, geom.WrapOtherError(geom.ErrUnsupportedGeometryCollection, "TWKB GeometryCollection")
	}

	if hdr.empty {
		return emptyGeometry(hdr.kind), nil
	}

	var accum accumulator
	return decodeBody(r, hdr, &accum)
}

// ProbeKind inspects a single TWKB header byte and reports the base
// geometry kind it names, without reading or otherwise requiring the rest
// of the value.
func ProbeKind(headerByte byte) (geom.Kind, error) {
	kind := geom.Kind(headerByte & 0x0f)
	if !kind.Valid() {
		return 0, geom.NewReadError(fmt.Sprintf("unknown base geometry code %d", headerByte&0x0f))
	}
	return kind, nil
}

func readHeader(r *bufio.Reader) (header, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return header{}, geom.WrapReadError(err, "header byte 1")
	}

	kind := geom.Kind(b1 & 0x0f)
	if !kind.Valid() {
		return header{}, geom.NewReadError(fmt.Sprintf("unknown base geometry code %d", b1&0x0f))
	}

	precision := decode4BitPrecision(b1 >> 4)
	pxy := math.Pow10(int(precision))

	b2, err := r.ReadByte()
	if err != nil {
		return header{}, geom.WrapReadError(err, "header byte 2")
	}

	hdr := header{
		kind:  kind,
		dims:  []int{0, 1},
		scale: [4]float64{pxy, pxy, 0, 0},
		empty: b2&metaEmpty != 0,
	}

	if b2&metaExtended != 0 {
		eb, err := r.ReadByte()
		if err != nil {
			return header{}, geom.WrapReadError(err, "extended precision byte")
		}
		if eb&0x01 != 0 {
			zprec := (eb >> 2) & 0x07
			hdr.scale[2] = math.Pow10(int(zprec))
			hdr.dims = append(hdr.dims, 2)
		}
		if eb&0x02 != 0 {
			mprec := (eb >> 5) & 0x07
			hdr.scale[3] = math.Pow10(int(mprec))
			hdr.dims = append(hdr.dims, 3)
		}
	}

	if b2&metaSize != 0 {
		if _, err := readUvarint(r); err != nil {
			return header{}, geom.WrapReadError(err, "size varint")
		}
	}

	if b2&metaBBox != 0 {
		for range hdr.dims {
			if _, err := readSvarint(r); err != nil {
				return header{}, geom.WrapReadError(err, "bbox min")
			}
			if _, err := readSvarint(r); err != nil {
				return header{}, geom.WrapReadError(err, "bbox delta-to-max")
			}
		}
	}

	if b2&metaIDList != 0 {
		n, err := readUvarint(r)
		if err != nil {
			return header{}, geom.WrapReadError(err, "id list count")
		}
		for i := uint64(0); i < n; i++ {
			if _, err := readSvarint(r); err != nil {
				return header{}, geom.WrapReadError(err, "id list entry")
			}
		}
	}

	return hdr, nil
}

func emptyGeometry(kind geom.Kind) geom.Geometry {
	switch kind {
	case geom.KindPoint:
		return &geom.Point{}
	case geom.KindLineString:
		return &geom.LineString{}
	case geom.KindPolygon:
		return &geom.Polygon{}
	case geom.KindMultiPoint:
		return &geom.MultiPoint{}
	case geom.KindMultiLineString:
		return &geom.MultiLineString{}
	case geom.KindMultiPolygon:
		return &geom.MultiPolygon{}
	default:
		return &geom.GeometryCollection{}
	}
}

func decodeBody(r *bufio.Reader, hdr header, accum *accumulator) (geom.Geometry, error) {
	switch hdr.kind {
	case geom.KindPoint:
		p, err := decodePoint(r, hdr, accum)
		if err != nil {
			return nil, err
		}
		return &p, nil

	case geom.KindLineString:
		points, err := decodePoints(r, hdr, accum)
		if err != nil {
			return nil, err
		}
		return &geom.LineString{Points: points}, nil

	case geom.KindPolygon:
		rings, err := decodeRings(r, hdr, accum)
		if err != nil {
			return nil, err
		}
		return &geom.Polygon{Rings: rings}, nil

	case geom.KindMultiPoint:
		n, err := readUvarint(r)
		if err != nil {
			return nil, geom.WrapReadError(err, "multipoint count")
		}
		points := make([]geom.Point, n)
		for i := range points {
			p, err := decodePoint(r, hdr, accum)
			if err != nil {
				return nil, err
			}
			points[i] = p
		}
		return &geom.MultiPoint{Points: points}, nil

	case geom.KindMultiLineString:
		n, err := readUvarint(r)
		if err != nil {
			return nil, geom.WrapReadError(err, "multilinestring count")
		}
		lines := make([]geom.LineString, n)
		for i := range lines {
			points, err := decodePoints(r, hdr, accum)
			if err != nil {
				return nil, err
			}
			lines[i] = geom.LineString{Points: points}
		}
		return &geom.MultiLineString{Lines: lines}, nil

	case geom.KindMultiPolygon:
		n, err := readUvarint(r)
		if err != nil {
			return nil, geom.WrapReadError(err, "multipolygon count")
		}
		polys := make([]geom.Polygon, n)
		for i := range polys {
			rings, err := decodeRings(r, hdr, accum)
			if err != nil {
				return nil, err
			}
			polys[i] = geom.Polygon{Rings: rings}
		}
		return &geom.MultiPolygon{Polygons: polys}, nil

	default:
		return nil, geom.WrapOtherError(geom.ErrUnsupportedGeometryCollection, "TWKB GeometryCollection")
	}
}

func decodePoint(r *bufio.Reader, hdr header, accum *accumulator) (geom.Point, error) {
	var vals [4]float64
	for _, slot := range hdr.dims {
		delta, err := readSvarint(r)
		if err != nil {
			return geom.Point{}, geom.WrapReadError(err, "coordinate delta")
		}
		accum[slot] += delta
		vals[slot] = float64(accum[slot]) / hdr.scale[slot]
	}

	p := geom.Point{X: vals[0], Y: vals[1]}
	for _, slot := range hdr.dims {
		switch slot {
		case 2:
			z := vals[2]
			p.Z = &z
		case 3:
			m := vals[3]
			p.M = &m
		}
	}
	return p, nil
}

func decodePoints(r *bufio.Reader, hdr header, accum *accumulator) ([]geom.Point, error) {
	n, err := readUvarint(r)
	if err != nil {
		return nil, geom.WrapReadError(err, "point count")
	}
	points := make([]geom.Point, n)
	for i := range points {
		p, err := decodePoint(r, hdr, accum)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func decodeRings(r *bufio.Reader, hdr header, accum *accumulator) ([][]geom.Point, error) {
	n, err := readUvarint(r)
	if err != nil {
		return nil, geom.WrapReadError(err, "ring count")
	}
	rings := make([][]geom.Point, n)
	for i := range rings {
		points, err := decodePoints(r, hdr, accum)
		if err != nil {
			return nil, err
		}
		rings[i] = points
	}
	return rings, nil
}
