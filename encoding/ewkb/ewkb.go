// Package ewkb implements the EWKB (Extended Well-Known Binary) reader and
// writer: PostGIS's on-the-wire geometry encoding, with an optional SRID and
// Z/M flags carried in the high bits of the type-code word.
//
// Reads accept either byte-order marker (0x00 big-endian, 0x01
// little-endian); writes always emit canonical little-endian, matching
// PostGIS's own convention. GeometryCollection is recognized at the
// type-code level but never decoded or encoded into a concrete value — see
// geom.ErrUnsupportedGeometryCollection.
package ewkb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/restayway/geowkb/geom"
	"github.com/restayway/geowkb/internal/wkbcommon"
)

// Read decodes a single EWKB-encoded geometry from data.
func Read(data []byte) (geom.Geometry, error) {
	g, err := readGeometry(bytes.NewReader(data), true)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Probe inspects the leading byte-order marker and type-code word of data
// and reports the base geometry kind without otherwise parsing the input.
// It never advances a caller-held cursor: it always operates on the bytes
// it is given from offset zero.
func Probe(data []byte) (geom.Kind, error) {
	r := bytes.NewReader(data)
	order, err := wkbcommon.ByteOrder(r)
	if err != nil {
		return 0, geom.WrapReadError(err, "byte order")
	}
	code, err := wkbcommon.ReadUint32(r, order)
	if err != nil {
		return 0, geom.WrapReadError(err, "type code")
	}
	kindNum, _, _, _ := wkbcommon.SplitTypeCode(code)
	kind := geom.Kind(kindNum)
	if !kind.Valid() {
		return 0, geom.NewReadError(fmt.Sprintf("unknown base geometry code %d", kindNum))
	}
	return kind, nil
}

// Write encodes g as canonical little-endian EWKB to w. If srid is
// non-nil it replaces whatever SRID g itself carries; otherwise g.Srid() is
// used. Nested geometries never carry SRID on the wire regardless of what
// their own Srid() method would report, per the EWKB permissive-read /
// strict-write asymmetry documented in spec.md's Design Notes.
func Write(w io.Writer, g geom.Geometry, srid *int32) error {
	effective := srid
	if effective == nil {
		effective = g.Srid()
	}
	return writeGeometry(w, g, effective, true)
}

func readGeometry(r io.Reader, isTop bool) (geom.Geometry, error) {
	order, err := wkbcommon.ByteOrder(r)
	if err != nil {
		return nil, geom.WrapReadError(err, "byte order")
	}

	code, err := wkbcommon.ReadUint32(r, order)
	if err != nil {
		return nil, geom.WrapReadError(err, "type code")
	}
	kindNum, hasZ, hasM, hasSRID := wkbcommon.SplitTypeCode(code)
	kind := geom.Kind(kindNum)
	if !kind.Valid() {
		return nil, geom.NewReadError(fmt.Sprintf("unknown base geometry code %d", kindNum))
	}

	// A child's SRID flag is permitted but its value is discarded: only the
	// outermost SRID is meaningful (spec.md §4.1).
	var srid *int32
	if hasSRID {
		s, err := wkbcommon.ReadInt32(r, order)
		if err != nil {
			return nil, geom.WrapReadError(err, "srid")
		}
		if isTop {
			srid = &s
		}
	}

	if kind == geom.KindGeometryCollection {
		return nil, geom.WrapOtherError(geom.ErrUnsupportedGeometryCollection, "EWKB GeometryCollection")
	}

	dim := geom.DimOf(hasZ, hasM)

	switch kind {
	case geom.KindPoint:
		p, err := readPointPayload(r, order, dim)
		if err != nil {
			return nil, err
		}
		p.SRID = srid
		return &p, nil

	case geom.KindLineString:
		points, err := readPointTuples(r, order, dim)
		if err != nil {
			return nil, err
		}
		return &geom.LineString{Points: points, SRID: srid}, nil

	case geom.KindPolygon:
		rings, err := readRings(r, order, dim)
		if err != nil {
			return nil, err
		}
		return &geom.Polygon{Rings: rings, SRID: srid}, nil

	case geom.KindMultiPoint:
		n, err := readCount(r, order)
		if err != nil {
			return nil, err
		}
		points := make([]geom.Point, n)
		for i := range points {
			child, err := readGeometry(r, false)
			if err != nil {
				return nil, err
			}
			pt, ok := child.(*geom.Point)
			if !ok {
				return nil, geom.NewReadError("MultiPoint child is not a Point")
			}
			points[i] = *pt
		}
		return &geom.MultiPoint{Points: points, SRID: srid}, nil

	case geom.KindMultiLineString:
		n, err := readCount(r, order)
		if err != nil {
			return nil, err
		}
		lines := make([]geom.LineString, n)
		for i := range lines {
			child, err := readGeometry(r, false)
			if err != nil {
				return nil, err
			}
			ls, ok := child.(*geom.LineString)
			if !ok {
				return nil, geom.NewReadError("MultiLineString child is not a LineString")
			}
			lines[i] = *ls
		}
		return &geom.MultiLineString{Lines: lines, SRID: srid}, nil

	case geom.KindMultiPolygon:
		n, err := readCount(r, order)
		if err != nil {
			return nil, err
		}
		polys := make([]geom.Polygon, n)
		for i := range polys {
			child, err := readGeometry(r, false)
			if err != nil {
				return nil, err
			}
			poly, ok := child.(*geom.Polygon)
			if !ok {
				return nil, geom.NewReadError("MultiPolygon child is not a Polygon")
			}
			polys[i] = *poly
		}
		return &geom.MultiPolygon{Polygons: polys, SRID: srid}, nil

	default:
		return nil, geom.NewReadError(fmt.Sprintf("unknown base geometry code %d", kindNum))
	}
}

func readCount(r io.Reader, order binary.ByteOrder) (uint32, error) {
	n, err := wkbcommon.ReadUint32(r, order)
	if err != nil {
		return 0, geom.WrapReadError(err, "element count")
	}
	return n, nil
}

func readPointPayload(r io.Reader, order binary.ByteOrder, dim geom.Dim) (geom.Point, error) {
	vals, err := wkbcommon.ReadFloat64s(r, order, dim.Stride())
	if err != nil {
		return geom.Point{}, geom.WrapReadError(err, "point coordinates")
	}
	p := geom.Point{X: vals[0], Y: vals[1]}
	idx := 2
	if dim.HasZ() {
		z := vals[idx]
		p.Z = &z
		idx++
	}
	if dim.HasM() {
		m := vals[idx]
		p.M = &m
	}
	return p, nil
}

func readPointTuples(r io.Reader, order binary.ByteOrder, dim geom.Dim) ([]geom.Point, error) {
	n, err := readCount(r, order)
	if err != nil {
		return nil, err
	}
	points := make([]geom.Point, n)
	for i := range points {
		p, err := readPointPayload(r, order, dim)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func readRings(r io.Reader, order binary.ByteOrder, dim geom.Dim) ([][]geom.Point, error) {
	n, err := readCount(r, order)
	if err != nil {
		return nil, err
	}
	rings := make([][]geom.Point, n)
	for i := range rings {
		points, err := readPointTuples(r, order, dim)
		if err != nil {
			return nil, err
		}
		rings[i] = points
	}
	return rings, nil
}

func writeGeometry(w io.Writer, g geom.Geometry, srid *int32, isTop bool) error {
	if g.Kind() == geom.KindGeometryCollection {
		return geom.WrapOtherError(geom.ErrUnsupportedGeometryCollection, "EWKB GeometryCollection")
	}

	dim := geom.XY
	if pt, ok := geom.FirstPoint(g); ok {
		dim = pt.Dim()
	}

	hasSRID := isTop && srid != nil
	code := wkbcommon.TypeCode(uint32(g.Kind()), dim.HasZ(), dim.HasM(), hasSRID)

	if err := wkbcommon.WriteByte(w, wkbcommon.NDRID); err != nil {
		return geom.WrapWriteError(err, "byte order")
	}
	if err := wkbcommon.WriteUint32(w, wkbcommon.NDR, code); err != nil {
		return geom.WrapWriteError(err, "type code")
	}
	if hasSRID {
		if err := wkbcommon.WriteInt32(w, wkbcommon.NDR, *srid); err != nil {
			return geom.WrapWriteError(err, "srid")
		}
	}

	switch v := g.(type) {
	case *geom.Point:
		return writePointPayload(w, *v, dim)

	case *geom.LineString:
		return writePointTuples(w, v.Points, dim)

	case *geom.Polygon:
		if err := wkbcommon.WriteUint32(w, wkbcommon.NDR, uint32(len(v.Rings))); err != nil {
			return geom.WrapWriteError(err, "ring count")
		}
		for _, ring := range v.Rings {
			if err := writePointTuples(w, ring, dim); err != nil {
				return err
			}
		}
		return nil

	case *geom.MultiPoint:
		if err := wkbcommon.WriteUint32(w, wkbcommon.NDR, uint32(len(v.Points))); err != nil {
			return geom.WrapWriteError(err, "point count")
		}
		for i := range v.Points {
			if err := writeGeometry(w, &v.Points[i], nil, false); err != nil {
				return err
			}
		}
		return nil

	case *geom.MultiLineString:
		if err := wkbcommon.WriteUint32(w, wkbcommon.NDR, uint32(len(v.Lines))); err != nil {
			return geom.WrapWriteError(err, "line count")
		}
		for i := range v.Lines {
			if err := writeGeometry(w, &v.Lines[i], nil, false); err != nil {
				return err
			}
		}
		return nil

	case *geom.MultiPolygon:
		if err := wkbcommon.WriteUint32(w, wkbcommon.NDR, uint32(len(v.Polygons))); err != nil {
			return geom.WrapWriteError(err, "polygon count")
		}
		for i := range v.Polygons {
			if err := writeGeometry(w, &v.Polygons[i], nil, false); err != nil {
				return err
			}
		}
		return nil

	default:
		return geom.NewWriteError(fmt.Sprintf("unsupported geometry implementation %T", g))
	}
}

func writePointPayload(w io.Writer, p geom.Point, dim geom.Dim) error {
	vals := make([]float64, 0, dim.Stride())
	vals = append(vals, p.X, p.Y)
	if dim.HasZ() {
		if p.Z == nil {
			return geom.NewWriteError("point missing Z for a Z-dimensioned geometry")
		}
		vals = append(vals, *p.Z)
	}
	if dim.HasM() {
		if p.M == nil {
			return geom.NewWriteError("point missing M for an M-dimensioned geometry")
		}
		vals = append(vals, *p.M)
	}
	if err := wkbcommon.WriteFloat64s(w, wkbcommon.NDR, vals); err != nil {
		return geom.WrapWriteError(err, "point coordinates")
	}
	return nil
}

func writePointTuples(w io.Writer, points []geom.Point, dim geom.Dim) error {
	if err := wkbcommon.WriteUint32(w, wkbcommon.NDR, uint32(len(points))); err != nil {
		return geom.WrapWriteError(err, "point count")
	}
	for _, p := range points {
		if err := writePointPayload(w, p, dim); err != nil {
			return err
		}
	}
	return nil
}
