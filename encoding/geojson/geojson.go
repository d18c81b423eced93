// Package geojson converts between the Geometry model and its GeoJSON
// wire form, with one non-standard deviation from RFC 7946: the "crs"
// member. On output it is always present, either the structured
// {"type":"name","properties":{"name":"EPSG:<srid>"}} object or the
// literal null. On input either that structured form or a bare integer
// SRID is accepted.
package geojson

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/restayway/geowkb/geom"
)

// Geometry is the GeoJSON wire representation of a geom.Geometry.
// Coordinates holds nested []interface{}/float64 values after
// unmarshaling, or the typed [][]...float64 slices built by From.
type Geometry struct {
	Type        string
	CRS         *int32
	Coordinates interface{}
}

type crsObject struct {
	Type       string `json:"type"`
	Properties struct {
		Name string `json:"name"`
	} `json:"properties"`
}

// MarshalJSON implements the module's crs convention: present. Either
// the structured name form, or explicit null.
func (g Geometry) MarshalJSON() ([]byte, error) {
	var crsRaw json.RawMessage
	if g.CRS != nil {
		obj := crsObject{Type: "name"}
		obj.Properties.Name = fmt.Sprintf("EPSG:%d", *g.CRS)
		b, err := json.Marshal(obj)
		if err != nil {
			return nil, geom.WrapWriteError(err, "crs")
		}
		crsRaw = b
	} else {
		crsRaw = json.RawMessage("null")
	}

	wire := struct {
		Type        string          `json:"type"`
		CRS         json.RawMessage `json:"crs"`
		Coordinates interface{}     `json:"coordinates"`
	}{Type: g.Type, CRS: crsRaw, Coordinates: g.Coordinates}

	return json.Marshal(wire)
}

// UnmarshalJSON accepts crs as either the structured name form or a bare
// integer SRID, in addition to null/absent.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var wire struct {
		Type        string          `json:"type"`
		CRS         json.RawMessage `json:"crs"`
		Coordinates interface{}     `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return geom.WrapReadError(err, "geojson geometry")
	}

	crs, err := parseCRS(wire.CRS)
	if err != nil {
		return err
	}

	g.Type = wire.Type
	g.CRS = crs
	g.Coordinates = wire.Coordinates
	return nil
}

func parseCRS(raw json.RawMessage) (*int32, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		v := int32(n)
		return &v, nil
	}

	var obj crsObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, geom.WrapReadError(err, "crs")
	}
	const prefix = "EPSG:"
	if !strings.HasPrefix(obj.Properties.Name, prefix) {
		return nil, geom.NewReadError(fmt.Sprintf("crs name %q missing %q prefix", obj.Properties.Name, prefix))
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(obj.Properties.Name, prefix), 10, 32)
	if err != nil {
		return nil, geom.WrapReadError(err, "crs srid")
	}
	v := int32(n)
	return &v, nil
}

// From converts g into its GeoJSON representation. GeometryCollection is
// unsupported and surfaces geom.ErrUnsupportedGeometryCollection.
func From(g geom.Geometry) (Geometry, error) {
	coords, err := coordinatesFrom(g)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Type: g.Kind().String(), CRS: g.Srid(), Coordinates: coords}, nil
}

func coordinatesFrom(g geom.Geometry) (interface{}, error) {
	switch v := g.(type) {
	case *geom.Point:
		return pointTuple(*v), nil

	case *geom.LineString:
		return tuplesFrom(v.Points), nil

	case *geom.Polygon:
		rings := make([][][]float64, len(v.Rings))
		for i, r := range v.Rings {
			rings[i] = tuplesFrom(r)
		}
		return rings, nil

	case *geom.MultiPoint:
		return tuplesFrom(v.Points), nil

	case *geom.MultiLineString:
		lines := make([][][]float64, len(v.Lines))
		for i, l := range v.Lines {
			lines[i] = tuplesFrom(l.Points)
		}
		return lines, nil

	case *geom.MultiPolygon:
		polys := make([][][][]float64, len(v.Polygons))
		for i, p := range v.Polygons {
			rings := make([][][]float64, len(p.Rings))
			for j, r := range p.Rings {
				rings[j] = tuplesFrom(r)
			}
			polys[i] = rings
		}
		return polys, nil

	default:
		return nil, geom.WrapOtherError(geom.ErrUnsupportedGeometryCollection, "GeoJSON GeometryCollection")
	}
}

func pointTuple(p geom.Point) []float64 {
	vals := []float64{p.X, p.Y}
	if p.Z != nil {
		vals = append(vals, *p.Z)
	}
	if p.M != nil {
		vals = append(vals, *p.M)
	}
	return vals
}

func tuplesFrom(points []geom.Point) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = pointTuple(p)
	}
	return out
}

// Into converts gj back into a Geometry. Each leaf tuple's dimensionality
// is taken from that tuple's own length: 3 is always treated as Z, never
// M — an M-only geometry cannot be produced through this path (spec.md
// §4.3). Tuples of differing lengths within one geometry are neither
// rejected nor normalized to the first tuple's length.
func Into(gj Geometry) (geom.Geometry, error) {
	switch gj.Type {
	case "Point":
		p, err := decodeTuple(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		p.SRID = gj.CRS
		return &p, nil

	case "LineString":
		points, err := decodeTupleArray(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		return &geom.LineString{Points: points, SRID: gj.CRS}, nil

	case "Polygon":
		rings, err := decodeTupleArrayArray(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		return &geom.Polygon{Rings: rings, SRID: gj.CRS}, nil

	case "MultiPoint":
		points, err := decodeTupleArray(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		return &geom.MultiPoint{Points: points, SRID: gj.CRS}, nil

	case "MultiLineString":
		pointSets, err := decodeTupleArrayArray(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		lines := make([]geom.LineString, len(pointSets))
		for i, points := range pointSets {
			lines[i] = geom.LineString{Points: points}
		}
		return &geom.MultiLineString{Lines: lines, SRID: gj.CRS}, nil

	case "MultiPolygon":
		ringSets, err := decodeTupleArrayArrayArray(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		polys := make([]geom.Polygon, len(ringSets))
		for i, rings := range ringSets {
			polys[i] = geom.Polygon{Rings: rings}
		}
		return &geom.MultiPolygon{Polygons: polys, SRID: gj.CRS}, nil

	case "GeometryCollection":
		return nil, geom.WrapOtherError(geom.ErrUnsupportedGeometryCollection, "GeoJSON GeometryCollection")

	default:
		return nil, geom.NewReadError(fmt.Sprintf("unknown geometry type %q", gj.Type))
	}
}

// asInterfaceSlice normalizes the two shapes Coordinates can arrive in:
// []interface{} from json.Unmarshal, or the concretely-typed
// []float64/[][]float64/[][][]float64/[][][][]float64 that From builds
// directly without a JSON round trip.
func asInterfaceSlice(v interface{}) ([]interface{}, bool) {
	switch t := v.(type) {
	case []interface{}:
		return t, true
	case []float64:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out, true
	case [][]float64:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out, true
	case [][][]float64:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out, true
	case [][][][]float64:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

func decodeTuple(v interface{}) (geom.Point, error) {
	arr, ok := asInterfaceSlice(v)
	if !ok {
		return geom.Point{}, geom.NewReadError("expected a coordinate tuple")
	}
	if len(arr) < 2 {
		return geom.Point{}, geom.NewReadError("coordinate tuple too short")
	}
	vals := make([]float64, len(arr))
	for i, e := range arr {
		f, ok := e.(float64)
		if !ok {
			return geom.Point{}, geom.NewReadError("expected a numeric coordinate")
		}
		vals[i] = f
	}

	p := geom.Point{X: vals[0], Y: vals[1]}
	if len(vals) >= 3 {
		z := vals[2]
		p.Z = &z
	}
	if len(vals) >= 4 {
		m := vals[3]
		p.M = &m
	}
	return p, nil
}

func decodeTupleArray(v interface{}) ([]geom.Point, error) {
	arr, ok := asInterfaceSlice(v)
	if !ok {
		return nil, geom.NewReadError("expected an array of coordinate tuples")
	}
	points := make([]geom.Point, len(arr))
	for i, e := range arr {
		p, err := decodeTuple(e)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func decodeTupleArrayArray(v interface{}) ([][]geom.Point, error) {
	arr, ok := asInterfaceSlice(v)
	if !ok {
		return nil, geom.NewReadError("expected an array of coordinate arrays")
	}
	rings := make([][]geom.Point, len(arr))
	for i, e := range arr {
		ring, err := decodeTupleArray(e)
		if err != nil {
			return nil, err
		}
		rings[i] = ring
	}
	return rings, nil
}

func decodeTupleArrayArrayArray(v interface{}) ([][][]geom.Point, error) {
	arr, ok := asInterfaceSlice(v)
	if !ok {
		return nil, geom.NewReadError("expected an array of polygons")
	}
	polys := make([][][]geom.Point, len(arr))
	for i, e := range arr {
		rings, err := decodeTupleArrayArray(e)
		if err != nil {
			return nil, err
		}
		polys[i] = rings
	}
	return polys, nil
}
