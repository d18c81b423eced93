package geom

import "fmt"

// Kind identifies one of the seven geometry classes. Values match the base
// geometry codes used on the wire by both EWKB (low 16 bits of the type-code
// word) and TWKB (low nibble of the first header byte).
type Kind uint8

const (
	KindPoint Kind = 1 + iota
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
)

// String returns the kind's canonical name, matching the GeoJSON "type"
// value and the WKT keyword for that kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindGeometryCollection:
		return "GeometryCollection"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the seven recognized base codes.
func (k Kind) Valid() bool {
	return k >= KindPoint && k <= KindGeometryCollection
}
