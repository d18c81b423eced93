package geom

// GeometryCollection is recognized at the type-code/header level by the
// EWKB and TWKB readers, but is never populated: encoding and decoding a
// concrete GeometryCollection value is out of scope (spec Non-goals). The
// type exists so Kind() and the wire-level probes can report it by name
// without readers exposing a raw, unchecked parse path for it.
type GeometryCollection struct {
	SRID *int32
}

var _ Geometry = (*GeometryCollection)(nil)

func (gc *GeometryCollection) Kind() Kind   { return KindGeometryCollection }
func (gc *GeometryCollection) Srid() *int32 { return gc.SRID }
