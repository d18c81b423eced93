// Package geom provides the in-memory geometry value model shared by the
// EWKB, TWKB and GeoJSON codecs in github.com/restayway/geowkb.
//
// # Geometry kinds
//
// Seven geometry kinds are recognized: Point, LineString, Polygon,
// MultiPoint, MultiLineString, MultiPolygon and GeometryCollection.
// GeometryCollection is recognized at the type-code level by the encoders
// but is never constructed or decoded — see the package-level
// ErrUnsupportedGeometryCollection documentation on OtherError.
//
// # Dimensionality
//
// Every Point carries X and Y, and optionally Z and/or M. A geometry's
// dimensionality is a property of the whole geometry: every Point within
// one LineString, Polygon ring, or Multi-* member is expected to share the
// same combination of Z/M presence. Readers enforce this by construction
// (they pick one point decoder per geometry from the wire flags and apply
// it uniformly); writers trust it and derive their own flags from the first
// point they see.
//
// # SRID
//
// SRID is carried only on the outermost geometry of a value. Nested
// geometries (Multi-* members, Polygon rings) never carry an independent
// SRID; the outer SRID, if any, applies to the whole value.
package geom
