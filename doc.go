// Package geowkb converts geometry values between EWKB, TWKB, and GeoJSON.
//
// # Supported formats
//
//   - EWKB: PostGIS's on-the-wire binary encoding. Read and write.
//   - TWKB: the compact, delta-coded binary encoding. Read only; there is
//     no TWKB writer, so round-tripping a TWKB-sourced value goes out
//     through TWKBToEWKB.
//   - GeoJSON: via encoding/geojson's Geometry type, with a non-standard
//     "crs" convention documented on that package.
//
// # Geometry model
//
// Every reader returns, and every writer accepts, a geom.Geometry: one of
// seven concrete kinds (Point, LineString, Polygon, MultiPoint,
// MultiLineString, MultiPolygon, GeometryCollection), the last of which is
// recognized at the wire-format level but never decoded or encoded into a
// concrete value — operations on it return geom.ErrUnsupportedGeometryCollection
// wrapped in a geom.OtherError.
//
// # Database integration
//
// DBGeometry adapts any geom.Geometry to database/sql's Scanner and
// driver.Valuer interfaces, delegating entirely to EWKBRead/EWKBWrite.
package geowkb
