package geowkb

import (
	"bytes"

	"github.com/restayway/geowkb/encoding/ewkb"
	"github.com/restayway/geowkb/encoding/geojson"
	"github.com/restayway/geowkb/encoding/twkb"
	"github.com/restayway/geowkb/geom"
)

// EWKBRead decodes a single EWKB-encoded geometry.
func EWKBRead(data []byte) (geom.Geometry, error) {
	return ewkb.Read(data)
}

// EWKBWrite encodes g as EWKB. If srid is non-nil it overrides whatever
// SRID g itself carries.
func EWKBWrite(g geom.Geometry, srid *int32) ([]byte, error) {
	var buf bytes.Buffer
	if err := ewkb.Write(&buf, g, srid); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ProbeEWKBKind inspects the leading bytes of an EWKB value and reports
// its base geometry kind without fully parsing it.
func ProbeEWKBKind(data []byte) (geom.Kind, error) {
	return ewkb.Probe(data)
}

// TWKBRead decodes a single TWKB-encoded geometry.
func TWKBRead(data []byte) (geom.Geometry, error) {
	return twkb.Read(data)
}

// ProbeTWKBKind reports the base geometry kind named by a TWKB header byte.
func ProbeTWKBKind(headerByte byte) (geom.Kind, error) {
	return twkb.ProbeKind(headerByte)
}

// TWKBToEWKB decodes TWKB data and immediately re-encodes it as EWKB.
// There is no independent EWKB writer path for TWKB-sourced values; this
// bridge is the only way to get one.
func TWKBToEWKB(data []byte) ([]byte, error) {
	g, err := twkb.Read(data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ewkb.Write(&buf, g, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GeoJSONFrom converts g to its GeoJSON representation.
func GeoJSONFrom(g geom.Geometry) (geojson.Geometry, error) {
	return geojson.From(g)
}

// GeoJSONInto converts a GeoJSON geometry back to the Geometry model.
func GeoJSONInto(gj geojson.Geometry) (geom.Geometry, error) {
	return geojson.Into(gj)
}
