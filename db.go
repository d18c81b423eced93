package geowkb

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"

	"github.com/restayway/geowkb/geom"
)

// DBGeometry adapts a geom.Geometry to database/sql, the way the teacher's
// Point/LineString/Polygon types did for GORM, but as a thin wrapper over
// EWKBRead/EWKBWrite rather than baking wire parsing into the geometry
// types themselves. The wire form is hex-encoded EWKB, matching how
// PostGIS geometry columns surface through database/sql drivers.
type DBGeometry struct {
	Geometry geom.Geometry
	// SRID, if set, overrides Geometry's own SRID when writing.
	SRID *int32
}

// Scan implements sql.Scanner.
func (d *DBGeometry) Scan(val any) error {
	if val == nil {
		d.Geometry = nil
		return nil
	}

	var hexStr string
	switch v := val.(type) {
	case []byte:
		hexStr = string(v)
	case string:
		hexStr = v
	default:
		return geom.NewReadError(fmt.Sprintf("unsupported scan source type %T", val))
	}

	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return geom.WrapReadError(err, "db geometry is not hex-encoded")
	}

	g, err := EWKBRead(raw)
	if err != nil {
		return err
	}
	d.Geometry = g
	return nil
}

// Value implements driver.Valuer.
func (d DBGeometry) Value() (driver.Value, error) {
	if d.Geometry == nil {
		return nil, nil
	}
	b, err := EWKBWrite(d.Geometry, d.SRID)
	if err != nil {
		return nil, err
	}
	return hex.EncodeToString(b), nil
}
