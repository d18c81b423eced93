package geom

// MultiPolygon is an ordered sequence of Polygons.
type MultiPolygon struct {
	Polygons []Polygon
	SRID     *int32
}

var _ Geometry = (*MultiPolygon)(nil)

func (mp *MultiPolygon) Kind() Kind   { return KindMultiPolygon }
func (mp *MultiPolygon) Srid() *int32 { return mp.SRID }
