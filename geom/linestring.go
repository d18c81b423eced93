package geom

// LineString is an ordered sequence of Points. No closure is implied or
// enforced.
type LineString struct {
	Points []Point
	SRID   *int32
}

var _ Geometry = (*LineString)(nil)

func (ls *LineString) Kind() Kind   { return KindLineString }
func (ls *LineString) Srid() *int32 { return ls.SRID }
