package geom

// MultiPoint is an ordered sequence of Points, each encoded on the wire as
// a full sub-geometry rather than a bare coordinate tuple.
type MultiPoint struct {
	Points []Point
	SRID   *int32
}

var _ Geometry = (*MultiPoint)(nil)

func (mp *MultiPoint) Kind() Kind   { return KindMultiPoint }
func (mp *MultiPoint) Srid() *int32 { return mp.SRID }
