package geom

// MultiLineString is an ordered sequence of LineStrings.
type MultiLineString struct {
	Lines []LineString
	SRID  *int32
}

var _ Geometry = (*MultiLineString)(nil)

func (mls *MultiLineString) Kind() Kind   { return KindMultiLineString }
func (mls *MultiLineString) Srid() *int32 { return mls.SRID }
