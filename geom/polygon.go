package geom

// Polygon is an ordered sequence of rings. Rings[0] is the outer boundary;
// any further rings are holes. No closure is implied or enforced on any
// ring.
type Polygon struct {
	Rings [][]Point
	SRID  *int32
}

var _ Geometry = (*Polygon)(nil)

func (p *Polygon) Kind() Kind   { return KindPolygon }
func (p *Polygon) Srid() *int32 { return p.SRID }
