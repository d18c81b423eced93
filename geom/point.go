package geom

// Point is the atomic geometry value. Z and M are nil when absent; their
// presence, not their value, determines the point's Dim.
type Point struct {
	X, Y float64
	Z    *float64
	M    *float64
	SRID *int32
}

var _ Geometry = (*Point)(nil)

// Dim reports this point's dimensionality from Z/M presence.
func (p Point) Dim() Dim { return DimOf(p.Z != nil, p.M != nil) }

// Kind returns KindPoint.
func (p *Point) Kind() Kind { return KindPoint }

// Srid returns the point's SRID, or nil if absent.
func (p *Point) Srid() *int32 { return p.SRID }

// WithZ returns p with Z set to z.
func (p Point) WithZ(z float64) Point { p.Z = &z; return p }

// WithM returns p with M set to m.
func (p Point) WithM(m float64) Point { p.M = &m; return p }

// Equal reports whether p and o have identical X, Y and Z/M presence and
// value. Used by round-trip tests; not exported as a general geometric
// equality predicate (spec.md explicitly excludes geometric validation).
func (p Point) Equal(o Point) bool {
	if p.X != o.X || p.Y != o.Y {
		return false
	}
	if (p.Z == nil) != (o.Z == nil) || (p.Z != nil && *p.Z != *o.Z) {
		return false
	}
	if (p.M == nil) != (o.M == nil) || (p.M != nil && *p.M != *o.M) {
		return false
	}
	return true
}
