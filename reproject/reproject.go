// Package reproject exposes the geometry's leaf (x, y) coordinates as a
// flat, mutable view, so an external coordinate-transform collaborator can
// rewrite them in place without this module ever linking against a
// projection library itself. z and m are left untouched.
package reproject

import (
	"github.com/restayway/geowkb/geom"
)

// Leaf is a mutable borrow of one leaf (x, y) coordinate pair.
type Leaf struct {
	X, Y *float64
}

// Transformer converts one coordinate pair to another, e.g. between
// spatial reference systems. Implementations are supplied by the caller;
// this package never constructs one itself.
type Transformer interface {
	Convert(x, y float64) (float64, float64, error)
}

// Leaves walks g and returns a Leaf for every point it contains, in
// document order. The returned Leaves alias g's own storage: mutating
// through them mutates g directly, and g must not be read or written
// concurrently with that mutation (spec.md §5).
func Leaves(g geom.Geometry) []Leaf {
	var leaves []Leaf
	collectLeaves(g, &leaves)
	return leaves
}

func collectLeaves(g geom.Geometry, out *[]Leaf) {
	switch v := g.(type) {
	case *geom.Point:
		*out = append(*out, leafOf(v))

	case *geom.LineString:
		appendPoints(out, v.Points)

	case *geom.Polygon:
		for i := range v.Rings {
			appendPoints(out, v.Rings[i])
		}

	case *geom.MultiPoint:
		appendPoints(out, v.Points)

	case *geom.MultiLineString:
		for i := range v.Lines {
			appendPoints(out, v.Lines[i].Points)
		}

	case *geom.MultiPolygon:
		for i := range v.Polygons {
			for j := range v.Polygons[i].Rings {
				appendPoints(out, v.Polygons[i].Rings[j])
			}
		}
	}
}

func appendPoints(out *[]Leaf, points []geom.Point) {
	for i := range points {
		*out = append(*out, leafOf(&points[i]))
	}
}

func leafOf(p *geom.Point) Leaf {
	return Leaf{X: &p.X, Y: &p.Y}
}

// Apply walks g, invoking t once per leaf coordinate pair and writing the
// result back in place. It stops and returns an OtherError at the first
// transform failure, embedding the collaborator's message (spec.md §4.4).
func Apply(g geom.Geometry, t Transformer) error {
	for _, leaf := range Leaves(g) {
		x, y, err := t.Convert(*leaf.X, *leaf.Y)
		if err != nil {
			return geom.WrapOtherError(err, "reprojection failed")
		}
		*leaf.X = x
		*leaf.Y = y
	}
	return nil
}
