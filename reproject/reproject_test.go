package reproject_test

import (
	"errors"
	"testing"

	"github.com/restayway/geowkb/geom"
	"github.com/restayway/geowkb/reproject"
)

type translateTransformer struct {
	dx, dy float64
}

func (t translateTransformer) Convert(x, y float64) (float64, float64, error) {
	return x + t.dx, y + t.dy, nil
}

type failingTransformer struct{}

func (failingTransformer) Convert(x, y float64) (float64, float64, error) {
	return 0, 0, errors.New("no known conversion")
}

func TestApplyPoint(t *testing.T) {
	z := 4.0
	p := &geom.Point{X: 1, Y: 2, Z: &z}

	if err := reproject.Apply(p, translateTransformer{dx: 10, dy: 20}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.X != 11 || p.Y != 22 {
		t.Errorf("X,Y = %v,%v; want 11,22", p.X, p.Y)
	}
	if *p.Z != 4.0 {
		t.Errorf("Z = %v; want unchanged 4.0", *p.Z)
	}
}

func TestApplyLineString(t *testing.T) {
	ls := &geom.LineString{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}}

	if err := reproject.Apply(ls, translateTransformer{dx: 1, dy: 1}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	for i, p := range ls.Points {
		if !p.Equal(want[i]) {
			t.Errorf("point %d = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestApplyMultiPolygonMutatesInPlace(t *testing.T) {
	mp := &geom.MultiPolygon{
		Polygons: []geom.Polygon{
			{Rings: [][]geom.Point{{{X: 0, Y: 0}, {X: 1, Y: 0}}}},
			{Rings: [][]geom.Point{{{X: 5, Y: 5}}}},
		},
	}

	leaves := reproject.Leaves(mp)
	if len(leaves) != 3 {
		t.Fatalf("len(Leaves) = %d, want 3", len(leaves))
	}

	if err := reproject.Apply(mp, translateTransformer{dx: 100, dy: 100}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if mp.Polygons[0].Rings[0][0].X != 100 || mp.Polygons[0].Rings[0][1].X != 101 {
		t.Errorf("ring 0 not mutated in place: %+v", mp.Polygons[0].Rings[0])
	}
	if mp.Polygons[1].Rings[0][0].X != 105 {
		t.Errorf("polygon 1 not mutated in place: %+v", mp.Polygons[1].Rings[0])
	}
}

func TestApplyTransformerFailureWrapsOtherError(t *testing.T) {
	p := &geom.Point{X: 1, Y: 2}
	err := reproject.Apply(p, failingTransformer{})
	if err == nil {
		t.Fatal("expected error")
	}
	var otherErr *geom.OtherError
	if !errors.As(err, &otherErr) {
		t.Errorf("error = %v (%T), want geom.OtherError", err, err)
	}
}

func TestLeavesOrderMatchesDocumentOrder(t *testing.T) {
	mls := &geom.MultiLineString{
		Lines: []geom.LineString{
			{Points: []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
			{Points: []geom.Point{{X: 3, Y: 3}}},
		},
	}

	leaves := reproject.Leaves(mls)
	if len(leaves) != 3 {
		t.Fatalf("len(Leaves) = %d, want 3", len(leaves))
	}
	if *leaves[0].X != 1 || *leaves[1].X != 2 || *leaves[2].X != 3 {
		t.Errorf("leaf order wrong: %v, %v, %v", *leaves[0].X, *leaves[1].X, *leaves[2].X)
	}
}
