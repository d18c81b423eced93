package twkb_test

import (
	"encoding/hex"
	"testing"

	"github.com/restayway/geowkb/encoding/twkb"
	"github.com/restayway/geowkb/geom"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad test hex: %v", err)
	}
	return b
}

// S3 from spec.md §8: a TWKB point with extended Z precision.
func TestReadPointXYZ(t *testing.T) {
	data := mustDecodeHex(t, "410809d00fa01fe807")

	g, err := twkb.Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	p, ok := g.(*geom.Point)
	if !ok {
		t.Fatalf("got %T, want *geom.Point", g)
	}
	if p.X != 10.0 || p.Y != 20.0 {
		t.Errorf("X,Y = %v,%v; want 10,20", p.X, p.Y)
	}
	if p.Z == nil || *p.Z != 5.0 {
		t.Errorf("Z = %v; want 5.0", p.Z)
	}
	if p.M != nil {
		t.Errorf("M = %v; want nil", p.M)
	}
}

// S4: a TWKB LineString, three points, each a delta from the last.
func TestReadLineStringXYZ(t *testing.T) {
	data := mustDecodeHex(t, "42080903d00fa01f00e807e807e807e807e807e807")

	g, err := twkb.Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	ls, ok := g.(*geom.LineString)
	if !ok {
		t.Fatalf("got %T, want *geom.LineString", g)
	}
	if len(ls.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(ls.Points))
	}

	want := [][3]float64{{10, 20, 0}, {15, 25, 5}, {20, 30, 10}}
	for i, p := range ls.Points {
		if p.X != want[i][0] || p.Y != want[i][1] {
			t.Errorf("point %d X,Y = %v,%v; want %v,%v", i, p.X, p.Y, want[i][0], want[i][1])
		}
		if p.Z == nil || *p.Z != want[i][2] {
			t.Errorf("point %d Z = %v; want %v", i, p.Z, want[i][2])
		}
	}
}

// S5: a TWKB MultiPolygon with one ring, extended Z precision that
// happens to be all zero in this fixture. Re-emitting the same fixture as
// EWKB is covered by TestTWKBToEWKBMultiPolygon in the root package.
func TestReadMultiPolygon(t *testing.T) {
	data := mustDecodeHex(t, "660801010104c8d0f58f02f0c9e4f53100d11ec94a00c14bf81300946ad23600")

	g, err := twkb.Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	mp, ok := g.(*geom.MultiPolygon)
	if !ok {
		t.Fatalf("got %T, want *geom.MultiPolygon", g)
	}
	if len(mp.Polygons) != 1 || len(mp.Polygons[0].Rings) != 1 {
		t.Fatalf("shape mismatch: %+v", mp)
	}

	ring := mp.Polygons[0].Rings[0]
	want := [][2]float64{
		{285127.716, 6700175.992},
		{285125.755, 6700171.219},
		{285120.922, 6700172.495},
		{285127.716, 6700175.992},
	}
	if len(ring) != len(want) {
		t.Fatalf("len(ring) = %d, want %d", len(ring), len(want))
	}
	for i, p := range ring {
		if diff := p.X - want[i][0]; diff > 1e-3 || diff < -1e-3 {
			t.Errorf("point %d X = %v, want %v", i, p.X, want[i][0])
		}
		if diff := p.Y - want[i][1]; diff > 1e-3 || diff < -1e-3 {
			t.Errorf("point %d Y = %v, want %v", i, p.Y, want[i][1])
		}
	}
}

func TestReadEmptyPoint(t *testing.T) {
	data := mustDecodeHex(t, "0110")

	g, err := twkb.Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	p, ok := g.(*geom.Point)
	if !ok {
		t.Fatalf("got %T, want *geom.Point", g)
	}
	if p.X != 0 || p.Y != 0 || p.Z != nil || p.M != nil {
		t.Errorf("empty point = %+v, want zero value", p)
	}
}

func TestReadEmptyMultiLineString(t *testing.T) {
	// kind 5 (MultiLineString), empty flag set, no payload beyond the header.
	data := mustDecodeHex(t, "0510")

	g, err := twkb.Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	mls, ok := g.(*geom.MultiLineString)
	if !ok {
		t.Fatalf("got %T, want *geom.MultiLineString", g)
	}
	if len(mls.Lines) != 0 {
		t.Errorf("len(Lines) = %d, want 0", len(mls.Lines))
	}
}

// Boundary behavior from spec.md §8: the delta accumulator for a Multi-*
// geometry is shared across children, not reset between them. This builds
// a MultiLineString whose second line's first absolute coordinate equals
// the first line's last coordinate plus a further (5,5) delta.
func TestMultiLineStringSharesAccumulator(t *testing.T) {
	data := mustDecodeHex(t, "0500020200001414020a0a0a0a")

	g, err := twkb.Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	mls, ok := g.(*geom.MultiLineString)
	if !ok {
		t.Fatalf("got %T, want *geom.MultiLineString", g)
	}
	if len(mls.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(mls.Lines))
	}

	line1Last := mls.Lines[0].Points[len(mls.Lines[0].Points)-1]
	line2First := mls.Lines[1].Points[0]
	if line2First.X != line1Last.X+5 || line2First.Y != line1Last.Y+5 {
		t.Errorf("line2[0] = %+v, want line1 last (%v,%v) plus (5,5)", line2First, line1Last.X, line1Last.Y)
	}
}

func TestReadTruncated(t *testing.T) {
	full := mustDecodeHex(t, "410809d00fa01fe807")
	for n := 0; n < len(full); n++ {
		if _, err := twkb.Read(full[:n]); err == nil {
			t.Errorf("Read(truncated at %d) expected error, got none", n)
		}
	}
}

func TestReadUnknownGeometryCode(t *testing.T) {
	data := mustDecodeHex(t, "0900")
	if _, err := twkb.Read(data); err == nil {
		t.Error("expected error for unknown base geometry code")
	}
}

func TestReadGeometryCollectionUnsupported(t *testing.T) {
	data := mustDecodeHex(t, "0700")
	if _, err := twkb.Read(data); err == nil {
		t.Error("expected OtherError for GeometryCollection")
	}
}

func TestProbeKind(t *testing.T) {
	kind, err := twkb.ProbeKind(0x42)
	if err != nil {
		t.Fatalf("ProbeKind: %v", err)
	}
	if kind != geom.KindLineString {
		t.Errorf("ProbeKind(0x42) = %v, want LineString", kind)
	}
}
