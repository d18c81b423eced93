package wkbcommon_test

import (
	"bytes"
	"testing"

	"github.com/restayway/geowkb/internal/wkbcommon"
)

func TestByteOrder(t *testing.T) {
	tests := []struct {
		name    string
		b       byte
		want    bool // little-endian?
		wantErr bool
	}{
		{"little endian", wkbcommon.NDRID, true, false},
		{"big endian", wkbcommon.XDRID, false, false},
		{"unknown", 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := wkbcommon.ByteOrder(bytes.NewReader([]byte{tt.b}))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			isLittle := order == wkbcommon.NDR
			if isLittle != tt.want {
				t.Errorf("got little-endian=%v, want %v", isLittle, tt.want)
			}
		})
	}
}

func TestTypeCodeRoundTrip(t *testing.T) {
	tests := []struct {
		kind                   uint32
		hasZ, hasM, hasSRID    bool
	}{
		{1, false, false, false},
		{3, true, false, true},
		{6, false, true, false},
		{7, true, true, true},
	}

	for _, tt := range tests {
		code := wkbcommon.TypeCode(tt.kind, tt.hasZ, tt.hasM, tt.hasSRID)
		kind, z, m, srid := wkbcommon.SplitTypeCode(code)
		if kind != tt.kind || z != tt.hasZ || m != tt.hasM || srid != tt.hasSRID {
			t.Errorf("round trip mismatch: got (%d,%v,%v,%v), want (%d,%v,%v,%v)",
				kind, z, m, srid, tt.kind, tt.hasZ, tt.hasM, tt.hasSRID)
		}
	}
}

func TestReadFloat64sTruncated(t *testing.T) {
	_, err := wkbcommon.ReadFloat64s(bytes.NewReader([]byte{1, 2, 3}), wkbcommon.NDR, 2)
	if err == nil {
		t.Fatal("expected error on truncated input")
	}
}
