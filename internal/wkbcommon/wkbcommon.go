// Package wkbcommon factors the byte-order-aware primitives shared by the
// EWKB reader and writer, the way github.com/twpayne/go-geom's own
// encoding/wkbcommon package does for the same job: one set of
// endian-aware read/write calls reused for every dimensionality instead of
// duplicated XY/XYZ/XYZM code paths (spec Design Notes, "byte-order
// abstraction").
package wkbcommon

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Byte-order marker bytes, as laid out on the wire ahead of every EWKB
// geometry header.
const (
	XDRID byte = 0 // big-endian
	NDRID byte = 1 // little-endian
)

var (
	XDR = binary.BigEndian
	NDR = binary.LittleEndian
)

// Type-code flag bits, OR'd into the high bits of the 32-bit EWKB type-code
// word alongside the base kind in the low 16 bits.
const (
	FlagZ    uint32 = 0x80000000
	FlagM    uint32 = 0x40000000
	FlagSRID uint32 = 0x20000000
	KindMask uint32 = 0xFFFF
)

// ErrUnknownByteOrder is returned when a byte-order marker byte is neither
// XDRID nor NDRID.
type ErrUnknownByteOrder byte

func (e ErrUnknownByteOrder) Error() string {
	return fmt.Sprintf("wkbcommon: unknown byte order byte 0x%02x", byte(e))
}

// ByteOrder reads the single leading byte-order marker byte and returns the
// binary.ByteOrder it selects. Both XDRID (big-endian) and NDRID
// (little-endian) are accepted on read, per spec.md §4.1.
func ByteOrder(r io.Reader) (binary.ByteOrder, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return nil, err
	}
	switch b[0] {
	case XDRID:
		return XDR, nil
	case NDRID:
		return NDR, nil
	default:
		return nil, ErrUnknownByteOrder(b[0])
	}
}

// ReadUint32 reads a single unsigned 32-bit integer in the given byte order.
func ReadUint32(r io.Reader, order binary.ByteOrder) (uint32, error) {
	var v uint32
	err := binary.Read(r, order, &v)
	return v, err
}

// ReadInt32 reads a single signed 32-bit integer in the given byte order.
func ReadInt32(r io.Reader, order binary.ByteOrder) (int32, error) {
	var v int32
	err := binary.Read(r, order, &v)
	return v, err
}

// ReadFloat64 reads a single IEEE-754 double in the given byte order.
func ReadFloat64(r io.Reader, order binary.ByteOrder) (float64, error) {
	var v float64
	err := binary.Read(r, order, &v)
	return v, err
}

// ReadFloat64s reads n IEEE-754 doubles in the given byte order — the
// "single endian-aware primitive" used for a Point's X, Y and optional Z, M
// components regardless of which are present, per spec Design Notes.
func ReadFloat64s(r io.Reader, order binary.ByteOrder, n int) ([]float64, error) {
	out := make([]float64, n)
	if err := binary.Read(r, order, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteByte writes a single raw byte (used for the leading byte-order
// marker, which is not itself byte-order-dependent).
func WriteByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

// WriteUint32 writes v in the given byte order.
func WriteUint32(w io.Writer, order binary.ByteOrder, v uint32) error {
	return binary.Write(w, order, v)
}

// WriteInt32 writes v in the given byte order.
func WriteInt32(w io.Writer, order binary.ByteOrder, v int32) error {
	return binary.Write(w, order, v)
}

// WriteFloat64s writes vs in the given byte order.
func WriteFloat64s(w io.Writer, order binary.ByteOrder, vs []float64) error {
	return binary.Write(w, order, vs)
}

// TypeCode builds the 32-bit EWKB type-code word for kind, OR-ing in the Z,
// M and SRID flags as requested.
func TypeCode(kind uint32, hasZ, hasM, hasSRID bool) uint32 {
	code := kind & KindMask
	if hasZ {
		code |= FlagZ
	}
	if hasM {
		code |= FlagM
	}
	if hasSRID {
		code |= FlagSRID
	}
	return code
}

// SplitTypeCode decomposes a 32-bit EWKB type-code word into its base kind
// and flag bits.
func SplitTypeCode(code uint32) (kind uint32, hasZ, hasM, hasSRID bool) {
	kind = code & KindMask
	hasZ = code&FlagZ != 0
	hasM = code&FlagM != 0
	hasSRID = code&FlagSRID != 0
	return
}
