package twkb

import (
	"io"

	"github.com/restayway/geowkb/geom"
)

// readUvarint reads a standard unsigned LEB128 varint from r, erroring if
// the encoded value would not fit in 64 bits (spec.md §4.2: "a ZigZag value
// that overflows 64-bit signed").
func readUvarint(r io.ByteReader) (uint64, error) {
	var val uint64
	var shift uint

	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, geom.WrapReadError(err, "varint")
		}
		if shift >= 64 || (shift == 63 && b > 1) {
			return 0, geom.NewReadError("varint overflows 64 bits")
		}
		val |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return val, nil
		}
		shift += 7
	}
}

// readSvarint reads a ZigZag-encoded signed varint.
func readSvarint(r io.ByteReader) (int64, error) {
	u, err := readUvarint(r)
	if err != nil {
		return 0, err
	}
	return unzigzag(u), nil
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// decode4BitPrecision interprets a 4-bit field as a ZigZag-encoded signed
// value (spec.md §4.2), the same scheme as unzigzag applied to the
// low-order nibble.
func decode4BitPrecision(nibble uint8) int32 {
	return int32(unzigzag(uint64(nibble & 0x0f)))
}
