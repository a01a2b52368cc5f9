package platform

import (
	"github.com/polygamma/go-platform/pkg/errors"
)

// IntegerModel describes the width of a native integer type. Only 32-bit and
// 64-bit widths exist; the zero value is not a valid model.
type IntegerModel uint8

const (
	// Bit32 is a 32-bit (4 byte) integer.
	Bit32 IntegerModel = 4
	// Bit64 is a 64-bit (8 byte) integer.
	Bit64 IntegerModel = 8
)

// IntegerModelOfBytes returns the integer model with the given byte size.
// Only 4 and 8 are valid sizes.
func IntegerModelOfBytes(bytes int) (IntegerModel, error) {
	switch bytes {
	case 8:
		return Bit64, nil
	case 4:
		return Bit32, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidIntegerSize, "%d bytes", bytes)
	}
}

// IntegerModelOfBits returns the integer model with the given bit size.
// Only 32 and 64 are valid sizes.
func IntegerModelOfBits(bits int) (IntegerModel, error) {
	return IntegerModelOfBytes(bits >> 3)
}

// Bytes returns the integer size in bytes.
func (m IntegerModel) Bytes() int {
	return int(m)
}

// Bits returns the integer size in bits.
func (m IntegerModel) Bits() int {
	return int(m) << 3
}

// Is64Bit reports whether the integer is 64-bit wide.
func (m IntegerModel) Is64Bit() bool {
	return m == Bit64
}

// Is32Bit reports whether the integer is 32-bit wide.
func (m IntegerModel) Is32Bit() bool {
	return !m.Is64Bit()
}

// String returns "32-bit" or "64-bit".
func (m IntegerModel) String() string {
	if m.Is64Bit() {
		return "64-bit"
	}
	return "32-bit"
}
