package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polygamma/go-platform/pkg/errors"
)

func TestIntegerModelOfBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int
		expected IntegerModel
		wantErr  bool
	}{
		{name: "4 bytes is 32-bit", bytes: 4, expected: Bit32},
		{name: "8 bytes is 64-bit", bytes: 8, expected: Bit64},
		{name: "3 bytes is invalid", bytes: 3, wantErr: true},
		{name: "0 bytes is invalid", bytes: 0, wantErr: true},
		{name: "16 bytes is invalid", bytes: 16, wantErr: true},
		{name: "negative size is invalid", bytes: -8, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := IntegerModelOfBytes(tt.bytes)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidIntegerSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, model)
		})
	}
}

func TestIntegerModelOfBits(t *testing.T) {
	model, err := IntegerModelOfBits(32)
	require.NoError(t, err)
	assert.Equal(t, Bit32, model)

	model, err = IntegerModelOfBits(64)
	require.NoError(t, err)
	assert.Equal(t, Bit64, model)

	_, err = IntegerModelOfBits(48)
	require.ErrorIs(t, err, errors.ErrInvalidIntegerSize)
}

func TestIntegerModelWidths(t *testing.T) {
	assert.Equal(t, 4, Bit32.Bytes())
	assert.Equal(t, 32, Bit32.Bits())
	assert.True(t, Bit32.Is32Bit())
	assert.False(t, Bit32.Is64Bit())
	assert.Equal(t, "32-bit", Bit32.String())

	assert.Equal(t, 8, Bit64.Bytes())
	assert.Equal(t, 64, Bit64.Bits())
	assert.True(t, Bit64.Is64Bit())
	assert.False(t, Bit64.Is32Bit())
	assert.Equal(t, "64-bit", Bit64.String())
}
