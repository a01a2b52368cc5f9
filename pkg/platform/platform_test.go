package platform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/polygamma/go-platform/pkg/errors"
)

func TestNewInfersDataModel(t *testing.T) {
	tests := []struct {
		name     string
		os       OperatingSystem
		arch     Architecture
		expected DataModel
	}{
		{name: "64-bit unix infers LP64", os: Linux, arch: X8664, expected: LP64},
		{name: "64-bit macos infers LP64", os: MacOS, arch: ARM64, expected: LP64},
		{name: "64-bit windows infers LLP64", os: Windows, arch: X8664, expected: LLP64},
		{name: "32-bit unix infers ILP32", os: Linux, arch: X86, expected: ILP32},
		{name: "32-bit windows infers ILP32", os: Windows, arch: ARM, expected: ILP32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.os, nil, tt.arch)
			assert.Equal(t, tt.expected, p.Model)
			assert.True(t, p.IsDataModel(tt.expected))
		})
	}
}

func TestNewWithDataModel(t *testing.T) {
	version := OSVersion{6, 1, 0}
	p := NewWithDataModel(Linux, &version, X8664, ILP64)

	// Accessors round-trip the construction arguments.
	assert.Equal(t, Linux, p.OS)
	assert.Equal(t, &version, p.OSVersion)
	assert.Equal(t, X8664, p.Arch)
	assert.Equal(t, ILP64, p.Model)
}

func TestPlatformPredicates(t *testing.T) {
	p := New(Windows, nil, X8664)

	assert.True(t, p.IsOS(Windows))
	assert.False(t, p.IsOS(Linux))
	assert.True(t, p.IsArchitecture(X8664))
	assert.False(t, p.IsArchitecture(ARM64))
	assert.True(t, p.IsDataModel(LLP64))
	assert.True(t, p.Is64BitWord())
	assert.True(t, p.Is64BitAddress())

	p32 := New(Linux, nil, ARM)
	assert.False(t, p32.Is64BitWord())
	assert.False(t, p32.Is64BitAddress())
}

func TestCompareOSVersion(t *testing.T) {
	version := OSVersion{10, 15, 7}
	p := New(MacOS, &version, X8664)

	assert.Equal(t, 0, p.CompareOSVersion(OSVersion{10, 15, 7}))
	assert.Negative(t, p.CompareOSVersion(OSVersion{11, 0, 0}))
	assert.Positive(t, p.CompareOSVersion(OSVersion{10, 14, 0}))

	// Absent version compares as older than anything.
	bare := New(MacOS, nil, X8664)
	assert.Equal(t, -1, bare.CompareOSVersion(OSVersion{0, 0, 0}))
	assert.Equal(t, -1, bare.CompareOSVersion(OSVersion{11, 0, 0}))
}

func TestCompareOSVersionParts(t *testing.T) {
	version := OSVersion{10, 15, 7}
	p := New(MacOS, &version, X8664)

	res, err := p.CompareOSVersionParts(10, 15, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, res)

	// Missing trailing components default to 0.
	res, err = p.CompareOSVersionParts(10, 15)
	require.NoError(t, err)
	assert.Positive(t, res)

	res, err = p.CompareOSVersionParts(11)
	require.NoError(t, err)
	assert.Negative(t, res)

	_, err = p.CompareOSVersionParts(-1)
	assert.ErrorIs(t, err, errors.ErrInvalidVersion)

	_, err = p.CompareOSVersionParts()
	assert.ErrorIs(t, err, errors.ErrInvalidVersion)

	_, err = p.CompareOSVersionParts(1, 2, 3, 4)
	assert.ErrorIs(t, err, errors.ErrInvalidVersion)
}

func TestPlatformString(t *testing.T) {
	assert.Equal(t, "linux/x86-64", New(Linux, nil, X8664).String())
	assert.Equal(t, "windows/arm64", New(Windows, nil, ARM64).String())
}

func TestPlatformMarshal(t *testing.T) {
	version := OSVersion{6, 8, 0}
	p := New(Linux, &version, X8664)

	jsonOut, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"os":"linux","os_version":"6.8.0","arch":"x86-64","data_model":"LP64"}`, string(jsonOut))

	yamlOut, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(yamlOut), "os: linux")
	assert.Contains(t, string(yamlOut), "os_version: 6.8.0")
	assert.Contains(t, string(yamlOut), "arch: x86-64")
	assert.Contains(t, string(yamlOut), "data_model: LP64")
}
