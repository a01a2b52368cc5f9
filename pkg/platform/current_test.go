package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/polygamma/go-platform/pkg/errors"
	"github.com/polygamma/go-platform/pkg/platform/mocks"
)

func newHostMock(t *testing.T, osName, osVersion, archName string) *mocks.MockHostInfo {
	t.Helper()
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHostInfo(ctrl)
	host.EXPECT().OSName().Return(osName, nil).AnyTimes()
	host.EXPECT().OSVersion().Return(osVersion, nil).AnyTimes()
	host.EXPECT().ArchName().Return(archName, nil).AnyTimes()
	return host
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name      string
		osName    string
		osVersion string
		archName  string
		expected  Platform
	}{
		{
			name:      "linux amd64",
			osName:    "linux",
			osVersion: "6.8.0-52-generic",
			archName:  "amd64",
			expected:  NewWithDataModel(Linux, &OSVersion{6, 8, 0}, X8664, LP64),
		},
		{
			name:      "windows amd64",
			osName:    "windows",
			osVersion: "10.0.22631",
			archName:  "amd64",
			expected:  NewWithDataModel(Windows, &OSVersion{10, 0, 22631}, X8664, LLP64),
		},
		{
			name:      "darwin arm64",
			osName:    "darwin",
			osVersion: "23.6.0",
			archName:  "arm64",
			expected:  NewWithDataModel(MacOS, &OSVersion{23, 6, 0}, ARM64, LP64),
		},
		{
			name:      "32-bit arm",
			osName:    "linux",
			osVersion: "6.1.0",
			archName:  "arm",
			expected:  NewWithDataModel(Linux, &OSVersion{6, 1, 0}, ARM, ILP32),
		},
		{
			name:      "x32 ABI forces ILP32",
			osName:    "linux",
			osVersion: "6.1.0",
			archName:  "x32",
			expected:  NewWithDataModel(Linux, &OSVersion{6, 1, 0}, X8664, ILP32),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newHostMock(t, tt.osName, tt.osVersion, tt.archName)
			probed, err := Probe(host)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, probed)
		})
	}
}

func TestProbeFailures(t *testing.T) {
	tests := []struct {
		name      string
		osName    string
		osVersion string
		archName  string
	}{
		{name: "unknown os", osName: "plan9", osVersion: "1.0", archName: "amd64"},
		{name: "unknown arch", osName: "linux", osVersion: "1.0", archName: "mips"},
		{name: "malformed version", osName: "linux", osVersion: "abc", archName: "amd64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newHostMock(t, tt.osName, tt.osVersion, tt.archName)
			_, err := Probe(host)
			assert.ErrorIs(t, err, errors.ErrProbeFailed)
		})
	}
}

func TestProbeHostError(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHostInfo(ctrl)
	host.EXPECT().OSName().Return("", errors.Wrap(errors.ErrProbeFailed, "os name not reported"))

	_, err := Probe(host)
	assert.ErrorIs(t, err, errors.ErrProbeFailed)
}

func TestCurrent(t *testing.T) {
	current, err := Current()
	require.NoError(t, err)

	expectedOS, err := OperatingSystemOf(runtime.GOOS)
	require.NoError(t, err)
	expectedArch, err := ArchitectureOf(runtime.GOARCH)
	require.NoError(t, err)

	assert.True(t, current.IsOS(expectedOS))
	assert.True(t, current.IsArchitecture(expectedArch))
	require.NotNil(t, current.OSVersion)

	// The probe runs once; later calls return the identical descriptor.
	again, err := Current()
	require.NoError(t, err)
	assert.Equal(t, current, again)
}
