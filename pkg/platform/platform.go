// Package platform identifies the operating system, processor architecture,
// and C ABI data model of an execution platform. Free-form identifier
// strings, as reported by the host environment, are classified into a closed
// set of canonical values; derived facts like word size and native library
// naming are exposed for native interoperability.
package platform

import (
	"fmt"

	"github.com/polygamma/go-platform/pkg/errors"
)

// Platform describes an execution platform: its operating system, processor
// architecture, and data model. The data model dictates the width of the
// standard C types, which matters when interfacing with native libraries.
// The OS version is optional; a platform without one compares as older than
// any concrete version.
type Platform struct {
	OS        OperatingSystem `yaml:"os" json:"os"`
	OSVersion *OSVersion      `yaml:"os_version,omitempty" json:"os_version,omitempty"`
	Arch      Architecture    `yaml:"arch" json:"arch"`
	Model     DataModel       `yaml:"data_model" json:"data_model"`
}

// New builds a platform descriptor, inferring the data model from the
// operating system and architecture: 64-bit Unix platforms use LP64, 64-bit
// Windows uses LLP64, and 32-bit architectures use ILP32. ILP64 is never
// inferred. Version may be nil.
func New(os OperatingSystem, version *OSVersion, arch Architecture) Platform {
	return NewWithDataModel(os, version, arch, inferDataModel(os, arch))
}

// NewWithDataModel builds a platform descriptor with an explicit data model.
// Version may be nil.
func NewWithDataModel(os OperatingSystem, version *OSVersion, arch Architecture, model DataModel) Platform {
	return Platform{OS: os, OSVersion: version, Arch: arch, Model: model}
}

func inferDataModel(os OperatingSystem, arch Architecture) DataModel {
	if !arch.Is64Bit() {
		return ILP32
	}
	if os.IsUnix() {
		return LP64
	}
	return LLP64
}

// IsOS reports whether the platform's operating system equals that.
func (p Platform) IsOS(that OperatingSystem) bool {
	return p.OS == that
}

// IsArchitecture reports whether the platform's architecture equals that.
func (p Platform) IsArchitecture(that Architecture) bool {
	return p.Arch == that
}

// IsDataModel reports whether the platform's data model equals that.
func (p Platform) IsDataModel(that DataModel) bool {
	return p.Model == that
}

// Is64BitWord reports whether the native processor word is 64-bit.
func (p Platform) Is64BitWord() bool {
	return p.Arch.Is64Bit()
}

// Is64BitAddress reports whether the native address space is 64-bit, i.e.
// the data model has a 64-bit pointer model.
func (p Platform) Is64BitAddress() bool {
	return p.Model.PointerModel().Is64Bit()
}

// CompareOSVersion compares the platform's OS version to that. If the
// platform has no OS version, this returns -1 unconditionally.
func (p Platform) CompareOSVersion(that OSVersion) int {
	if p.OSVersion == nil {
		return -1
	}
	return p.OSVersion.Compare(that)
}

// CompareOSVersionParts compares the platform's OS version to one, two, or
// three version components; missing trailing components default to 0.
// Negative components are rejected.
func (p Platform) CompareOSVersionParts(parts ...int) (int, error) {
	if len(parts) == 0 || len(parts) > 3 {
		return 0, errors.Wrapf(errors.ErrInvalidVersion, "%d components", len(parts))
	}
	padded := [3]int{}
	copy(padded[:], parts)
	that, err := NewOSVersion(padded[0], padded[1], padded[2])
	if err != nil {
		return 0, err
	}
	return p.CompareOSVersion(that), nil
}

// String returns the platform in "os/arch" form.
func (p Platform) String() string {
	return fmt.Sprintf("%s/%s", p.OS, p.Arch)
}
