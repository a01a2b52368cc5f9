package platform

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/polygamma/go-platform/pkg/errors"
)

// The current-platform probe runs at most once per process; both the
// resulting platform and a probe failure are cached for process lifetime.
var currentOnce = sync.OnceValues(func() (Platform, error) {
	return Probe(hostInfo{})
})

// Current returns the platform the process is executing on. The host is
// probed on first use only; every later call returns the same platform, or
// the same error if the probe failed.
func Current() (Platform, error) {
	return currentOnce()
}

// Probe classifies the identifying strings reported by host into a platform
// descriptor. The data model is inferred from the classified architecture
// and operating system, except that the literal architecture name "x32"
// (the x86-64 32-bit ABI) forces ILP32.
func Probe(host HostInfo) (Platform, error) {
	osName, err := host.OSName()
	if err != nil {
		return Platform{}, probeError(err)
	}
	versionString, err := host.OSVersion()
	if err != nil {
		return Platform{}, probeError(err)
	}
	archName, err := host.ArchName()
	if err != nil {
		return Platform{}, probeError(err)
	}

	os, err := OperatingSystemOf(osName)
	if err != nil {
		return Platform{}, probeError(err)
	}
	version, err := ParseOSVersion(versionString)
	if err != nil {
		return Platform{}, probeError(err)
	}
	arch, err := ArchitectureOf(archName)
	if err != nil {
		return Platform{}, probeError(err)
	}

	var model DataModel
	if archName == "x32" || !arch.Is64Bit() {
		model = ILP32
	} else {
		model = inferDataModel(os, arch)
	}
	return NewWithDataModel(os, &version, arch, model), nil
}

func probeError(cause error) error {
	if stderrors.Is(cause, errors.ErrProbeFailed) {
		return cause
	}
	return fmt.Errorf("%w: %w", errors.ErrProbeFailed, cause)
}
