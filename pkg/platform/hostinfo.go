//go:generate mockgen -destination=./mocks/hostinfo.go -package=mocks . HostInfo

package platform

import (
	"runtime"

	"github.com/polygamma/go-platform/pkg/errors"
)

// HostInfo reports the identifying strings of a host environment. Each
// method either returns the string or signals that the host did not report
// it.
type HostInfo interface {
	// OSName returns the host-reported operating system name.
	OSName() (string, error)
	// OSVersion returns the host-reported operating system version string.
	OSVersion() (string, error)
	// ArchName returns the host-reported processor architecture name.
	ArchName() (string, error)
}

// hostInfo reads the identifying strings of the process host: OS and
// architecture names from the runtime, the OS version from the kernel.
type hostInfo struct{}

func (hostInfo) OSName() (string, error) {
	if runtime.GOOS == "" {
		return "", errors.Wrap(errors.ErrProbeFailed, "os name not reported")
	}
	return runtime.GOOS, nil
}

func (hostInfo) OSVersion() (string, error) {
	version, err := hostOSVersion()
	if err != nil {
		return "", err
	}
	if version == "" {
		return "", errors.Wrap(errors.ErrProbeFailed, "os version not reported")
	}
	return version, nil
}

func (hostInfo) ArchName() (string, error) {
	if runtime.GOARCH == "" {
		return "", errors.Wrap(errors.ErrProbeFailed, "architecture name not reported")
	}
	return runtime.GOARCH, nil
}
