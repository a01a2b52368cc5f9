//go:build unix

package platform

import (
	"golang.org/x/sys/unix"

	"github.com/polygamma/go-platform/pkg/errors"
)

// hostOSVersion returns the kernel release, e.g. "6.8.0-52-generic" on
// Linux or "23.6.0" on macOS.
func hostOSVersion() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", errors.Wrap(err, "uname")
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
