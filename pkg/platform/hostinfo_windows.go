//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// hostOSVersion returns the NT version, e.g. "10.0.22631".
// RtlGetNtVersionNumbers reports the true version, unaffected by
// compatibility shims.
func hostOSVersion() (string, error) {
	major, minor, build := windows.RtlGetNtVersionNumbers()
	return fmt.Sprintf("%d.%d.%d", major, minor, build), nil
}
