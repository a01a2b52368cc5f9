package platform

import (
	"fmt"
	"strings"

	"github.com/polygamma/go-platform/pkg/errors"
)

// OperatingSystem is an operating system.
type OperatingSystem uint8

const (
	// Linux is a Linux kernel based operating system.
	Linux OperatingSystem = iota
	// FreeBSD is the FreeBSD operating system.
	FreeBSD
	// NetBSD is the NetBSD operating system.
	NetBSD
	// OpenBSD is the OpenBSD operating system.
	OpenBSD
	// MacOS is Apple's macOS operating system.
	MacOS
	// Windows is Microsoft's Windows operating system.
	Windows
)

var osNames = [...]string{
	Linux:   "linux",
	FreeBSD: "freebsd",
	NetBSD:  "netbsd",
	OpenBSD: "openbsd",
	MacOS:   "macos",
	Windows: "windows",
}

// OperatingSystemOf classifies a free-form operating system name, e.g.
// "Linux", "Mac OS X", or "Windows 11". Names are normalized before
// matching, so case and punctuation do not matter. The match order is fixed:
// linux, freebsd, netbsd, openbsd, macos, windows.
func OperatingSystemOf(name string) (OperatingSystem, error) {
	normalized := normalizeName(name)
	switch {
	case strings.Contains(normalized, "linux"):
		return Linux, nil
	case strings.Contains(normalized, "freebsd"):
		return FreeBSD, nil
	case strings.Contains(normalized, "netbsd"):
		return NetBSD, nil
	case strings.Contains(normalized, "openbsd"):
		return OpenBSD, nil
	case strings.Contains(normalized, "darwin"),
		strings.HasPrefix(normalized, "mac"),
		strings.HasPrefix(normalized, "osx"):
		return MacOS, nil
	case strings.Contains(normalized, "windows"):
		return Windows, nil
	default:
		return 0, errors.Wrapf(errors.ErrUnknownOS, "%q", name)
	}
}

// IsUnix reports whether the operating system is Unix based.
func (o OperatingSystem) IsUnix() bool {
	return o != Windows
}

// LibraryPrefix returns the native library file prefix, "lib" on Unix based
// systems and empty on Windows.
func (o OperatingSystem) LibraryPrefix() string {
	if o.IsUnix() {
		return "lib"
	}
	return ""
}

// LibraryExtension returns the native library file extension, without the
// leading dot.
func (o OperatingSystem) LibraryExtension() string {
	switch o {
	case Windows:
		return "dll"
	case MacOS:
		return "dylib"
	default:
		return "so"
	}
}

// LibraryFileName maps a plain library name to the file name the operating
// system's loader expects. For example, "foo" maps to "libfoo.dylib" on
// macOS and to "foo.dll" on Windows.
func (o OperatingSystem) LibraryFileName(name string) string {
	return fmt.Sprintf("%s%s.%s", o.LibraryPrefix(), name, o.LibraryExtension())
}

// String returns the canonical operating system name, e.g. "freebsd".
func (o OperatingSystem) String() string {
	return osNames[o]
}

// MarshalText implements encoding.TextMarshaler.
func (o OperatingSystem) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via OperatingSystemOf.
func (o *OperatingSystem) UnmarshalText(text []byte) error {
	os, err := OperatingSystemOf(string(text))
	if err != nil {
		return err
	}
	*o = os
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o OperatingSystem) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}
