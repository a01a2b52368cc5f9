package platform

import (
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/polygamma/go-platform/pkg/errors"
)

// Any is the selector wildcard matching every OS or architecture.
const Any = "any"

// Selector describes a set of platforms. OS and Arch accept any spelling the
// classifiers recognize, the wildcard "any", or empty (treated as "any").
// VersionConstraint, when set, is a version constraint (e.g. ">= 10.15")
// the platform's OS version must satisfy; a platform without an OS version
// never satisfies a constraint.
type Selector struct {
	OS                string `yaml:"os" json:"os"`
	Arch              string `yaml:"arch" json:"arch"`
	VersionConstraint string `yaml:"version_constraint,omitempty" json:"version_constraint,omitempty"`
}

// ParseSelector parses a selector in "os/arch" form. Either part may be
// "any" or empty, so "linux/", "any/arm64", and "windows/amd64" are all
// valid.
func ParseSelector(s string) (Selector, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return Selector{}, errors.Wrapf(errors.ErrInvalidSelector, "%q", s)
	}
	sel := Selector{OS: parts[0], Arch: Any}
	if len(parts) == 2 {
		sel.Arch = parts[1]
	}
	if err := sel.Validate(); err != nil {
		return Selector{}, err
	}
	return sel, nil
}

// Validate checks that every set selector part is understood.
func (s Selector) Validate() error {
	if !isWildcard(s.OS) {
		if _, err := OperatingSystemOf(s.OS); err != nil {
			return errors.Wrapf(errors.ErrInvalidSelector, "os %q", s.OS)
		}
	}
	if !isWildcard(s.Arch) {
		if _, err := ArchitectureOf(s.Arch); err != nil {
			return errors.Wrapf(errors.ErrInvalidSelector, "arch %q", s.Arch)
		}
	}
	if s.VersionConstraint != "" {
		if _, err := version.NewConstraint(s.VersionConstraint); err != nil {
			return errors.Wrapf(errors.ErrInvalidSelector, "constraint %q", s.VersionConstraint)
		}
	}
	return nil
}

// Matches reports whether p is in the set of platforms the selector
// describes. A malformed selector matches nothing.
func (s Selector) Matches(p Platform) bool {
	return s.matchOS(p) && s.matchArch(p) && s.matchVersion(p)
}

func (s Selector) matchOS(p Platform) bool {
	if isWildcard(s.OS) {
		return true
	}
	os, err := OperatingSystemOf(s.OS)
	return err == nil && p.IsOS(os)
}

func (s Selector) matchArch(p Platform) bool {
	if isWildcard(s.Arch) {
		return true
	}
	arch, err := ArchitectureOf(s.Arch)
	return err == nil && p.IsArchitecture(arch)
}

func (s Selector) matchVersion(p Platform) bool {
	if s.VersionConstraint == "" {
		return true
	}
	if p.OSVersion == nil {
		return false
	}
	ok, err := p.OSVersion.Satisfies(s.VersionConstraint)
	return err == nil && ok
}

func isWildcard(part string) bool {
	return part == "" || strings.EqualFold(part, Any)
}

// String returns the selector in "os/arch" form, with empty parts rendered
// as "any".
func (s Selector) String() string {
	os, arch := s.OS, s.Arch
	if isWildcard(os) {
		os = Any
	}
	if isWildcard(arch) {
		arch = Any
	}
	return os + "/" + arch
}
