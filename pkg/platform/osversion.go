package platform

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/polygamma/go-platform/pkg/errors"
)

// OSVersion is a parsed operating system version. Versions order
// lexicographically on (Major, Minor, Patch).
type OSVersion struct {
	Major int
	Minor int
	Patch int
}

// Accepted version grammar: an optional build prefix, dot-separated integer
// components, and an optional build suffix. Only the first three components
// are significant.
var osVersionPattern = regexp.MustCompile(`(?i)^([-+_0-9a-z]*-)?([0-9]+(?:\.[0-9]+)*)(-[-+_0-9a-z]*)?$`)

// ParseOSVersion parses a version string, stripping any build prefix and
// suffix. Missing trailing components default to 0, so "1.2" parses to
// (1, 2, 0). Components beyond the third are accepted and ignored.
func ParseOSVersion(s string) (OSVersion, error) {
	groups := osVersionPattern.FindStringSubmatch(s)
	if groups == nil {
		return OSVersion{}, errors.Wrapf(errors.ErrMalformedVersion, "%q", s)
	}

	components := strings.Split(groups[2], ".")
	if len(components) > 3 {
		components = components[:3]
	}
	parsed := [3]int{}
	for i, component := range components {
		n, err := strconv.Atoi(component)
		if err != nil {
			return OSVersion{}, errors.Wrapf(errors.ErrMalformedVersion, "%q", s)
		}
		parsed[i] = n
	}
	return OSVersion{Major: parsed[0], Minor: parsed[1], Patch: parsed[2]}, nil
}

// NewOSVersion builds a version from explicit components. Every component
// must be non-negative.
func NewOSVersion(major, minor, patch int) (OSVersion, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return OSVersion{}, errors.Wrapf(errors.ErrInvalidVersion, "%d.%d.%d", major, minor, patch)
	}
	return OSVersion{Major: major, Minor: minor, Patch: patch}, nil
}

// Compare returns a value less than, equal to, or greater than 0 if v is
// less than, equal to, or greater than that, respectively.
func (v OSVersion) Compare(that OSVersion) int {
	if res := cmp.Compare(v.Major, that.Major); res != 0 {
		return res
	}
	if res := cmp.Compare(v.Minor, that.Minor); res != 0 {
		return res
	}
	return cmp.Compare(v.Patch, that.Patch)
}

// Satisfies checks the version against a version constraint string, e.g.
// ">= 10.15, < 12". It returns an error if the constraint does not parse.
func (v OSVersion) Satisfies(constraint string) (bool, error) {
	c, err := version.NewConstraint(constraint)
	if err != nil {
		return false, errors.Wrapf(errors.ErrInvalidSelector, "constraint %q", constraint)
	}
	parsed, err := version.NewVersion(v.String())
	if err != nil {
		return false, errors.Wrap(err, "convert version")
	}
	return c.Check(parsed), nil
}

// String returns the version in "major.minor.patch" form.
func (v OSVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MarshalText implements encoding.TextMarshaler.
func (v OSVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseOSVersion.
func (v *OSVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseOSVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v OSVersion) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}
