package platform

import (
	"regexp"
	"strings"

	"github.com/polygamma/go-platform/pkg/errors"
)

// Architecture is a processor architecture.
type Architecture uint8

const (
	// X86 is the x86 processor architecture, 32-bit.
	X86 Architecture = iota
	// X8664 is the x86 processor architecture, 64-bit.
	X8664
	// ARM is the ARM (version 7 or above) processor architecture, 32-bit.
	ARM
	// ARM64 is the ARM (version 8 or above) processor architecture, 64-bit.
	ARM64
	// RISCV64 is the RISC-V processor architecture, 64-bit.
	RISCV64
	// PPC64 is the PowerPC processor architecture, 64-bit.
	PPC64
	// S390X is the s390x processor architecture, 64-bit.
	S390X
)

// Native word model per architecture.
var archWordModels = [...]IntegerModel{
	X86:     Bit32,
	X8664:   Bit64,
	ARM:     Bit32,
	ARM64:   Bit64,
	RISCV64: Bit64,
	PPC64:   Bit64,
	S390X:   Bit64,
}

var archNames = [...]string{
	X86:     "x86",
	X8664:   "x86-64",
	ARM:     "arm",
	ARM64:   "arm64",
	RISCV64: "riscv64",
	PPC64:   "ppc64",
	S390X:   "s390x",
}

// Ordered name match table, evaluated against the normalized name.
// First match wins.
var archPatterns = []struct {
	pattern *regexp.Regexp
	arch    Architecture
}{
	{regexp.MustCompile(`^(x86(32)?|i[3-6]86|ia32)$`), X86},
	{regexp.MustCompile(`^((x(86)?|amd)64|ia32e|em64t|x32)$`), X8664},
	{regexp.MustCompile(`^((aarch|arm)(32)?(v7)?[a-z]*)$`), ARM},
	{regexp.MustCompile(`^((aarch|arm)64[a-z]*)$`), ARM64},
	{regexp.MustCompile(`^(riscv64[a-z]*)$`), RISCV64},
	{regexp.MustCompile(`^((powerpc|ppc)64[a-z]*)$`), PPC64},
	{regexp.MustCompile(`^(s390x|zarch64)$`), S390X},
}

// normalizeName lower-cases name and strips every character that is not an
// ASCII letter or digit.
func normalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ArchitectureOf classifies a free-form architecture name, e.g. "x86_64",
// "amd64", or "aarch64". Names are normalized before matching, so case and
// punctuation do not matter.
func ArchitectureOf(name string) (Architecture, error) {
	normalized := normalizeName(name)
	for _, entry := range archPatterns {
		if entry.pattern.MatchString(normalized) {
			return entry.arch, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrUnknownArchitecture, "%q", name)
}

// WordModel returns the native processor word model.
func (a Architecture) WordModel() IntegerModel {
	return archWordModels[a]
}

// Is64Bit reports whether the native processor word is 64-bit.
func (a Architecture) Is64Bit() bool {
	return a.WordModel().Is64Bit()
}

// String returns the canonical architecture name, e.g. "x86-64".
func (a Architecture) String() string {
	return archNames[a]
}

// MarshalText implements encoding.TextMarshaler.
func (a Architecture) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ArchitectureOf.
func (a *Architecture) UnmarshalText(text []byte) error {
	arch, err := ArchitectureOf(string(text))
	if err != nil {
		return err
	}
	*a = arch
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a Architecture) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}
