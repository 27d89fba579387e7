package card

import (
	"fmt"
	"regexp"
	"strconv"
)

// versionPattern matches "<major>.<minor>" version strings.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)$`)

// Version identifies a card schema version as a major.minor pair.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// DefaultVersion is the version assumed when a card declares none, and
// the value left in place when a declared version string is malformed.
var DefaultVersion = Version{Major: 1, Minor: 0}

// ParseVersion parses a "<major>.<minor>" string. The second return is
// false for malformed strings; callers keep their existing default in
// that case rather than failing the parse.
func ParseVersion(s string) (Version, bool) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, false
	}

	// The pattern guarantees digit-only groups; Atoi cannot fail here
	// except on overflow, which falls back to the zero value.
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])

	return Version{Major: major, Minor: minor}, true
}

// String returns the canonical "<major>.<minor>" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}
