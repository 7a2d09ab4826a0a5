// Package version reports the build version of the binary. The variables are
// set at link time, e.g. -ldflags "-X .../version.Version=1.2.0".
package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semantic version rather than a
// development build label such as "dev".
func IsRelease(v string) bool {
	return semver.IsValid(Normalize(v))
}

// String describes the running build.
func String() string {
	v := Version
	if IsRelease(v) {
		v = Normalize(v)
	}
	return fmt.Sprintf("%s (commit %s, built %s)", v, Commit, BuildDate)
}
