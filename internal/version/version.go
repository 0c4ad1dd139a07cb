// Package version reports the build version of the service
package version

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 3,
		Patch: 0,
		Build: semver.Commit(),
	}
)

// Version returns the full build version
func Version() semver.Version {
	return version
}

// Core returns the version without build metadata
func Core() string {
	return version.Core()
}
