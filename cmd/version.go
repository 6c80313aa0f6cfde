// Package cmd holds the version string shared by the watchtail commands.
package cmd

var version = "dev"

// SetVersion sets the version string, normally from build-time ldflags.
func SetVersion(v string) {
	version = v
}

// GetVersion returns the version string.
func GetVersion() string {
	return version
}
