// Package version holds the build version string.
package version

// Version is the current application version.
var Version = "1.0.0"
