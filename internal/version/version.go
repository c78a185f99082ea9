// Package version holds the version string reported by -V.
package version

// Version is overridden in release builds via
// -ldflags "-X oralog/internal/version.Version=...".
var Version = "0.1.0"
