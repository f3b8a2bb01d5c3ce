// Package version exposes build metadata injected at link time.
package version

// Build information. Populated at build time via -ldflags.
//
//nolint:gochecknoglobals // These are set by the linker and read-only at runtime.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the git commit hash the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version, commit and build time in a single line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
