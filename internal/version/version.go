package version

import (
	"fmt"
	"runtime"
)

// These variables are set by ldflags during build.
var (
	version   = "dev"     // App version (e.g., v1.0.0)
	buildDate = "unknown" // Build date (RFC3339)
	gitCommit = "unknown" // Git commit SHA
)

// BuildInfo contains version and build details.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
	GoVersion string
}

// Get returns the build information.
func Get() BuildInfo {
	return BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(), // Get Go version from runtime
	}
}

// String formats the build information for --version output.
func (b BuildInfo) String() string {
	return fmt.Sprintf("justify version %s (commit: %s, built: %s, %s)",
		b.Version, b.GitCommit, b.BuildDate, b.GoVersion)
}
