package apitypes

import (
	"fmt"
	"runtime"
)

var (
	// version and commit are set via ldflags during release builds.
	// Development builds report "dev" and "unknown".
	version = "dev"
	commit  = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// GoVersion returns the Go runtime version used to build the binary.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string used for remote schema fetches
func UserAgent() string {
	return fmt.Sprintf("apitypes/%s", version)
}

// BuildInfo returns a multi-line summary of the build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nGo Version: %s", Version(), Commit(), GoVersion())
}
