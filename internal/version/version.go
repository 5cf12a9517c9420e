// Package version identifies the landsecure build. Version, Commit and Date
// are overwritten with -ldflags "-X" at release time.
package version

import "fmt"

// Service is the name every landsecure binary reports in logs.
const Service = "landsecure"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the build for startup logs, e.g. "landsecure v1.2.0 (abc123, 2024-05-01)".
func String() string {
	return fmt.Sprintf("%s %s (%s, %s)", Service, Version, Commit, Date)
}
