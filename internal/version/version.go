// Package version carries build metadata stamped in via -ldflags.
package version

var (
	// Version is the release version of the stylelens binary.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
