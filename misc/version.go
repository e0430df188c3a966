// Package misc keeps build time information.
package misc

// Set with -ldflags "-X selb/misc.version=... -X selb/misc.githash=..."
var (
	version = "dev"
	githash = "unknown"
)

const appName = "selb"

// GetAppName returns program name used for logs and temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit the program was built from.
func GetGitHash() string {
	return githash
}
