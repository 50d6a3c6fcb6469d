package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the CLI version, overridable at build time.
	Version = "0.1.0"
	// GitCommit is the git commit hash.
	GitCommit = "unknown"
)

// Info holds version information.
type Info struct {
	Version   string
	GitCommit string
	GoVersion string
	Platform  string
}

// Get returns version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a formatted version string.
func (i Info) String() string {
	return fmt.Sprintf("migrator version %s (%s %s)", i.Version, i.Platform, i.GoVersion)
}
