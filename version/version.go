// Package version provides build information for rfcurl and the reusable
// version command.
package version

import (
	"fmt"
	"runtime"
)

// Version, BuildDate and GitCommit are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/jongio/rfcurl/version.Version=1.2.3"
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for a binary.
type Info struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

// New creates an Info for name from the ldflags-provided build variables.
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
