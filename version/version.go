package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Revision is the git commit revision, read from the build info.
	Revision = revision()
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Info describes the running binary.
type Info struct {
	Version   string
	Revision  string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the [Info] of the running binary. Unset values are reported
// as "unknown".
func Get() Info {
	return Info{
		Version:   orUnknown(Version),
		Revision:  Revision,
		BuildDate: orUnknown(BuildDate),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders i on one line.
func (i Info) String() string {
	return fmt.Sprintf("%s (revision %s, built %s, %s %s)",
		i.Version, i.Revision, i.BuildDate, i.GoVersion, i.Platform)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}

	return s
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev, dirty := "unknown", false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
