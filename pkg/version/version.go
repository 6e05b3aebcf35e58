// Package version reports build information for shelf.
package version

import (
	"runtime/debug"
)

var (
	// Version is set via ldflags, e.g. -X github.com/macropower/shelf/pkg/version.Version=v1.0.0.
	Version string

	info, hasInfo = debug.ReadBuildInfo()

	// Revision is the abbreviated VCS revision, with a "-dirty" suffix for
	// builds from a modified tree.
	Revision = revision(info, hasInfo)
)

// GetVersion returns the ldflags version, the module version, or the
// revision, whichever is known first.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	if hasInfo && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return Revision
}

func revision(bi *debug.BuildInfo, ok bool) string {
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	dirty := false

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value[:min(len(s.Value), 7)]
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
