package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a human-readable version string.
func String() string {
	v, c, d := resolve()
	return fmt.Sprintf("detekt-op %s (%s, %s)", v, c, d)
}

// Runtime describes the Go toolchain and platform the binary was built for.
func Runtime() string {
	return fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// resolve falls back to the module build info when ldflags were not set,
// e.g. for binaries installed with go install.
func resolve() (ver, commit, date string) {
	ver, commit, date = Version, Commit, BuildDate
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ver, commit, date
	}
	if ver == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		ver = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && len(s.Value) >= 7 {
				commit = s.Value[:7]
			}
		case "vcs.time":
			if date == "unknown" {
				date = s.Value
			}
		}
	}
	return ver, commit, date
}
