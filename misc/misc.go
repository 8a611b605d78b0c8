// Package misc holds program identity helpers shared by all commands.
package misc

import (
	"runtime/debug"
)

var (
	// overwritten by the build system
	appName = "cssmod"
	version = "development"
)

// GetAppName returns short program name used for logs, reports and
// temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version set at build time or module version
// when installed with "go install".
func GetVersion() string {
	if version == "development" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
	}
	return version
}

// GetGitHash returns vcs revision recorded in the build info.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				if len(s.Value) > 12 {
					return s.Value[:12]
				}
				return s.Value
			}
		}
	}
	return "unknown"
}
