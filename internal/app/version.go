package app

import (
	"runtime/debug"

	"github.com/heartmarshall/scanplate-backend/internal/transport/rest"
)

// Release metadata, stamped by the release build:
//
//	-ldflags "-X github.com/heartmarshall/scanplate-backend/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// buildInfo returns the stamped metadata, filling gaps from the VCS
// settings the Go toolchain embeds in the binary.
func buildInfo() rest.VersionInfo {
	info := rest.VersionInfo{Version: Version, Commit: Commit, BuildTime: BuildTime}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "":
				info.BuildTime = s.Value
			}
		}
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}
