// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"runtime/debug"

	"github.com/bookmycook/bookmycook/buildvars"
)

const modulePath = "github.com/bookmycook/bookmycook"

// resolveBuildVersion prefers the link time variables and falls back to the
// module and VCS information embedded by the Go toolchain.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := buildvars.GitCommit
	resolvedDate := buildvars.BuildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil && buildvars.Version == "" {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// some build paths only list our module among the dependencies
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
	}
	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if resolvedCommit == "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && resolvedCommit != "" {
		resolvedVersion = resolvedCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	if c != "" && c != v {
		v += " (" + c + ")"
	}
	if d != "" {
		v += " built: " + d
	}
	return v
}
