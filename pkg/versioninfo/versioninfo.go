// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package versioninfo

import (
	"runtime/debug"

	"github.com/samber/lo"
)

// To be populated at build-time, e.g.:
// go build -ldflags "-X 'chainkit.dev/x/chainkit/pkg/versioninfo.Version=1.2.3'"
var (
	Version   string
	Build     string
	BuildDate string
)

type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Build     string `json:"build" yaml:"build"`
	BuildDate string `json:"buildDate" yaml:"build-date"`
	GoVersion string `json:"goVersion" yaml:"go-version"`
}

func defaultUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// Get falls back to the module build info for anything not set with -ldflags
func Get() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		Build:     Build,
		BuildDate: BuildDate,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		settings := lo.SliceToMap(bi.Settings, func(s debug.BuildSetting) (string, string) {
			return s.Key, s.Value
		})
		if info.Build == "" {
			info.Build = settings["vcs.revision"]
		}
		if info.BuildDate == "" {
			info.BuildDate = settings["vcs.time"]
		}
	}

	info.Version = defaultUnknown(info.Version)
	info.Build = defaultUnknown(info.Build)
	info.BuildDate = defaultUnknown(info.BuildDate)
	info.GoVersion = defaultUnknown(info.GoVersion)
	return info
}
