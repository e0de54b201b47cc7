// Copyright 2025 The OpenChoreo Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information. The variables are set with -ldflags -X at
// release time.
package version

import (
	"runtime"
	"runtime/debug"
)

var (
	version     = "dev"
	gitRevision = ""
	buildTime   = ""
)

const componentName = "klap"

// Info describes the running binary.
type Info struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	GitRevision string `json:"gitRevision" yaml:"gitRevision"`
	BuildTime   string `json:"buildTime" yaml:"buildTime"`
	GoOS        string `json:"goOS" yaml:"goOS"`
	GoArch      string `json:"goArch" yaml:"goArch"`
	GoVersion   string `json:"goVersion" yaml:"goVersion"`
}

// Get returns the build information of the running binary. Revision and build time fall
// back to the VCS stamp embedded by the Go toolchain.
func Get() Info {
	info := Info{
		Name:        componentName,
		Version:     version,
		GitRevision: gitRevision,
		BuildTime:   buildTime,
		GoOS:        runtime.GOOS,
		GoArch:      runtime.GOARCH,
		GoVersion:   runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitRevision == "":
				info.GitRevision = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "":
				info.BuildTime = s.Value
			}
		}
	}
	return info
}
