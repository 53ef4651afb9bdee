// Copyright 2024 The Inspektor Gadget authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package version stores the semver of this binary. It is filled out at build time by using
// "-ldflags -X github.com/inspektor-gadget/tablesort/internal/version.version=${VERSION}".
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/blang/semver"
)

const modulePath = "github.com/inspektor-gadget/tablesort"

var (
	version       = "v0.0.0"
	parsedVersion semver.Version
)

func init() {
	if version == "v0.0.0" {
		version = fromBuildInfo(version)
	}
	parsedVersion, _ = semver.ParseTolerant(version)
}

// fromBuildInfo looks up the module version when tablesort is built with "go install" or used as a library
func fromBuildInfo(fallback string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fallback
	}
	if info.Main.Path == modulePath && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return fallback
}

func Version() semver.Version {
	return parsedVersion
}

func VersionString() string {
	return version
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
	Compiler  string `json:"compiler"`
	Platform  string `json:"platform"`
}

func GetBuildInfo() *BuildInfo {
	return &BuildInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
