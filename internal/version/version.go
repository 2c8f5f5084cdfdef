// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package version reports the eqshell build. Values are injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Example: go build -ldflags "-X github.com/aplane-algo/equity/internal/version.Version=0.3.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Name is the binary name used in banners and help.
const Name = "eqshell"

// String returns the -version line.
func String() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s, %s/%s)",
		Name, Version, GitCommit, BuildTime, runtime.GOOS, runtime.GOARCH)
}
