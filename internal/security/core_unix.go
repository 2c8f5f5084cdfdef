// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

//go:build unix

// Package security hardens the eqshell process while it holds key passwords.
package security

import (
	"fmt"
	"syscall"
)

// DisableCoreDumps sets the core file size limit to zero so a crash cannot
// write typed passwords to disk.
func DisableCoreDumps() error {
	rlimit := syscall.Rlimit{Cur: 0, Max: 0}
	if err := syscall.Setrlimit(syscall.RLIMIT_CORE, &rlimit); err != nil {
		return fmt.Errorf("failed to disable core dumps: %w", err)
	}
	return nil
}
