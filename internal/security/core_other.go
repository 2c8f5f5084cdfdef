// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

//go:build !unix

// Package security hardens the eqshell process while it holds key passwords.
package security

// DisableCoreDumps is a no-op where core file limits do not exist.
func DisableCoreDumps() error {
	return nil
}
