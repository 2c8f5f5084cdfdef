// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package engine

import "errors"

var (
	// ErrNoCore indicates an engine constructed without a core client
	ErrNoCore = errors.New("no chain core client configured")

	// ErrNoGasAsset indicates an empty gas asset id
	ErrNoGasAsset = errors.New("gas asset id is required")

	// ErrNoActions indicates a build request with an empty action list
	ErrNoActions = errors.New("no actions to build")

	// ErrNoPassword indicates a locking transaction without a password
	ErrNoPassword = errors.New("password is required to sign")

	// ErrInvalidClauseKey indicates a clause key not of the form Contract.clause
	ErrInvalidClauseKey = errors.New("clause key must be <Contract>.<clause>")
)
