// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package template

import (
	"errors"

	"github.com/aplane-algo/equity/internal/action"
)

// LockValue is the value a locking transaction moves out of an account.
type LockValue struct {
	AccountID string
	AssetID   string
	Amount    uint64
}

// LockActions builds the action list that locks value under a contract program:
// spend(value), control(value, program), gas.
func LockActions(value LockValue, program string, gas action.SpendFromAccount) ([]action.Action, error) {
	if program == "" {
		return nil, errors.New("contract program is required")
	}
	if value.Amount == 0 {
		return nil, errors.New("locked amount must be greater than 0")
	}
	return []action.Action{
		SpendAccountAction(value.AssetID, value.Amount, value.AccountID),
		RecipientAction(value.AssetID, value.Amount, program),
		gas,
	}, nil
}
