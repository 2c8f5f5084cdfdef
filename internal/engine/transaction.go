// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package engine

import (
	"context"

	"github.com/aplane-algo/equity/internal/action"
	"github.com/aplane-algo/equity/internal/chaincore"
	"github.com/aplane-algo/equity/internal/util"
)

// CreateLockingTx builds actions, signs once with password and submits.
// A failure status from any step is returned as-is and stops the chain.
func (e *Engine) CreateLockingTx(ctx context.Context, actions []action.Action, password string) (*LockResult, error) {
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	if password == "" {
		return nil, ErrNoPassword
	}
	core := e.Core()

	tpl, err := core.BuildTransaction(ctx, actions)
	if err != nil {
		return nil, err
	}

	signed, err := core.SignTransaction(ctx, password, tpl)
	if err != nil {
		return nil, err
	}
	if !signed.SignComplete {
		util.Debug("locking transaction not fully signed, submitting anyway")
	}

	txID, err := core.SubmitTransaction(ctx, signed.Transaction.RawTransaction)
	if err != nil {
		return nil, err
	}
	return &LockResult{TransactionID: txID}, nil
}

// CreateUnlockingTx builds actions, signs with passwords via MultiSign and
// submits when signing completes. With too few passwords the result has
// StatusSign and carries the partial template instead.
func (e *Engine) CreateUnlockingTx(ctx context.Context, actions []action.Action, passwords []string) (*UnlockResult, error) {
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	core := e.Core()

	tpl, err := core.BuildTransaction(ctx, actions)
	if err != nil {
		return nil, err
	}

	return finishSigning(ctx, core, tpl, passwords)
}

// ContinueSigning picks up a partially signed template, as returned in
// UnlockResult.Hex, signs it with passwords and submits once complete.
func (e *Engine) ContinueSigning(ctx context.Context, templateHex string, passwords []string) (*UnlockResult, error) {
	tpl, err := DecodeTemplate(templateHex)
	if err != nil {
		return nil, err
	}
	return finishSigning(ctx, e.Core(), tpl, passwords)
}

func finishSigning(ctx context.Context, core Core, tpl *chaincore.Template, passwords []string) (*UnlockResult, error) {
	outcome, err := multiSign(ctx, core, tpl, passwords)
	if err != nil {
		return nil, err
	}

	if !outcome.Complete() {
		hexTpl, err := EncodeTemplate(outcome.Template())
		if err != nil {
			return nil, err
		}
		return &UnlockResult{Status: StatusSign, Hex: hexTpl, Template: outcome.Template()}, nil
	}

	txID, err := core.SubmitTransaction(ctx, outcome.Template().RawTransaction)
	if err != nil {
		return nil, err
	}
	return &UnlockResult{Status: StatusSubmitted, TxID: txID}, nil
}
