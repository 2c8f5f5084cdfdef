// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

// Transaction commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aplane-algo/equity/internal/command"
	"github.com/aplane-algo/equity/internal/engine"
	"github.com/aplane-algo/equity/internal/template"
	"github.com/aplane-algo/equity/internal/util"
)

func (r *REPLState) cmdActions(_ []string, ctx *command.Context) error {
	req, err := r.Session.Request(nil)
	if err != nil {
		return err
	}
	actions, err := r.Engine.BuildUnlockActions(ctx.Context(), req)
	if err != nil {
		return err
	}
	renderActions(ctx.Writer(), actions, r.Engine.GasAssetID)
	return nil
}

func (r *REPLState) cmdUnlock(args []string, ctx *command.Context) error {
	n, err := passwordCount(args, 0)
	if err != nil {
		return err
	}
	req, err := r.Session.Request(nil)
	if err != nil {
		return err
	}

	// Build before prompting so input mistakes surface without typing passwords.
	actions, err := r.Engine.BuildUnlockActions(ctx.Context(), req)
	if err != nil {
		return err
	}
	renderActions(ctx.Writer(), actions, r.Engine.GasAssetID)

	passwords, err := r.collectPasswords(n)
	if err != nil {
		return err
	}
	res, err := r.Engine.CreateUnlockingTx(ctx.Context(), actions, passwords)
	if err != nil {
		return err
	}
	printUnlockResult(ctx.Writer(), res)
	return nil
}

func (r *REPLState) cmdSign(args []string, ctx *command.Context) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: sign <template-hex> [password-count]")
	}
	n, err := passwordCount(args, 1)
	if err != nil {
		return err
	}
	if _, err := engine.DecodeTemplate(args[0]); err != nil {
		return err
	}
	passwords, err := r.collectPasswords(n)
	if err != nil {
		return err
	}
	res, err := r.Engine.ContinueSigning(ctx.Context(), args[0], passwords)
	if err != nil {
		return err
	}
	printUnlockResult(ctx.Writer(), res)
	return nil
}

func (r *REPLState) cmdLock(args []string, ctx *command.Context) error {
	if len(args) < 4 || len(args) > 6 {
		return fmt.Errorf("usage: lock <program> <assetID> <amount> <accountID> [gas [unit]]")
	}
	amount, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[2], err)
	}
	req := engine.LockRequest{
		Value:   template.LockValue{AccountID: args[3], AssetID: args[1], Amount: amount},
		Program: args[0],
	}
	if len(args) > 4 {
		req.Gas = args[4]
	}
	if len(args) > 5 {
		req.GasUnit = args[5]
	}

	actions, err := r.Engine.LockActions(req)
	if err != nil {
		return err
	}
	renderActions(ctx.Writer(), actions, r.Engine.GasAssetID)

	req.Password, err = r.Password(args[3])
	if err != nil {
		return err
	}
	res, err := r.Engine.CreateLockingTx(ctx.Context(), actions, req.Password)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ctx.Writer(), "%s %s\n", util.Styled(util.SuccessStyle, "Locked:"), res.TransactionID)
	return nil
}

// passwordCount reads the optional password count at args[i]; the default is 1.
func passwordCount(args []string, i int) (int, error) {
	if len(args) <= i {
		return 1, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid password count %q", args[i])
	}
	return n, nil
}

// collectPasswords asks for n passwords labelled key-1 through key-n.
func (r *REPLState) collectPasswords(n int) ([]string, error) {
	passwords := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		pw, err := r.Password(fmt.Sprintf("key-%d", i))
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

func printUnlockResult(w io.Writer, res *engine.UnlockResult) {
	switch res.Status {
	case engine.StatusSubmitted:
		_, _ = fmt.Fprintf(w, "%s %s\n", util.Styled(util.SuccessStyle, "Submitted:"), res.TxID)
	case engine.StatusSign:
		_, _ = fmt.Fprintln(w, util.Styled(util.WarningStyle, "More signatures needed. Pass this to the next signer ('sign <hex>'):"))
		_, _ = fmt.Fprintln(w, res.Hex)
	}
}
