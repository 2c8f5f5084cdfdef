// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/aplane-algo/equity/internal/action"
	"github.com/aplane-algo/equity/internal/inputs"
	"github.com/aplane-algo/equity/internal/template"
)

// UnlockRequest is everything needed to spend a contract through one clause.
type UnlockRequest struct {
	// ClauseKey is "<Contract>.<clause>".
	ClauseKey string
	Contract  template.ContractSpend
	// Clause overrides the clause shape taken from the contract catalog.
	Clause    *template.ClauseInfo
	Inputs    *inputs.Map
	Passwords []string
}

// LockRequest locks value from an account under a contract program.
type LockRequest struct {
	Value   template.LockValue
	Program string
	// Gas is a decimal amount in GasUnit; empty uses the engine default.
	Gas      string
	GasUnit  string
	Password string
}

// BuildUnlockActions selects the clause's template and builds its action list.
// An unknown clause key fails before any call to the core.
func (e *Engine) BuildUnlockActions(ctx context.Context, req UnlockRequest) ([]action.Action, error) {
	sel, err := template.Select(req.ClauseKey)
	if err != nil {
		return nil, err
	}
	tpl, err := sel.Resolve(req.Contract)
	if err != nil {
		return nil, err
	}

	clause, err := clauseInfo(req)
	if err != nil {
		return nil, err
	}

	inputMap := req.Inputs
	if inputMap == nil {
		inputMap, _ = inputs.NewMap(nil)
	}
	sc := template.SpendContext{
		Contract:   req.Contract,
		Clause:     clause,
		Inputs:     e.withDefaultGasUnit(inputMap),
		GasAssetID: e.GasAssetID,
		DefaultGas: e.DefaultGas,
	}
	return template.BuildActions(ctx, tpl, sc, e.Core())
}

// Unlock builds, signs and, when fully signed, submits an unlocking transaction.
func (e *Engine) Unlock(ctx context.Context, req UnlockRequest) (*UnlockResult, error) {
	actions, err := e.BuildUnlockActions(ctx, req)
	if err != nil {
		return nil, err
	}
	return e.CreateUnlockingTx(ctx, actions, req.Passwords)
}

// LockActions builds the action list for req without calling the core.
func (e *Engine) LockActions(req LockRequest) ([]action.Action, error) {
	amount, unit := req.Gas, req.GasUnit
	if amount == "" {
		amount = e.DefaultGas
	}
	if unit == "" {
		unit = e.DefaultGasUnit
	}
	if amount == "" {
		return nil, fmt.Errorf("%w: gas", inputs.ErrMissingInput)
	}
	neu, err := inputs.GasNeu(amount, unit)
	if err != nil {
		return nil, fmt.Errorf("%w: gas: %v", inputs.ErrInvalidValue, err)
	}
	gas := template.SpendAccountAction(e.GasAssetID, neu, req.Value.AccountID)
	return template.LockActions(req.Value, req.Program, gas)
}

// Lock builds, signs and submits a locking transaction.
func (e *Engine) Lock(ctx context.Context, req LockRequest) (*LockResult, error) {
	actions, err := e.LockActions(req)
	if err != nil {
		return nil, err
	}
	return e.CreateLockingTx(ctx, actions, req.Password)
}

func clauseInfo(req UnlockRequest) (template.ClauseInfo, error) {
	if req.Clause != nil {
		return *req.Clause, nil
	}
	contractName, clause, ok := strings.Cut(req.ClauseKey, ".")
	if !ok {
		return template.ClauseInfo{}, fmt.Errorf("%w: %q", ErrInvalidClauseKey, req.ClauseKey)
	}
	return template.ClauseInfoFor(contractName, clause)
}

// withDefaultGasUnit fills unlockValue.gasInput.btmUnitInput from the engine
// default when the map leaves it unset. The caller's map is not modified.
func (e *Engine) withDefaultGasUnit(m *inputs.Map) *inputs.Map {
	unitPath := inputs.UnlockPath(inputs.GasInput, inputs.BtmUnitInput)
	if e.DefaultGasUnit == "" || m.Has(unitPath) {
		return m
	}
	c := m.Clone()
	_ = c.Set(unitPath, e.DefaultGasUnit)
	return c
}
