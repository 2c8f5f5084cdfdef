// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package template turns a contract clause and the user's inputs into the
// ordered action list the core builds an unlocking transaction from.
//
// There are four template kinds. Select maps a clause key to one of them,
// and BuildActions produces its action list:
//
//	UnlockValue             unspent, control(dest, receiver), gas
//	LockValueWithProgram    unspent, control(contract value, program), gas
//	LockPaymentUnlockValue  unspent, control(payment, program), spend(payment), gas, control(dest, receiver)
//	LockPaymentLockValue    unspent, control(payment, program), control(dest, receiver), spend(payment), gas
//
// The core balances a transaction by applying actions in order, so these
// orderings are part of the wire contract.
package template

import (
	"context"
	"fmt"

	"github.com/aplane-algo/equity/internal/action"
	"github.com/aplane-algo/equity/internal/chaincore"
	"github.com/aplane-algo/equity/internal/contracts"
	"github.com/aplane-algo/equity/internal/inputs"
	"github.com/aplane-algo/equity/internal/util"
)

// Kind is one of the four template variants.
type Kind int

const (
	UnlockValue Kind = iota + 1
	LockValueWithProgram
	LockPaymentUnlockValue
	LockPaymentLockValue
)

func (k Kind) String() string {
	switch k {
	case UnlockValue:
		return "UnlockValue"
	case LockValueWithProgram:
		return "LockValueWithProgram"
	case LockPaymentUnlockValue:
		return "LockPaymentUnlockValue"
	case LockPaymentLockValue:
		return "LockPaymentLockValue"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Template is a resolved selection: the kind plus, for the kinds that lock
// value under a contract-supplied program, that program.
type Template struct {
	Kind           Kind
	ControlProgram string
}

// ClauseValue is a value declared by a clause.
type ClauseValue struct {
	Name string
}

// ClauseInfo identifies the selected clause and its declared values.
type ClauseInfo struct {
	Name   string
	Values []ClauseValue
}

// ClauseInfoFor derives ClauseInfo from the contract catalog.
func ClauseInfoFor(contractName, clause string) (ClauseInfo, error) {
	c, err := contracts.Get(contractName)
	if err != nil {
		return ClauseInfo{}, err
	}
	cl, err := c.Clause(clause)
	if err != nil {
		return ClauseInfo{}, err
	}
	info := ClauseInfo{Name: cl.Name}
	for _, v := range cl.Values {
		info.Values = append(info.Values, ClauseValue{Name: v.Name})
	}
	return info, nil
}

// ContractSpend is the locked contract output being spent.
type ContractSpend struct {
	AssetID  string
	Amount   uint64
	OutputID string
	// Args are the contract's arguments in declaration order.
	Args []string
}

// SpendContext is everything a template reads while building actions.
type SpendContext struct {
	Contract ContractSpend
	Clause   ClauseInfo
	Inputs   *inputs.Map

	// GasAssetID is the asset fees are paid in.
	GasAssetID string
	// DefaultGas is used when unlockValue.gasInput is unset. Empty means gas is required.
	DefaultGas string
}

// ReceiverCreator mints a fresh control program for an account.
// *chaincore.Client implements it.
type ReceiverCreator interface {
	CreateReceiver(ctx context.Context, accountID string) (*chaincore.Receiver, error)
}

// BuildActions produces the ordered action list for tpl. All inputs are read
// before the receiver is created, so a shape error never reaches the core.
// At most one receiver is created per call.
func BuildActions(ctx context.Context, tpl Template, sc SpendContext, receivers ReceiverCreator) ([]action.Action, error) {
	switch tpl.Kind {
	case UnlockValue:
		return buildUnlockValue(ctx, sc, receivers)
	case LockValueWithProgram:
		return buildLockValueWithProgram(tpl, sc)
	case LockPaymentUnlockValue:
		return buildLockPaymentUnlockValue(ctx, tpl, sc, receivers)
	case LockPaymentLockValue:
		return buildLockPaymentLockValue(ctx, tpl, sc, receivers)
	default:
		return nil, fmt.Errorf("%w: kind %s", ErrUnknownTemplate, tpl.Kind)
	}
}

func buildUnlockValue(ctx context.Context, sc SpendContext, receivers ReceiverCreator) ([]action.Action, error) {
	dest, err := DestinationInfo(sc)
	if err != nil {
		return nil, err
	}
	gas, err := GasAction(sc)
	if err != nil {
		return nil, err
	}

	program, err := receiverProgram(ctx, receivers, dest.AccountID)
	if err != nil {
		return nil, err
	}

	return []action.Action{
		UnspentOutputAction(sc),
		RecipientAction(dest.AssetID, dest.Amount, program),
		gas,
	}, nil
}

func buildLockValueWithProgram(tpl Template, sc SpendContext) ([]action.Action, error) {
	gas, err := GasAction(sc)
	if err != nil {
		return nil, err
	}
	return []action.Action{
		UnspentOutputAction(sc),
		RecipientAction(sc.Contract.AssetID, sc.Contract.Amount, tpl.ControlProgram),
		gas,
	}, nil
}

func buildLockPaymentUnlockValue(ctx context.Context, tpl Template, sc SpendContext, receivers ReceiverCreator) ([]action.Action, error) {
	pay, err := PaymentInfo(sc)
	if err != nil {
		return nil, err
	}
	gas, err := GasAction(sc)
	if err != nil {
		return nil, err
	}
	dest, err := DestinationInfo(sc)
	if err != nil {
		return nil, err
	}

	program, err := receiverProgram(ctx, receivers, dest.AccountID)
	if err != nil {
		return nil, err
	}

	return []action.Action{
		UnspentOutputAction(sc),
		RecipientAction(pay.AssetID, pay.Amount, tpl.ControlProgram),
		SpendAccountAction(pay.AssetID, pay.Amount, pay.AccountID),
		gas,
		RecipientAction(dest.AssetID, dest.Amount, program),
	}, nil
}

// Gas comes last here, after the receiver control, unlike LockPaymentUnlockValue.
func buildLockPaymentLockValue(ctx context.Context, tpl Template, sc SpendContext, receivers ReceiverCreator) ([]action.Action, error) {
	pay, err := PaymentInfo(sc)
	if err != nil {
		return nil, err
	}
	dest, err := DestinationInfo(sc)
	if err != nil {
		return nil, err
	}
	gas, err := GasAction(sc)
	if err != nil {
		return nil, err
	}

	program, err := receiverProgram(ctx, receivers, dest.AccountID)
	if err != nil {
		return nil, err
	}

	return []action.Action{
		UnspentOutputAction(sc),
		RecipientAction(pay.AssetID, pay.Amount, tpl.ControlProgram),
		RecipientAction(dest.AssetID, dest.Amount, program),
		SpendAccountAction(pay.AssetID, pay.Amount, pay.AccountID),
		gas,
	}, nil
}

func receiverProgram(ctx context.Context, receivers ReceiverCreator, accountID string) (string, error) {
	util.Debug("creating receiver", "account", accountID)
	r, err := receivers.CreateReceiver(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("failed to create receiver for %s: %w", accountID, err)
	}
	return r.ControlProgram, nil
}
