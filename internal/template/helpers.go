// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package template

import (
	"errors"
	"fmt"

	"github.com/aplane-algo/equity/internal/action"
	"github.com/aplane-algo/equity/internal/inputs"
)

// ErrClauseShape indicates a clause whose declared values do not fit the template.
var ErrClauseShape = errors.New("invalid clause shape")

// Payment is the value a payment-taking clause requires from the unlocker.
type Payment struct {
	AccountID string
	AssetID   string
	Amount    uint64
}

// Destination is where the contract's own value goes.
type Destination struct {
	AccountID string
	AssetID   string
	Amount    uint64
}

// UnspentOutputAction spends the contract output. It is the first action of every template.
func UnspentOutputAction(sc SpendContext) action.SpendUnspentOutput {
	return action.SpendUnspentOutput{OutputID: sc.Contract.OutputID}
}

// SpendAccountAction spends amount of asset from an account.
func SpendAccountAction(assetID string, amount uint64, accountID string) action.SpendFromAccount {
	return action.SpendFromAccount{AssetID: assetID, Amount: amount, AccountID: accountID}
}

// RecipientAction locks amount of asset under program.
func RecipientAction(assetID string, amount uint64, program string) action.ControlWithProgram {
	return action.ControlWithProgram{AssetID: assetID, Amount: amount, ControlProgram: program}
}

// GasAction spends the fee from the unlocking account. The amount comes from
// unlockValue.gasInput in the unit at unlockValue.gasInput.btmUnitInput.
func GasAction(sc SpendContext) (action.SpendFromAccount, error) {
	account, err := requiredValue(sc.Inputs, inputs.UnlockPath(inputs.AccountInput))
	if err != nil {
		return action.SpendFromAccount{}, err
	}

	amount := sc.Inputs.ValueOr(inputs.UnlockPath(inputs.GasInput), sc.DefaultGas)
	if amount == "" {
		return action.SpendFromAccount{}, fmt.Errorf("%w: %s", inputs.ErrMissingInput, inputs.UnlockPath(inputs.GasInput))
	}
	unit := sc.Inputs.ValueOr(inputs.UnlockPath(inputs.GasInput, inputs.BtmUnitInput), inputs.UnitBTM)

	neu, err := inputs.GasNeu(amount, unit)
	if err != nil {
		return action.SpendFromAccount{}, fmt.Errorf("%w: gas: %v", inputs.ErrInvalidValue, err)
	}
	return SpendAccountAction(sc.GasAssetID, neu, account), nil
}

// PaymentInfo reads the clause's first value as the payment. The clause must
// declare exactly two values.
func PaymentInfo(sc SpendContext) (Payment, error) {
	if len(sc.Clause.Values) != 2 {
		return Payment{}, fmt.Errorf("%w: clause %q declares %d values, want 2", ErrClauseShape, sc.Clause.Name, len(sc.Clause.Values))
	}
	clause, value := sc.Clause.Name, sc.Clause.Values[0].Name

	account, err := requiredValue(sc.Inputs, inputs.ClauseValuePath(clause, value, inputs.ValueInput, inputs.AccountInput))
	if err != nil {
		return Payment{}, err
	}
	asset, err := requiredValue(sc.Inputs, inputs.ClauseValuePath(clause, value, inputs.ValueInput, inputs.AssetInput))
	if err != nil {
		return Payment{}, err
	}
	amount, err := sc.Inputs.Uint(inputs.ClauseValuePath(clause, value, inputs.ValueInput, inputs.AmountInput))
	if err != nil {
		return Payment{}, err
	}
	return Payment{AccountID: account, AssetID: asset, Amount: amount}, nil
}

// DestinationInfo returns the contract's value and the account it should go to.
func DestinationInfo(sc SpendContext) (Destination, error) {
	account, err := requiredValue(sc.Inputs, inputs.UnlockPath(inputs.AccountInput))
	if err != nil {
		return Destination{}, err
	}
	return Destination{
		AccountID: account,
		AssetID:   sc.Contract.AssetID,
		Amount:    sc.Contract.Amount,
	}, nil
}

// requiredValue returns a validated value from the map.
func requiredValue(m *inputs.Map, p inputs.Path) (string, error) {
	if m == nil {
		return "", fmt.Errorf("%w: %s", inputs.ErrMissingInput, p)
	}
	in, err := m.Get(p)
	if err != nil {
		return "", err
	}
	if err := in.Validate(); err != nil {
		return "", err
	}
	return in.Value, nil
}
