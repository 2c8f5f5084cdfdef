// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package action defines the ledger actions a transaction is built from.
//
// A build request is an ordered list of actions. The core applies them in
// sequence to balance the transaction, so callers must treat the order of a
// list as significant.
package action

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Wire type tags understood by the core's build-transaction endpoint.
const (
	TypeSpendFromAccount   = "spend_account"
	TypeSpendUnspentOutput = "spend_account_unspent_output"
	TypeControlWithProgram = "control_program"
)

// ErrUnknownType is returned when decoding an action with an unrecognised type tag.
var ErrUnknownType = errors.New("unknown action type")

// Action is one of SpendFromAccount, SpendUnspentOutput or ControlWithProgram.
// The set is closed: the interface cannot be implemented outside this package.
type Action interface {
	// Type returns the wire type tag.
	Type() string
	// String returns a short human-readable description.
	String() string

	isAction()
}

// SpendFromAccount spends Amount of AssetID from the account's balance.
type SpendFromAccount struct {
	AssetID   string
	Amount    uint64
	AccountID string
}

// SpendUnspentOutput spends a specific unspent output (the contract being unlocked).
type SpendUnspentOutput struct {
	OutputID string
}

// ControlWithProgram locks Amount of AssetID under ControlProgram.
type ControlWithProgram struct {
	AssetID        string
	Amount         uint64
	ControlProgram string
}

func (SpendFromAccount) isAction()   {}
func (SpendUnspentOutput) isAction() {}
func (ControlWithProgram) isAction() {}

func (SpendFromAccount) Type() string   { return TypeSpendFromAccount }
func (SpendUnspentOutput) Type() string { return TypeSpendUnspentOutput }
func (ControlWithProgram) Type() string { return TypeControlWithProgram }

func (a SpendFromAccount) String() string {
	return fmt.Sprintf("spend %d of %s from account %s", a.Amount, shorten(a.AssetID), a.AccountID)
}

func (a SpendUnspentOutput) String() string {
	return fmt.Sprintf("spend output %s", shorten(a.OutputID))
}

func (a ControlWithProgram) String() string {
	return fmt.Sprintf("control %d of %s with program %s", a.Amount, shorten(a.AssetID), shorten(a.ControlProgram))
}

// wireAction is the JSON shape of every action in a build request.
// Fields irrelevant to a given type are omitted.
type wireAction struct {
	Type           string  `json:"type"`
	AssetID        string  `json:"asset_id,omitempty"`
	Amount         *uint64 `json:"amount,omitempty"`
	AccountID      string  `json:"account_id,omitempty"`
	OutputID       string  `json:"output_id,omitempty"`
	ControlProgram string  `json:"control_program,omitempty"`
}

func (a SpendFromAccount) MarshalJSON() ([]byte, error) {
	amount := a.Amount
	return json.Marshal(wireAction{
		Type:      TypeSpendFromAccount,
		AssetID:   a.AssetID,
		Amount:    &amount,
		AccountID: a.AccountID,
	})
}

func (a SpendUnspentOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireAction{
		Type:     TypeSpendUnspentOutput,
		OutputID: a.OutputID,
	})
}

func (a ControlWithProgram) MarshalJSON() ([]byte, error) {
	amount := a.Amount
	return json.Marshal(wireAction{
		Type:           TypeControlWithProgram,
		AssetID:        a.AssetID,
		Amount:         &amount,
		ControlProgram: a.ControlProgram,
	})
}

// Decode parses a single action from its wire JSON.
func Decode(data []byte) (Action, error) {
	var w wireAction
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to decode action: %w", err)
	}

	var amount uint64
	if w.Amount != nil {
		amount = *w.Amount
	}

	switch w.Type {
	case TypeSpendFromAccount:
		return SpendFromAccount{AssetID: w.AssetID, Amount: amount, AccountID: w.AccountID}, nil
	case TypeSpendUnspentOutput:
		return SpendUnspentOutput{OutputID: w.OutputID}, nil
	case TypeControlWithProgram:
		return ControlWithProgram{AssetID: w.AssetID, Amount: amount, ControlProgram: w.ControlProgram}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, w.Type)
	}
}

// DecodeList parses a JSON array of actions, preserving order.
func DecodeList(data []byte) ([]Action, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode action list: %w", err)
	}
	actions := make([]Action, 0, len(raw))
	for i, r := range raw {
		a, err := Decode(r)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// shorten truncates long hex identifiers for display.
func shorten(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:8] + "…" + s[len(s)-6:]
}
