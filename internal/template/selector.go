// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package template

import (
	"errors"
	"fmt"

	"github.com/aplane-algo/equity/internal/util"
)

var (
	// ErrUnknownTemplate indicates a clause key with no registered template.
	ErrUnknownTemplate = errors.New("no action template for clause")

	// ErrArgIndex indicates a contract spend with too few arguments for its template.
	ErrArgIndex = errors.New("contract argument out of range")
)

// noArg marks a selection that takes no program from the contract arguments.
const noArg = -1

// Selection is the registry entry for one clause key.
type Selection struct {
	Key  string
	Kind Kind
	// ArgIndex is the position in ContractSpend.Args holding the control
	// program the template locks value under, or -1.
	ArgIndex int
}

// Resolve binds the selection to a contract instance.
func (s Selection) Resolve(spend ContractSpend) (Template, error) {
	tpl := Template{Kind: s.Kind}
	if s.ArgIndex == noArg {
		return tpl, nil
	}
	if s.ArgIndex >= len(spend.Args) {
		return Template{}, fmt.Errorf("%w: %s needs args[%d], contract has %d", ErrArgIndex, s.Key, s.ArgIndex, len(spend.Args))
	}
	tpl.ControlProgram = spend.Args[s.ArgIndex]
	return tpl, nil
}

var selections = util.NewStringRegistry[Selection]()

func register(kind Kind, argIndex int, keys ...string) {
	for _, key := range keys {
		if !selections.Set(key, Selection{Key: key, Kind: kind, ArgIndex: argIndex}) {
			panic(fmt.Sprintf("template for %s registered twice", key))
		}
	}
}

func init() {
	register(UnlockValue, noArg,
		"LockWithPublicKey.spend",
		"LockWithPublicKeyHash.spend",
		"LockWithMultiSig.spend",
		"TradeOffer.cancel",
		"RevealPreimage.reveal",
	)
	register(LockValueWithProgram, 2, "Escrow.approve")
	register(LockValueWithProgram, 1, "Escrow.reject")
	register(LockValueWithProgram, 2, "CallOption.expire")
	register(LockValueWithProgram, 3, "LoanCollateral.default")
	register(LockPaymentUnlockValue, 2, "TradeOffer.trade", "CallOption.exercise")
	register(LockPaymentLockValue, 3, "LoanCollateral.repay")
}

// Select looks up the template for "<ContractType>.<clauseName>".
func Select(clauseKey string) (Selection, error) {
	s, ok := selections.Get(clauseKey)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, clauseKey)
	}
	return s, nil
}

// Keys returns every registered clause key, sorted.
func Keys() []string {
	return selections.Keys()
}
