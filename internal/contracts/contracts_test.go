// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package contracts

import (
	"errors"
	"testing"

	"github.com/aplane-algo/equity/internal/inputs"
)

func TestCatalog_Names(t *testing.T) {
	want := []string{
		"CallOption", "Escrow", "LoanCollateral", "LockWithMultiSig",
		"LockWithPublicKey", "LockWithPublicKeyHash", "RevealPreimage", "TradeOffer",
	}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("Nope"); !errors.Is(err, ErrUnknownContract) {
		t.Errorf("Get() error = %v, want ErrUnknownContract", err)
	}
}

func TestClause_Unknown(t *testing.T) {
	c, err := Get("Escrow")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Clause("spend"); !errors.Is(err, ErrUnknownClause) {
		t.Errorf("Clause() error = %v, want ErrUnknownClause", err)
	}
}

// Every program a clause value is locked under must name a contract parameter.
func TestCatalog_ValueProgramsAreParams(t *testing.T) {
	for _, c := range All() {
		for _, cl := range c.Clauses {
			for _, v := range cl.Values {
				if v.Kind == Unlocked {
					if v.Program != "" {
						t.Errorf("%s: unlocked value %s has a program", c.ClauseKey(cl.Name), v.Name)
					}
					continue
				}
				idx := c.ParamIndex(v.Program)
				if idx < 0 {
					t.Errorf("%s: value %s locks under unknown param %q", c.ClauseKey(cl.Name), v.Name, v.Program)
					continue
				}
				if c.Params[idx].Type != inputs.ProgramInput {
					t.Errorf("%s: param %s is %s, want programInput", c.ClauseKey(cl.Name), v.Program, c.Params[idx].Type)
				}
			}
		}
	}
}

func TestUnlockInputs(t *testing.T) {
	c, _ := Get("TradeOffer")

	paths, err := c.UnlockInputs("trade")
	if err != nil {
		t.Fatalf("UnlockInputs() error = %v", err)
	}
	want := []string{
		"unlockValue.accountInput",
		"unlockValue.gasInput",
		"clauseValue.trade.payment.valueInput.accountInput",
		"clauseValue.trade.payment.valueInput.assetInput",
		"clauseValue.trade.payment.valueInput.amountInput",
	}
	if len(paths) != len(want) {
		t.Fatalf("UnlockInputs() = %v, want %v", paths, want)
	}
	for i, p := range paths {
		if p.String() != want[i] {
			t.Errorf("path %d = %s, want %s", i, p, want[i])
		}
		if err := p.Validate(); err != nil {
			t.Errorf("path %d invalid: %v", i, err)
		}
	}

	paths, _ = c.UnlockInputs("cancel")
	if got := paths[len(paths)-1].String(); got != "clauseParameters.cancel.sellerSig.signatureInput" {
		t.Errorf("cancel last path = %s", got)
	}
}
