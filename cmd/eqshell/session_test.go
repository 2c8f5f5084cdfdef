// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"errors"
	"testing"

	"github.com/aplane-algo/equity/internal/contracts"
	"github.com/aplane-algo/equity/internal/inputs"
	"github.com/aplane-algo/equity/internal/testutil"
)

func escrowArgs(t *testing.T) []string {
	t.Helper()
	return []string{testutil.GenerateTestPublicKey(t), "0014aa", "0014bb"}
}

func TestSession_SetSpend(t *testing.T) {
	s := NewSession()
	if err := s.SetSpend(testutil.OutputID(1), testutil.AssetID(1), "100", "Escrow", escrowArgs(t)); err != nil {
		t.Fatalf("SetSpend() error = %v", err)
	}
	if s.Contract.Name != "Escrow" || s.Spend.Amount != 100 || len(s.Spend.Args) != 3 {
		t.Errorf("session = %+v", s)
	}
	if s.ClauseKey() != "" {
		t.Errorf("ClauseKey() = %q before a clause is chosen", s.ClauseKey())
	}
}

func TestSession_SetSpendErrors(t *testing.T) {
	pub := testutil.GenerateTestPublicKey(t)

	tests := []struct {
		name     string
		outputID string
		amount   string
		contract string
		args     []string
		wantErr  error
	}{
		{"unknown contract", testutil.OutputID(1), "1", "Nope", nil, contracts.ErrUnknownContract},
		{"zero amount", testutil.OutputID(1), "0", "Escrow", []string{pub, "00", "00"}, inputs.ErrInvalidValue},
		{"bad output id", "abcd", "1", "Escrow", []string{pub, "00", "00"}, inputs.ErrInvalidValue},
		{"bad program arg", testutil.OutputID(1), "1", "Escrow", []string{pub, "zz", "00"}, inputs.ErrInvalidValue},
		{"bad key arg", testutil.OutputID(1), "1", "Escrow", []string{"00", "00", "00"}, inputs.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSession().SetSpend(tt.outputID, testutil.AssetID(1), tt.amount, tt.contract, tt.args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SetSpend() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := NewSession().SetSpend(testutil.OutputID(1), testutil.AssetID(1), "1", "Escrow", []string{pub}); err == nil {
		t.Error("SetSpend() accepted the wrong number of arguments")
	}
}

func TestSession_ClauseAndRequired(t *testing.T) {
	s := NewSession()
	if err := s.SetClause("approve"); !errors.Is(err, errNoSpend) {
		t.Errorf("SetClause() before spend error = %v", err)
	}
	if _, err := s.Required(); !errors.Is(err, errNoSpend) {
		t.Errorf("Required() before spend error = %v", err)
	}

	if err := s.SetSpend(testutil.OutputID(1), testutil.AssetID(1), "5", "Escrow", escrowArgs(t)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Request(nil); !errors.Is(err, errNoClause) {
		t.Errorf("Request() before clause error = %v", err)
	}
	if err := s.SetClause("spend"); !errors.Is(err, contracts.ErrUnknownClause) {
		t.Errorf("SetClause(spend) error = %v", err)
	}
	if err := s.SetClause("approve"); err != nil {
		t.Fatalf("SetClause() error = %v", err)
	}
	if s.ClauseKey() != "Escrow.approve" {
		t.Errorf("ClauseKey() = %q", s.ClauseKey())
	}

	_ = s.Inputs.SetString("unlockValue.accountInput", "acc1")
	required, err := s.Required()
	if err != nil {
		t.Fatalf("Required() error = %v", err)
	}
	if len(required) != 3 {
		t.Fatalf("Required() = %+v, want 3 inputs", required)
	}
	if !required[0].Set || required[0].Value != "acc1" || required[0].Path.String() != "unlockValue.accountInput" {
		t.Errorf("account input = %+v", required[0])
	}
	if required[2].Set || required[2].Path.String() != "clauseParameters.approve.sig.signatureInput" {
		t.Errorf("signature input = %+v", required[2])
	}

	req, err := s.Request([]string{"pw"})
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if req.ClauseKey != "Escrow.approve" || req.Inputs != s.Inputs || len(req.Passwords) != 1 {
		t.Errorf("Request() = %+v", req)
	}

	// Choosing a new output starts over.
	if err := s.SetSpend(testutil.OutputID(2), testutil.AssetID(1), "5", "Escrow", escrowArgs(t)); err != nil {
		t.Fatal(err)
	}
	if s.Clause != "" || s.Inputs.Len() != 0 {
		t.Errorf("SetSpend() kept clause %q and %d inputs", s.Clause, s.Inputs.Len())
	}
}
