// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aplane-algo/equity/internal/contracts"
	"github.com/aplane-algo/equity/internal/engine"
	"github.com/aplane-algo/equity/internal/inputs"
	"github.com/aplane-algo/equity/internal/template"
)

var (
	errNoSpend  = errors.New("no contract selected (use 'spend' first)")
	errNoClause = errors.New("no clause selected (use 'clause' first)")
)

// Session is the contract output being unlocked and the inputs collected for it.
type Session struct {
	Contract *contracts.Contract
	Spend    template.ContractSpend
	Clause   string
	Inputs   *inputs.Map
}

// NewSession returns an empty session.
func NewSession() *Session {
	m, _ := inputs.NewMap(nil)
	return &Session{Inputs: m}
}

// SetSpend selects the locked output to unlock. args are the contract's
// parameter values in declaration order. The clause and inputs are cleared.
func (s *Session) SetSpend(outputID, assetID, amount, contractName string, args []string) error {
	c, err := contracts.Get(contractName)
	if err != nil {
		return err
	}
	if len(args) != len(c.Params) {
		return fmt.Errorf("%s takes %d parameters, got %d", c.Name, len(c.Params), len(args))
	}
	n, err := strconv.ParseUint(amount, 10, 64)
	if err != nil || n == 0 {
		return fmt.Errorf("%w: amount %q", inputs.ErrInvalidValue, amount)
	}
	for _, id := range []string{outputID, assetID} {
		if err := inputs.ValidateID(id); err != nil {
			return err
		}
	}
	for i, p := range c.Params {
		if err := inputs.ValidateValue(p.Type, args[i]); err != nil {
			return fmt.Errorf("parameter %s: %w", p.Name, err)
		}
	}

	s.Contract = c
	s.Spend = template.ContractSpend{OutputID: outputID, AssetID: assetID, Amount: n, Args: args}
	s.Clause = ""
	s.Inputs, _ = inputs.NewMap(nil)
	return nil
}

// SetClause picks the clause to unlock through.
func (s *Session) SetClause(name string) error {
	if s.Contract == nil {
		return errNoSpend
	}
	if _, err := s.Contract.Clause(name); err != nil {
		return err
	}
	s.Clause = name
	return nil
}

// ClauseKey returns "<Contract>.<clause>", or "" until both are chosen.
func (s *Session) ClauseKey() string {
	if s.Contract == nil || s.Clause == "" {
		return ""
	}
	return s.Contract.ClauseKey(s.Clause)
}

// InputStatus is one input the selected clause reads.
type InputStatus struct {
	Path  inputs.Path
	Value string
	Set   bool
}

// Required lists the inputs the selected clause reads, in the order it reads them.
func (s *Session) Required() ([]InputStatus, error) {
	if s.Contract == nil {
		return nil, errNoSpend
	}
	if s.Clause == "" {
		return nil, errNoClause
	}
	paths, err := s.Contract.UnlockInputs(s.Clause)
	if err != nil {
		return nil, err
	}
	out := make([]InputStatus, len(paths))
	for i, p := range paths {
		v, err := s.Inputs.Value(p)
		out[i] = InputStatus{Path: p, Value: v, Set: err == nil}
	}
	return out, nil
}

// Request assembles an unlock request from the session.
func (s *Session) Request(passwords []string) (engine.UnlockRequest, error) {
	if s.Contract == nil {
		return engine.UnlockRequest{}, errNoSpend
	}
	if s.Clause == "" {
		return engine.UnlockRequest{}, errNoClause
	}
	return engine.UnlockRequest{
		ClauseKey: s.ClauseKey(),
		Contract:  s.Spend,
		Inputs:    s.Inputs,
		Passwords: passwords,
	}, nil
}
