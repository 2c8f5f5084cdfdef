// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package contracts describes the standard Equity contracts: their
// parameters, clauses and the values each clause locks or unlocks.
//
// The catalog is static. It tells the shell which clause names are valid
// for a contract, which inputs a clause needs, and how many values a clause
// moves (the payment-taking clauses move exactly two).
package contracts

import (
	"errors"
	"fmt"

	"github.com/aplane-algo/equity/internal/inputs"
	"github.com/aplane-algo/equity/internal/util"
)

var (
	// ErrUnknownContract indicates a contract name not in the catalog.
	ErrUnknownContract = errors.New("unknown contract")

	// ErrUnknownClause indicates a clause name the contract does not declare.
	ErrUnknownClause = errors.New("unknown clause")
)

// Param is a contract or clause parameter.
type Param struct {
	Name        string
	Type        inputs.Type
	Description string
}

// ValueKind says how a clause disposes of a value.
type ValueKind int

const (
	// Unlocked values leave the contract to the unlocker's destination.
	Unlocked ValueKind = iota
	// Relocked values are the contract's value locked under a new program.
	Relocked
	// Payment values are supplied by the unlocker and locked under a program.
	Payment
)

func (k ValueKind) String() string {
	switch k {
	case Unlocked:
		return "unlock"
	case Relocked:
		return "lock"
	case Payment:
		return "payment"
	default:
		return "unknown"
	}
}

// Value is a value statement inside a clause.
type Value struct {
	Name string
	Kind ValueKind
	// Program names the contract parameter whose program receives the value.
	// Empty for Unlocked values.
	Program string
}

// Clause is one spending path of a contract.
type Clause struct {
	Name   string
	Params []Param
	Values []Value
}

// Contract is a compiled Equity contract template.
type Contract struct {
	Name        string
	Description string
	Params      []Param
	Clauses     []Clause
}

// Clause returns the named clause.
func (c *Contract) Clause(name string) (*Clause, error) {
	for i := range c.Clauses {
		if c.Clauses[i].Name == name {
			return &c.Clauses[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrUnknownClause, c.Name, name)
}

// ClauseNames returns clause names in declaration order.
func (c *Contract) ClauseNames() []string {
	names := make([]string, len(c.Clauses))
	for i, cl := range c.Clauses {
		names[i] = cl.Name
	}
	return names
}

// ParamIndex returns the position of the named contract parameter, or -1.
// Positions match the order of a spend's argument list.
func (c *Contract) ParamIndex(name string) int {
	for i, p := range c.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// ClauseKey returns the "<Contract>.<clause>" identity used to select a template.
func (c *Contract) ClauseKey(clause string) string {
	return c.Name + "." + clause
}

// UnlockInputs lists the input paths a user must fill to spend through the
// named clause: the destination and gas inputs, plus the payment value
// inputs when the clause takes a payment.
func (c *Contract) UnlockInputs(clause string) ([]inputs.Path, error) {
	cl, err := c.Clause(clause)
	if err != nil {
		return nil, err
	}

	paths := []inputs.Path{
		inputs.UnlockPath(inputs.AccountInput),
		inputs.UnlockPath(inputs.GasInput),
	}
	for _, p := range cl.Params {
		paths = append(paths, inputs.ClauseParameterPath(cl.Name, p.Name, p.Type))
	}
	for _, v := range cl.Values {
		if v.Kind != Payment {
			continue
		}
		paths = append(paths,
			inputs.ClauseValuePath(cl.Name, v.Name, inputs.ValueInput, inputs.AccountInput),
			inputs.ClauseValuePath(cl.Name, v.Name, inputs.ValueInput, inputs.AssetInput),
			inputs.ClauseValuePath(cl.Name, v.Name, inputs.ValueInput, inputs.AmountInput),
		)
	}
	return paths, nil
}

var catalog = util.NewStringRegistry[*Contract]()

func mustRegister(c *Contract) {
	if !catalog.Set(c.Name, c) {
		panic(fmt.Sprintf("contract %s registered twice", c.Name))
	}
}

// Get returns the named contract.
func Get(name string) (*Contract, error) {
	c, ok := catalog.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownContract, name)
	}
	return c, nil
}

// Names returns all contract names, sorted.
func Names() []string {
	return catalog.Keys()
}

// All returns all contracts, sorted by name.
func All() []*Contract {
	return catalog.Values()
}
