// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package engine

import (
	"context"

	"github.com/aplane-algo/equity/internal/chaincore"
	"github.com/aplane-algo/equity/internal/util"
)

// SignOutcome is Complete or Partial.
type SignOutcome interface {
	// Template returns the most recently signed template.
	Template() *chaincore.Template
	// Complete reports whether the core considers the signatures sufficient.
	Complete() bool

	isSignOutcome()
}

// Complete is a fully signed template, ready to submit.
type Complete struct {
	Tpl *chaincore.Template
}

// Partial is a template still missing signatures.
type Partial struct {
	Tpl *chaincore.Template
}

func (c Complete) Template() *chaincore.Template { return c.Tpl }
func (p Partial) Template() *chaincore.Template  { return p.Tpl }
func (Complete) Complete() bool                  { return true }
func (Partial) Complete() bool                   { return false }
func (Complete) isSignOutcome()                  {}
func (Partial) isSignOutcome()                   {}

// MultiSign signs tpl with each password, starting from the last, feeding
// each call the template returned by the previous one. It stops as soon as
// the core reports signing complete, even if passwords remain. Running out
// of passwords first is not an error: the result is Partial. The passwords
// slice is not modified.
func (e *Engine) MultiSign(ctx context.Context, tpl *chaincore.Template, passwords []string) (SignOutcome, error) {
	return multiSign(ctx, e.Core(), tpl, passwords)
}

func multiSign(ctx context.Context, core Core, tpl *chaincore.Template, passwords []string) (SignOutcome, error) {
	current := tpl
	for i := len(passwords) - 1; i >= 0; i-- {
		res, err := core.SignTransaction(ctx, passwords[i], current)
		if err != nil {
			return nil, err
		}
		current = res.Transaction
		util.Debug("signed", "password_index", i, "complete", res.SignComplete)
		if res.SignComplete {
			return Complete{Tpl: current}, nil
		}
	}
	return Partial{Tpl: current}, nil
}
