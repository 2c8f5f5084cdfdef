// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package engine drives transactions through the chain core, independent of any UI.
//
// A locking transaction is built, signed once and submitted. An unlocking
// transaction is built and then signed with each password in turn, last
// password first, until the core reports the signatures complete; only then
// is it submitted. When the passwords run out first the partially signed
// template is handed back so other parties can add their signatures.
package engine

import (
	"context"
	"sync"

	"github.com/aplane-algo/equity/internal/action"
	"github.com/aplane-algo/equity/internal/chaincore"
)

// Core is the chain core API the engine drives. *chaincore.Client implements it.
type Core interface {
	BuildTransaction(ctx context.Context, actions []action.Action) (*chaincore.Template, error)
	SignTransaction(ctx context.Context, password string, tpl *chaincore.Template) (*chaincore.SignResult, error)
	SubmitTransaction(ctx context.Context, rawTransaction string) (string, error)
	CreateReceiver(ctx context.Context, accountID string) (*chaincore.Receiver, error)
}

// Engine holds the core connection and fee settings.
// Orchestrations share no state beyond the core, so one Engine may serve
// concurrent calls.
type Engine struct {
	mu   sync.RWMutex
	core Core

	// GasAssetID is the asset fees are paid in.
	GasAssetID string
	// DefaultGas is used when an unlock leaves unlockValue.gasInput unset.
	DefaultGas string
	// DefaultGasUnit applies to DefaultGas and to lock requests without a unit.
	DefaultGasUnit string
}

// EngineOption is a functional option for configuring the Engine
type EngineOption func(*Engine) error

// NewEngine creates an Engine that talks to core.
func NewEngine(core Core, opts ...EngineOption) (*Engine, error) {
	if core == nil {
		return nil, ErrNoCore
	}
	e := &Engine{
		core:       core,
		GasAssetID: BTMAssetID,
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// BTMAssetID is the native asset id.
const BTMAssetID = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

// WithGasAsset sets the fee asset
func WithGasAsset(assetID string) EngineOption {
	return func(e *Engine) error {
		if assetID == "" {
			return ErrNoGasAsset
		}
		e.GasAssetID = assetID
		return nil
	}
}

// WithDefaultGas sets the gas used when an unlock does not specify one
func WithDefaultGas(amount, unit string) EngineOption {
	return func(e *Engine) error {
		e.DefaultGas = amount
		e.DefaultGasUnit = unit
		return nil
	}
}

// Core returns the current core client.
func (e *Engine) Core() Core {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.core
}

// SetCore swaps the core client, e.g. after the configured URL changes.
// Calls already in flight keep the client they started with.
func (e *Engine) SetCore(core Core) {
	if core == nil {
		return
	}
	e.mu.Lock()
	e.core = core
	e.mu.Unlock()
}
