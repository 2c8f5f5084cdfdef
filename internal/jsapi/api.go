// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package jsapi exposes the contract engine to JavaScript running in Goja.
//
// Functions are organized by file:
//   - api.go: API struct, registration, output
//   - contracts.go: catalog and template queries
//   - transactions.go: action building, lock, unlock and signing
//   - helpers.go: type conversion utilities
package jsapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/aplane-algo/equity/internal/engine"
)

// API provides JavaScript bindings for the engine.
type API struct {
	engine  *engine.Engine
	runtime *goja.Runtime
	verbose bool
	output  func(string)
	ctx     context.Context
}

// NewAPI creates a new JavaScript API instance.
func NewAPI(eng *engine.Engine, verbose bool, output func(string)) *API {
	return &API{
		engine:  eng,
		verbose: verbose,
		output:  output,
		ctx:     context.Background(),
	}
}

// SetContext sets the context used for core calls made from scripts.
func (a *API) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	a.ctx = ctx
}

// RegisterAll registers all API functions on the given Goja runtime.
func (a *API) RegisterAll(vm *goja.Runtime) error {
	a.runtime = vm

	// Standalone helpers (not methods on API)
	if err := vm.Set("btm", makeUnitFunc(vm, "btm")); err != nil {
		return fmt.Errorf("failed to register btm: %w", err)
	}
	if err := vm.Set("mbtm", makeUnitFunc(vm, "mbtm")); err != nil {
		return fmt.Errorf("failed to register mbtm: %w", err)
	}

	funcs := []struct {
		name string
		fn   func(goja.FunctionCall) goja.Value
	}{
		{"print", a.jsPrint},
		{"log", a.jsLog},
		{"setVerbose", a.jsSetVerbose},

		{"contracts", a.jsContracts},
		{"templates", a.jsTemplates},
		{"selectTemplate", a.jsSelectTemplate},
		{"unlockInputs", a.jsUnlockInputs},

		{"buildActions", a.jsBuildActions},
		{"unlock", a.jsUnlock},
		{"lock", a.jsLock},
		{"sign", a.jsSign},
		{"parseError", a.jsParseError},
	}
	for _, f := range funcs {
		if err := vm.Set(f.name, f.fn); err != nil {
			return fmt.Errorf("failed to register %s: %w", f.name, err)
		}
	}
	return nil
}

// output helper for internal use.
func (a *API) outputMsg(msg string) {
	if a.output != nil {
		a.output(msg)
	} else {
		fmt.Println(msg)
	}
}

// jsPrint outputs a message to the console.
func (a *API) jsPrint(call goja.FunctionCall) goja.Value {
	a.outputMsg(joinArgs(call))
	return goja.Undefined()
}

// jsLog outputs a debug message (only in verbose mode).
func (a *API) jsLog(call goja.FunctionCall) goja.Value {
	if !a.verbose {
		return goja.Undefined()
	}
	a.outputMsg("[debug] " + joinArgs(call))
	return goja.Undefined()
}

// jsSetVerbose enables or disables log() output.
func (a *API) jsSetVerbose(call goja.FunctionCall) goja.Value {
	a.requireArgs(call, 1, "setVerbose() requires a boolean argument")
	a.verbose = call.Arguments[0].ToBoolean()
	return goja.Undefined()
}

// throw raises err as a JS exception. The Go error stays reachable from
// script code through the exception's value, which parseError relies on.
func (a *API) throw(err error) {
	panic(a.runtime.NewGoError(err))
}

// joinArgs renders arguments space-separated, like console.log.
func joinArgs(call goja.FunctionCall) string {
	parts := make([]string, len(call.Arguments))
	for i, arg := range call.Arguments {
		parts[i] = fmt.Sprint(arg.Export())
	}
	return strings.Join(parts, " ")
}
