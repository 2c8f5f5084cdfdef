// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package scripting runs JavaScript against the contract engine.
// It hides the VM behind Runner so the REPL does not depend on Goja directly.
package scripting

// ScriptError represents an error that occurred during script execution.
type ScriptError struct {
	Message string
}

func (e *ScriptError) Error() string {
	return e.Message
}

// Result holds the outcome of running a script.
type Result struct {
	// Value is the exported result value (nil if IsEmpty is true)
	Value interface{}
	// IsEmpty is true if the script returned undefined/null/void
	IsEmpty bool
}

// Runner is the low-level VM abstraction for executing scripts.
// A Runner keeps its global state between Run calls, so REPL lines can
// build on earlier ones. File loading and timeouts belong to the caller.
type Runner interface {
	// Run executes the given code and returns the result.
	// Errors include syntax errors, runtime exceptions, etc.
	Run(code string) (Result, error)

	// SetOutput sets the function used for print() output.
	SetOutput(fn func(string))

	// Interrupt stops the currently running script.
	// Safe to call from another goroutine.
	Interrupt()
}
