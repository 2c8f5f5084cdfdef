// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package command

// Command represents a REPL command with metadata
type Command struct {
	Name        string   // Primary command name
	Aliases     []string // Alternative names (e.g., "q" for "quit")
	Usage       string   // Usage string: "set <path> <value>"
	Description string   // One-line description
	LongHelp    string   // Multi-line detailed help (optional)
	Category    string   // One of the Category constants
	Handler     Handler  // Command execution handler
}

// Handler is the interface all command handlers implement.
type Handler interface {
	Execute(args []string, ctx *Context) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(args []string, ctx *Context) error

// Execute implements Handler.
func (f HandlerFunc) Execute(args []string, ctx *Context) error {
	return f(args, ctx)
}

// Category constants for organizing commands
const (
	CategoryContract    = "Contract Commands"
	CategoryInputs      = "Inputs"
	CategoryTransaction = "Transaction Commands"
	CategoryAutomation  = "Automation"
	CategoryConfig      = "Configuration"
	CategoryInfo        = "Information"
)

// categoryOrder is the order help prints categories in.
var categoryOrder = []string{
	CategoryContract,
	CategoryInputs,
	CategoryTransaction,
	CategoryAutomation,
	CategoryConfig,
	CategoryInfo,
}
