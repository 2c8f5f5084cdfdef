// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

// Command registry initialization

import (
	"fmt"

	"github.com/aplane-algo/equity/internal/command"
)

// mustRegister registers a command and panics if there's an error.
// Used during initialization where registration errors are programming bugs.
func mustRegister(registry *command.Registry, cmd *command.Command) {
	if err := registry.Register(cmd); err != nil {
		panic(fmt.Sprintf("failed to register command %q: %v", cmd.Name, err))
	}
}

// initCommandRegistry initializes the command registry with all REPL commands
func (r *REPLState) initCommandRegistry() *command.Registry {
	registry := command.NewRegistry()

	// Contract selection
	mustRegister(registry, &command.Command{
		Name:        "contracts",
		Usage:       "contracts [name]",
		Description: "List the standard contracts, or show one contract's parameters and clauses",
		Category:    command.CategoryContract,
		Handler:     command.HandlerFunc(r.cmdContracts),
	})

	mustRegister(registry, &command.Command{
		Name:        "templates",
		Usage:       "templates",
		Description: "List clause keys and the action template each one uses",
		Category:    command.CategoryContract,
		Handler:     command.HandlerFunc(r.cmdTemplates),
	})

	mustRegister(registry, &command.Command{
		Name:        "spend",
		Usage:       "spend <outputID> <assetID> <amount> <Contract> [args...]",
		Description: "Select the locked output to unlock",
		LongHelp: "Arguments after the contract name are the contract's parameters in\n" +
			"declaration order (see 'contracts <name>'). Selecting a new output\n" +
			"clears the clause and every input.",
		Category: command.CategoryContract,
		Handler:  command.HandlerFunc(r.cmdSpend),
	})

	mustRegister(registry, &command.Command{
		Name:        "clause",
		Usage:       "clause <name>",
		Description: "Choose the clause to unlock through",
		Category:    command.CategoryContract,
		Handler:     command.HandlerFunc(r.cmdClause),
	})

	mustRegister(registry, &command.Command{
		Name:        "status",
		Aliases:     []string{"st"},
		Usage:       "status",
		Description: "Show the selected output, clause and input progress",
		Category:    command.CategoryContract,
		Handler:     command.HandlerFunc(r.cmdStatus),
	})

	// Inputs
	mustRegister(registry, &command.Command{
		Name:        "set",
		Usage:       "set <path> <value>",
		Description: "Set an input, e.g. set unlockValue.accountInput acc1",
		LongHelp: "Paths are dot separated: unlockValue.<types>,\n" +
			"clauseValue.<clause>.<value>.<types>, clauseParameters.<clause>.<param>.<types>\n" +
			"or contractParameters.<param>.<types>. Gas is set as unlockValue.gasInput\n" +
			"with its unit at unlockValue.gasInput.btmUnitInput (btm or mbtm).",
		Category: command.CategoryInputs,
		Handler:  command.HandlerFunc(r.cmdSet),
	})

	mustRegister(registry, &command.Command{
		Name:        "unset",
		Usage:       "unset <path>",
		Description: "Remove an input",
		Category:    command.CategoryInputs,
		Handler:     command.HandlerFunc(r.cmdUnset),
	})

	mustRegister(registry, &command.Command{
		Name:        "inputs",
		Usage:       "inputs [all]",
		Description: "Show the inputs the selected clause needs ('all' lists every entered input)",
		Category:    command.CategoryInputs,
		Handler:     command.HandlerFunc(r.cmdInputs),
	})

	mustRegister(registry, &command.Command{
		Name:        "hash",
		Usage:       "hash <preimage-hex>",
		Description: "Print the SHA3-256 hash of a preimage, for RevealPreimage contracts",
		Category:    command.CategoryInputs,
		Handler:     command.HandlerFunc(r.cmdHash),
	})

	// Transactions
	mustRegister(registry, &command.Command{
		Name:        "actions",
		Usage:       "actions",
		Description: "Build and show the unlock action list without signing",
		Category:    command.CategoryTransaction,
		Handler:     command.HandlerFunc(r.cmdActions),
	})

	mustRegister(registry, &command.Command{
		Name:        "unlock",
		Usage:       "unlock [password-count]",
		Description: "Build, sign and submit the unlock transaction",
		LongHelp: "Prompts for password-count passwords (default 1), labelled key-1..key-N.\n" +
			"They are tried last first until the core reports the signatures complete.\n" +
			"If they run out first the partially signed template is printed as hex\n" +
			"for the next signer to pass to 'sign'.",
		Category: command.CategoryTransaction,
		Handler:  command.HandlerFunc(r.cmdUnlock),
	})

	mustRegister(registry, &command.Command{
		Name:        "sign",
		Usage:       "sign <template-hex> [password-count]",
		Description: "Add signatures to a partially signed unlock transaction",
		Category:    command.CategoryTransaction,
		Handler:     command.HandlerFunc(r.cmdSign),
	})

	mustRegister(registry, &command.Command{
		Name:        "lock",
		Usage:       "lock <program> <assetID> <amount> <accountID> [gas [unit]]",
		Description: "Lock value from an account under a contract program",
		Category:    command.CategoryTransaction,
		Handler:     command.HandlerFunc(r.cmdLock),
	})

	// Automation
	mustRegister(registry, &command.Command{
		Name:        "js",
		Usage:       "js [<file.js> | <code>]",
		Description: "Run JavaScript; with no argument, read lines until a blank one",
		Category:    command.CategoryAutomation,
		Handler:     command.HandlerFunc(r.cmdJS),
	})

	// Configuration
	mustRegister(registry, &command.Command{
		Name:        "config",
		Usage:       "config [reload]",
		Description: "Show the configuration, or re-read config.yaml",
		Category:    command.CategoryConfig,
		Handler:     command.HandlerFunc(r.cmdConfig),
	})

	// Information
	mustRegister(registry, &command.Command{
		Name:        "help",
		Aliases:     []string{"h", "?"},
		Usage:       "help [command]",
		Description: "Show help for commands",
		Category:    command.CategoryInfo,
		Handler:     command.HandlerFunc(r.cmdHelp),
	})

	mustRegister(registry, &command.Command{
		Name:        "version",
		Usage:       "version",
		Description: "Show the eqshell version",
		Category:    command.CategoryInfo,
		Handler:     command.HandlerFunc(r.cmdVersion),
	})

	mustRegister(registry, &command.Command{
		Name:        "quit",
		Aliases:     []string{"exit", "q"},
		Usage:       "quit",
		Description: "Exit the shell",
		Category:    command.CategoryInfo,
		Handler:     command.HandlerFunc(r.cmdQuit),
	})

	return registry
}
