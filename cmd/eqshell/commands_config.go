// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

// Configuration and information commands

import (
	"errors"
	"fmt"

	"github.com/aplane-algo/equity/internal/command"
	"github.com/aplane-algo/equity/internal/util"
	"github.com/aplane-algo/equity/internal/version"
)

// errExit ends the REPL loop.
var errExit = errors.New("exit")

func (r *REPLState) cmdConfig(args []string, ctx *command.Context) error {
	w := ctx.Writer()
	if len(args) > 0 {
		if args[0] != "reload" {
			return fmt.Errorf("usage: config [reload]")
		}
		if err := r.reloadConfig(); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Configuration reloaded (core: %s)\n", r.Config.CoreURL)
		return nil
	}
	util.DisplayConfig(w, r.DataDir)
	if r.CoreOverride != "" {
		_, _ = fmt.Fprintf(w, "Core URL overridden by -core: %s\n", r.CoreOverride)
	}
	return nil
}

func (r *REPLState) cmdHelp(args []string, ctx *command.Context) error {
	if len(args) > 0 {
		cmd, ok := r.CommandRegistry.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", command.ErrUnknownCommand, args[0])
		}
		command.ShowCommandHelp(ctx.Writer(), cmd)
		return nil
	}
	command.ShowHelp(ctx.Writer(), r.CommandRegistry, r.Config.CoreURL)
	return nil
}

func (r *REPLState) cmdVersion(_ []string, ctx *command.Context) error {
	_, _ = fmt.Fprintln(ctx.Writer(), version.String())
	return nil
}

func (r *REPLState) cmdQuit(_ []string, _ *command.Context) error {
	return errExit
}
