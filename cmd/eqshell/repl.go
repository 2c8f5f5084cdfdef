// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"

	"github.com/aplane-algo/equity/cmd/eqshell/internal/repl"
	"github.com/aplane-algo/equity/internal/chaincore"
	"github.com/aplane-algo/equity/internal/command"
	"github.com/aplane-algo/equity/internal/contracts"
	"github.com/aplane-algo/equity/internal/inputs"
	"github.com/aplane-algo/equity/internal/util"
)

// executeLine parses and runs one REPL line. It returns errExit when the
// user quits; every other error has already been printed.
func (r *REPLState) executeLine(ctx context.Context, line string) error {
	name, args, raw := command.Parse(line)
	if name == "" {
		return nil
	}

	cmdCtx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	err := r.CommandRegistry.Dispatch(name, args, &command.Context{RawArgs: raw, Out: r.Out, Ctx: cmdCtx})
	if errors.Is(err, errExit) {
		return err
	}
	if err != nil {
		_, _ = fmt.Fprintf(r.Out, "%s %s\n", util.Styled(util.ErrorStyle, "Error:"), chaincore.ParseError(err))
	}
	return nil
}

// completer offers contract names, clause names and input paths where the
// commands expect them.
func (r *REPLState) completer() *repl.Completer {
	inputPaths := func() []string {
		var paths []string
		if required, err := r.Session.Required(); err == nil {
			for _, st := range required {
				paths = append(paths, st.Path.String())
			}
		}
		for _, in := range r.Session.Inputs.Inputs() {
			paths = append(paths, in.Path.String())
		}
		return paths
	}
	clauses := func() []string {
		if r.Session.Contract == nil {
			return nil
		}
		return r.Session.Contract.ClauseNames()
	}

	return repl.NewCompleter(r.CommandRegistry.Names(), map[string]repl.ArgFunc{
		"contracts": repl.At(0, contracts.Names),
		"spend":     repl.At(3, contracts.Names),
		"clause":    repl.At(0, clauses),
		"set": repl.At(0, func() []string {
			return append(inputPaths(), inputs.UnlockPath(inputs.GasInput, inputs.BtmUnitInput).String())
		}),
		"unset":  repl.At(0, inputPaths),
		"inputs": repl.At(0, func() []string { return []string{"all"} }),
		"config": repl.At(0, func() []string { return []string{"reload"} }),
		"help":   repl.At(0, r.CommandRegistry.Names),
	})
}

// watchConfig reloads config.yaml between commands after it changes on disk.
func (r *REPLState) watchConfig(ctx context.Context) func() {
	var pending atomic.Bool
	if r.DataDir != "" {
		if err := startConfigWatcher(ctx, r.DataDir, func() { pending.Store(true) }); err != nil {
			util.Debug("config watcher disabled", "error", err)
		}
	}
	return func() {
		if !pending.Swap(false) {
			return
		}
		if err := r.reloadConfig(); err != nil {
			util.Warn("config reload failed", "error", err)
			return
		}
		_, _ = fmt.Fprintf(r.Out, "%s (core: %s)\n", util.Styled(util.DimStyle, "config.yaml reloaded"), r.Config.CoreURL)
	}
}

func startBasicREPL(ctx context.Context, state *REPLState, applyReload func()) {
	fmt.Println("Running in basic mode (no history/completion)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(state.prompt())
		if !scanner.Scan() {
			break
		}
		applyReload()
		if errors.Is(state.executeLine(ctx, scanner.Text()), errExit) {
			break
		}
	}
}

func startREPL(state *REPLState) {
	fmt.Println("eqshell - Equity contract shell")
	fmt.Println("Type 'help' for available commands or 'quit' to exit")
	fmt.Printf("Chain core: %s\n", state.Config.CoreURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	applyReload := state.watchConfig(ctx)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            state.prompt(),
		HistoryFile:       state.Config.HistoryFile,
		HistoryLimit:      1000,
		AutoComplete:      state.completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Printf("Failed to create readline instance, falling back to basic input: %v\n", err)
		startBasicREPL(ctx, state, applyReload)
		return
	}
	defer func() {
		_ = rl.Close()
	}()

	state.LineReader = rl.Readline
	state.SetPrompt = rl.SetPrompt

	for {
		rl.SetPrompt(state.prompt())

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					fmt.Println("Use 'quit' or 'exit' to exit")
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Println("\nGoodbye!")
				break
			}
			fmt.Printf("Error reading input: %v\n", err)
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		applyReload()
		if errors.Is(state.executeLine(ctx, line), errExit) {
			break
		}
	}
}
