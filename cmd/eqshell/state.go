// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aplane-algo/equity/internal/chaincore"
	"github.com/aplane-algo/equity/internal/command"
	"github.com/aplane-algo/equity/internal/engine"
	"github.com/aplane-algo/equity/internal/scripting"
	"github.com/aplane-algo/equity/internal/util"
)

// REPLState holds the shell's state: the engine, the contract being worked
// on and the UI hooks readline installs.
type REPLState struct {
	Engine  *engine.Engine
	DataDir string
	Config  util.Config

	CommandRegistry *command.Registry
	Session         *Session

	// JavaScript runner (persistent across js commands for state preservation)
	JSRunner *scripting.GojaRunner

	// CoreOverride is the -core flag; it survives config reloads.
	CoreOverride string

	// Password returns the password for the signing key named by label.
	Password func(label string) (string, error)

	// Out receives command output (stdout unless a test replaces it).
	Out io.Writer

	// LineReader for multi-line input in REPL (set by repl.go after readline init)
	LineReader func() (string, error)

	// SetPrompt changes the readline prompt (set by repl.go after readline init)
	SetPrompt func(string)
}

// NewREPLState creates the engine for config and registers all commands.
func NewREPLState(dataDir string, config util.Config) (*REPLState, error) {
	eng, err := engine.NewEngine(newCoreClient(config),
		engine.WithGasAsset(config.GasAssetID),
		engine.WithDefaultGas(config.DefaultGas, config.GasUnit),
	)
	if err != nil {
		return nil, err
	}

	r := &REPLState{
		Engine:  eng,
		DataDir: dataDir,
		Config:  config,
		Session: NewSession(),
		Out:     os.Stdout,
	}
	r.Password = r.defaultPassword
	r.CommandRegistry = r.initCommandRegistry()
	return r, nil
}

func newCoreClient(config util.Config) *chaincore.Client {
	return chaincore.New(config.CoreURL, &chaincore.Options{
		AccessToken: config.AccessToken,
		Timeout:     config.Timeout(),
	})
}

// defaultPassword asks the configured helper, or prompts on the terminal.
func (r *REPLState) defaultPassword(label string) (string, error) {
	if h := r.Config.PasswordHelper(); h != nil {
		return util.RunPasswordCommand(h, label)
	}
	return util.ReadPassword(os.Stderr, fmt.Sprintf("Password for %s: ", label))
}

// runner returns the persistent JS runner, creating it on first use.
func (r *REPLState) runner() *scripting.GojaRunner {
	if r.JSRunner == nil {
		r.JSRunner = scripting.NewGojaRunner(r.Engine, false)
		r.JSRunner.SetOutput(func(msg string) {
			_, _ = fmt.Fprintln(r.Out, msg)
		})
	}
	return r.JSRunner
}

// reloadConfig re-reads config.yaml and swaps in a client for the new core
// settings. Gas settings only take effect on restart.
func (r *REPLState) reloadConfig() error {
	config, err := util.LoadConfig(r.DataDir)
	if err != nil {
		return err
	}
	if config.GasAssetID != r.Config.GasAssetID || config.DefaultGas != r.Config.DefaultGas || config.GasUnit != r.Config.GasUnit {
		util.Warn("gas settings changed; restart eqshell to apply them")
		config.GasAssetID, config.DefaultGas, config.GasUnit = r.Config.GasAssetID, r.Config.DefaultGas, r.Config.GasUnit
	}
	if r.CoreOverride != "" {
		config.CoreURL = r.CoreOverride
	}
	r.Engine.SetCore(newCoreClient(config))
	r.Config = config
	util.Debug("config reloaded", "core_url", config.CoreURL)
	return nil
}

// prompt is the readline prompt: the current clause key, if any.
func (r *REPLState) prompt() string {
	label := "eqshell"
	if key := r.Session.ClauseKey(); key != "" {
		label = key
	} else if r.Session.Contract != nil {
		label = r.Session.Contract.Name
	}
	return util.Styled(util.SuccessStyle, label+">") + " "
}
