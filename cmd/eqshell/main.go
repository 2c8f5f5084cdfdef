// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aplane-algo/equity/internal/security"
	"github.com/aplane-algo/equity/internal/util"
	"github.com/aplane-algo/equity/internal/version"
)

func main() {
	printVersion := flag.Bool("version", false, "Print version and exit")
	dataDir := flag.String("d", "", "Data directory (default: ~/.eqshell or EQSHELL_DATA)")
	coreURL := flag.String("core", "", "Chain core URL (overrides core_url in config.yaml)")
	jsScript := flag.String("js", "", "Execute JavaScript script file (use '-' for stdin)")
	jsExpr := flag.String("e", "", "Execute JavaScript expression")
	flag.Parse()

	if *printVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	// Resolve data directory: -d flag > EQSHELL_DATA env var > ~/.eqshell
	resolvedDataDir := util.GetDataDir(*dataDir)

	// Initialize logger (supports EQSHELL_DEBUG environment variable)
	util.InitLogger()

	if err := security.DisableCoreDumps(); err != nil {
		util.Warn("could not disable core dumps", "error", err)
	}

	config, err := util.LoadConfig(resolvedDataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *coreURL != "" {
		config.CoreURL = *coreURL
		if err := config.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	state, err := NewREPLState(resolvedDataDir, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		os.Exit(1)
	}

	state.CoreOverride = *coreURL

	switch {
	case *jsExpr != "":
		os.Exit(state.runJSExpression(*jsExpr))
	case *jsScript != "":
		os.Exit(state.runJSScript(*jsScript))
	default:
		startREPL(state)
	}
}
