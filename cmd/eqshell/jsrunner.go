// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aplane-algo/equity/internal/chaincore"
)

// runJSScript runs a JavaScript file ("-" reads stdin) and returns the exit code.
func (r *REPLState) runJSScript(scriptPath string) int {
	var content []byte
	var err error
	if scriptPath == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(scriptPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read script: %v\n", err)
		return 1
	}

	if _, err := r.runner().Run(string(content)); err != nil {
		fmt.Fprintf(os.Stderr, "Script error: %s\n", chaincore.ParseError(err))
		return 1
	}
	return 0
}

// runJSExpression runs a single expression, prints its value and returns the exit code.
func (r *REPLState) runJSExpression(expr string) int {
	result, err := r.runner().Run(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", chaincore.ParseError(err))
		return 1
	}
	if !result.IsEmpty {
		printJSValue(r.Out, result.Value)
	}
	return 0
}

// printJSValue prints objects and arrays as indented JSON, anything else as is.
func printJSValue(w io.Writer, v interface{}) {
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		if data, err := json.MarshalIndent(v, "", "  "); err == nil {
			_, _ = fmt.Fprintln(w, string(data))
			return
		}
	}
	_, _ = fmt.Fprintln(w, v)
}
