// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// configdoc generates markdown documentation from Go struct tags.
// Usage: go run ./cmd/configdoc > doc/CONFIG_REFERENCE.md
package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/aplane-algo/equity/internal/util"
)

// EnvVar represents an environment variable configuration
type EnvVar struct {
	Name        string
	Description string
}

var envVars = []EnvVar{
	{util.DataDirEnvVar, "Data directory (config.yaml, history); overridden by -d"},
	{util.DebugEnvVar, "Set to any value to enable debug logging"},
	{"TERM", "Set to dumb to disable colored output"},
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--help" {
		fmt.Println("Usage: go run ./cmd/configdoc > doc/CONFIG_REFERENCE.md")
		fmt.Println()
		fmt.Println("Generates markdown documentation from Go struct tags.")
		return
	}
	writeReference(os.Stdout)
}

func writeReference(w io.Writer) {
	_, _ = fmt.Fprintln(w, "# Configuration Reference")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Auto-generated from Go struct tags. Do not edit manually.")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "## eqshell Configuration")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "File: `%s` in the data directory (`-d`, `%s` or `~/%s`)\n\n",
		util.ConfigFileName, util.DataDirEnvVar, util.DefaultDataDirName)
	writeStructTable(w, reflect.TypeOf(util.Config{}))
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "## Environment Variables")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "| Variable | Description |")
	_, _ = fmt.Fprintln(w, "|----------|-------------|")
	for _, env := range envVars {
		_, _ = fmt.Fprintf(w, "| `%s` | %s |\n", env.Name, env.Description)
	}
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "### Password Precedence")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "1. `password_command` helper, run as `<argv...> read <args...> <label>`")
	_, _ = fmt.Fprintln(w, "2. Interactive terminal prompt (default)")
}

func writeStructTable(w io.Writer, t reflect.Type) {
	_, _ = fmt.Fprintln(w, "| Field | Type | Default | Description |")
	_, _ = fmt.Fprintln(w, "|-------|------|---------|-------------|")

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := strings.Split(field.Tag.Get("yaml"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}

		desc := field.Tag.Get("description")
		if desc == "" {
			desc = "(no description)"
		}
		def := field.Tag.Get("default")
		if def == "" {
			def = "(none)"
		}
		_, _ = fmt.Fprintf(w, "| `%s` | %s | `%s` | %s |\n", tag, formatType(field.Type), def, desc)
	}
}

func formatType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Bool:
		return "bool"
	case reflect.Slice:
		return "[]" + formatType(t.Elem())
	case reflect.Map:
		return "map[" + formatType(t.Key()) + "]" + formatType(t.Elem())
	default:
		return t.String()
	}
}
