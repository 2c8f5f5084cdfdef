// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

// Scripting commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/aplane-algo/equity/internal/command"
)

var errCancelled = errors.New("cancelled")

// cmdJS executes JavaScript in the shell's persistent runner.
// Supports: js <file.js>, js { code }, js <inline>, and multi-line mode.
func (r *REPLState) cmdJS(args []string, ctx *command.Context) error {
	w := ctx.Writer()
	rawArgs := ""
	if ctx != nil {
		rawArgs = ctx.RawArgs
	}

	var code string
	switch {
	case len(args) == 0:
		_, _ = fmt.Fprintln(w, "Enter JavaScript code (blank line to execute, Ctrl+C to cancel):")
		lines, err := r.readLines(func(line string) bool { return line == "" })
		if err != nil {
			if errors.Is(err, errCancelled) {
				_, _ = fmt.Fprintln(w, "\nCancelled.")
				return nil
			}
			return err
		}
		code = strings.Join(lines, "\n")

	case strings.HasPrefix(rawArgs, "{"):
		inner := strings.TrimSpace(strings.TrimPrefix(rawArgs, "{"))
		if strings.HasSuffix(inner, "}") {
			code = strings.TrimSpace(strings.TrimSuffix(inner, "}"))
			break
		}
		lines, err := r.readLines(func(line string) bool { return strings.TrimSpace(line) == "}" })
		if err != nil {
			if errors.Is(err, errCancelled) {
				_, _ = fmt.Fprintln(w, "\nCancelled.")
				return nil
			}
			return err
		}
		code = strings.Join(append([]string{inner}, lines...), "\n")

	case len(args) == 1 && strings.HasSuffix(args[0], ".js"):
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}
		code = string(content)

	default:
		code = rawArgs
	}

	if strings.TrimSpace(code) == "" {
		return nil
	}

	runner := r.runner()
	runner.SetContext(ctx.Context())
	stop := context.AfterFunc(ctx.Context(), runner.Interrupt)
	defer stop()

	result, err := runner.Run(code)
	if err != nil {
		return err
	}
	if !result.IsEmpty {
		printJSValue(w, result.Value)
	}
	return nil
}

// readLines collects lines until done reports true for one, or input ends.
// The terminating line is not included.
func (r *REPLState) readLines(done func(string) bool) ([]string, error) {
	var lines []string
	if r.LineReader != nil {
		if r.SetPrompt != nil {
			r.SetPrompt("")
			defer r.SetPrompt(r.prompt())
		}
		for {
			line, err := r.LineReader()
			if err != nil {
				if errors.Is(err, readline.ErrInterrupt) {
					return nil, errCancelled
				}
				if errors.Is(err, io.EOF) {
					return lines, nil
				}
				return nil, err
			}
			if done(line) {
				return lines, nil
			}
			lines = append(lines, line)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if done(line) {
			break
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
