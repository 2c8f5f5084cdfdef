// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package command

import (
	"bytes"
	"strings"
	"testing"
)

func TestHandlerFunc(t *testing.T) {
	var gotArgs []string
	var gotRaw string
	h := HandlerFunc(func(args []string, ctx *Context) error {
		gotArgs = args
		gotRaw = ctx.RawArgs
		return nil
	})

	if err := h.Execute([]string{"a", "b"}, &Context{RawArgs: "a b"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(gotArgs) != 2 || gotRaw != "a b" {
		t.Errorf("handler saw args=%v raw=%q", gotArgs, gotRaw)
	}
}

func TestCategoryOrderCoversCategories(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range categoryOrder {
		if seen[c] {
			t.Errorf("category %q listed twice", c)
		}
		seen[c] = true
	}
	for _, c := range []string{CategoryContract, CategoryInputs, CategoryTransaction, CategoryAutomation, CategoryConfig, CategoryInfo} {
		if !seen[c] {
			t.Errorf("category %q missing from help order", c)
		}
	}
}

func TestShowHelp(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&Command{Name: "set", Usage: "set <path> <value>", Description: "Set an input", Category: CategoryInputs, Handler: &MockHandler{}})
	_ = r.Register(&Command{Name: "quit", Aliases: []string{"exit", "q"}, Usage: "quit", Description: "Leave", Category: CategoryInfo, Handler: &MockHandler{}})
	_ = r.Register(&Command{Name: "clause", Usage: "clause <name>", Description: "Pick a clause", Category: CategoryContract, Handler: &MockHandler{}})

	var buf bytes.Buffer
	ShowHelp(&buf, r, "http://localhost:9888")
	out := buf.String()

	contract := strings.Index(out, CategoryContract)
	inputs := strings.Index(out, CategoryInputs)
	info := strings.Index(out, CategoryInfo)
	if contract < 0 || inputs < contract || info < inputs {
		t.Errorf("categories out of order:\n%s", out)
	}
	if !strings.Contains(out, "(aliases: exit, q)") {
		t.Errorf("aliases missing:\n%s", out)
	}
	if !strings.Contains(out, "Chain core: http://localhost:9888") {
		t.Errorf("core URL missing:\n%s", out)
	}
}

func TestShowCommandHelp(t *testing.T) {
	var buf bytes.Buffer
	ShowCommandHelp(&buf, &Command{
		Name:        "unlock",
		Usage:       "unlock [n]",
		Description: "Unlock the contract",
		LongHelp:    "Prompts for n passwords.",
		Category:    CategoryTransaction,
	})
	out := buf.String()
	for _, want := range []string{"Command: unlock", "Usage: unlock [n]", "Prompts for n passwords."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Aliases:") {
		t.Error("Aliases line printed for a command without aliases")
	}
}
