// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package command

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestContext_Defaults(t *testing.T) {
	var nilCtx *Context
	if nilCtx.Writer() != os.Stdout {
		t.Error("nil Context should write to stdout")
	}
	if nilCtx.Context() == nil {
		t.Error("nil Context should return a background context")
	}

	ctx := &Context{}
	if ctx.Writer() != os.Stdout || ctx.Context() != context.Background() {
		t.Error("zero Context should fall back to stdout and Background")
	}
}

func TestContext_Overrides(t *testing.T) {
	var buf bytes.Buffer
	parent, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx := &Context{Out: &buf, Ctx: parent}
	if ctx.Writer() != &buf {
		t.Error("Writer() ignored Out")
	}
	if ctx.Context() != parent {
		t.Error("Context() ignored Ctx")
	}
}
