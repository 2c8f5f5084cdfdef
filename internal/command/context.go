// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package command

import (
	"context"
	"io"
	"os"
)

// Context carries per-invocation state to a command handler.
type Context struct {
	// RawArgs is the argument string before quote-stripping.
	// Used by commands like 'js' that need to preserve quotes in their input.
	RawArgs string

	// Out receives command output. Nil means stdout.
	Out io.Writer

	// Ctx bounds any core calls the command makes. Nil means context.Background.
	Ctx context.Context
}

// Writer returns the output writer.
func (c *Context) Writer() io.Writer {
	if c == nil || c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Context returns the context for core calls.
func (c *Context) Context() context.Context {
	if c == nil || c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}
