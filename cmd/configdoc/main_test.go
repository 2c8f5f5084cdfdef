// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteReference(t *testing.T) {
	var buf bytes.Buffer
	writeReference(&buf)
	out := buf.String()

	for _, want := range []string{
		"| `core_url` | string | `http://localhost:9888` |",
		"| `timeout_seconds` | int | `30` |",
		"| `password_command` | []string | `(none)` |",
		"| `password_command_env` | map[string]string |",
		"`EQSHELL_DATA`",
		"`EQSHELL_DEBUG`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("reference missing %q", want)
		}
	}
}
