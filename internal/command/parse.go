// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package command

import "strings"

// Parse splits a REPL line into a command name and its arguments.
// Double quotes group words; the quotes themselves are dropped.
// The second result is the raw text after the command name.
func Parse(input string) (name string, args []string, raw string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil, ""
	}

	var parts []string
	var current strings.Builder
	inQuotes := false
	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(input); i++ {
		ch := input[i]
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case (ch == ' ' || ch == '\t') && !inQuotes:
			flush()
		default:
			current.WriteByte(ch)
		}
	}
	flush()

	if len(parts) == 0 {
		return "", nil, ""
	}
	name = parts[0]
	if i := strings.IndexAny(input, " \t"); i >= 0 && !strings.HasPrefix(input, `"`) {
		raw = strings.TrimSpace(input[i:])
	}
	return name, parts[1:], raw
}
