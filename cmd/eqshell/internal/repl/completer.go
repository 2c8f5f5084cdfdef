// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package repl provides tab completion for the eqshell prompt.
package repl

import (
	"strings"

	"github.com/chzyer/readline"
)

// ArgFunc returns candidates for the argument at index, given the arguments
// typed before it. It is called on every completion request so it can read
// current shell state.
type ArgFunc func(prev []string, index int) []string

// Completer completes command names, then each command's arguments through
// its ArgFunc.
type Completer struct {
	prefix *readline.PrefixCompleter
	args   map[string]ArgFunc
}

// NewCompleter builds a completer for commands. args maps a command name or
// alias to its argument completion; commands without one complete no arguments.
func NewCompleter(commands []string, args map[string]ArgFunc) *Completer {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, name := range commands {
		items = append(items, readline.PcItem(name))
	}
	return &Completer{
		prefix: readline.NewPrefixCompleter(items...),
		args:   args,
	}
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])
	parts := strings.Fields(lineStr)
	trailingSpace := strings.HasSuffix(lineStr, " ")

	if len(parts) == 0 || (len(parts) == 1 && !trailingSpace) {
		return c.prefix.Do(line, pos)
	}

	fn := c.args[parts[0]]
	if fn == nil {
		return nil, 0
	}

	args := parts[1:]
	index, partial := len(args), ""
	if !trailingSpace {
		index = len(args) - 1
		partial = args[index]
	}

	candidates := filterByPrefix(fn(args[:index], index), partial)
	return remainders(candidates, len(partial)), len(partial)
}

// filterByPrefix returns strings that start with prefix.
func filterByPrefix(strs []string, prefix string) []string {
	var result []string
	for _, s := range strs {
		if strings.HasPrefix(s, prefix) {
			result = append(result, s)
		}
	}
	return result
}

// remainders converts candidates to readline suggestions: the part after
// what has been typed, plus a trailing space.
func remainders(strs []string, typed int) [][]rune {
	suggestions := make([][]rune, 0, len(strs))
	for _, s := range strs {
		suggestions = append(suggestions, []rune(s[typed:]+" "))
	}
	return suggestions
}

// At returns an ArgFunc that offers candidates() only at argument position index.
func At(index int, candidates func() []string) ArgFunc {
	return func(_ []string, i int) []string {
		if i != index {
			return nil
		}
		return candidates()
	}
}
