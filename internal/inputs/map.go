// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package inputs

import (
	"fmt"
	"sort"
	"strconv"
)

// Map holds inputs keyed by canonical path. Not safe for concurrent use.
type Map struct {
	entries map[string]*Input
}

// NewMap builds a map from dotted path strings to values. Every path is
// parsed and rejected with ErrInvalidPath if malformed.
func NewMap(entries map[string]string) (*Map, error) {
	m := &Map{entries: make(map[string]*Input, len(entries))}
	for raw, value := range entries {
		if err := m.SetString(raw, value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Set stores value at p.
func (m *Map) Set(p Path, value string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if m.entries == nil {
		m.entries = make(map[string]*Input)
	}
	m.entries[p.String()] = &Input{Path: p, Value: value}
	return nil
}

// SetString parses raw and stores value there.
func (m *Map) SetString(raw, value string) error {
	p, err := ParsePath(raw)
	if err != nil {
		return err
	}
	return m.Set(p, value)
}

// Delete removes the input at p, if present.
func (m *Map) Delete(p Path) {
	delete(m.entries, p.String())
}

// Get returns the input at p or ErrMissingInput.
func (m *Map) Get(p Path) (*Input, error) {
	in, ok := m.entries[p.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, p)
	}
	return in, nil
}

// Has reports whether p has a value.
func (m *Map) Has(p Path) bool {
	_, ok := m.entries[p.String()]
	return ok
}

// Value returns the raw value at p.
func (m *Map) Value(p Path) (string, error) {
	in, err := m.Get(p)
	if err != nil {
		return "", err
	}
	return in.Value, nil
}

// ValueOr returns the value at p, or def when p is unset.
func (m *Map) ValueOr(p Path, def string) string {
	if in, ok := m.entries[p.String()]; ok {
		return in.Value
	}
	return def
}

// Uint returns the value at p as a validated positive integer.
func (m *Map) Uint(p Path) (uint64, error) {
	in, err := m.Get(p)
	if err != nil {
		return 0, err
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(in.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidValue, p, err)
	}
	return n, nil
}

// Len returns the number of stored inputs.
func (m *Map) Len() int {
	return len(m.entries)
}

// Inputs returns all inputs sorted by path.
func (m *Map) Inputs() []*Input {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*Input, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.entries[k])
	}
	return out
}

// Validate runs Input.Validate on every entry and returns the first failure.
func (m *Map) Validate() error {
	for _, in := range m.Inputs() {
		if err := in.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an independent copy.
func (m *Map) Clone() *Map {
	c := &Map{entries: make(map[string]*Input, len(m.entries))}
	for k, in := range m.entries {
		cp := *in
		c.entries[k] = &cp
	}
	return c
}
