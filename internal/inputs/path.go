// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package inputs holds the values a user enters for contract parameters,
// clause arguments and the unlock destination.
//
// Every value lives at a Path. A path is a namespace, zero or more names
// (parameter, clause or value names) and a chain of input type tags, e.g.
//
//	clauseValue.repay.payment.valueInput.amountInput
//	unlockValue.gasInput.btmUnitInput
//
// Paths are parsed and checked when they enter a Map, so a malformed path
// is rejected at construction rather than when a template reads it.
package inputs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPath indicates a path that does not follow the namespace/name/type layout.
	ErrInvalidPath = errors.New("invalid input path")

	// ErrMissingInput indicates a read of a path that has no value in the map.
	ErrMissingInput = errors.New("missing input")

	// ErrInvalidValue indicates a value that fails validation for its input type.
	ErrInvalidValue = errors.New("invalid input value")
)

// Namespace is the first component of a path.
type Namespace int

const (
	NamespaceUnknown Namespace = iota
	ContractParameters
	ContractValue
	ClauseParameters
	ClauseValue
	UnlockValue
)

var namespaceNames = map[Namespace]string{
	ContractParameters: "contractParameters",
	ContractValue:      "contractValue",
	ClauseParameters:   "clauseParameters",
	ClauseValue:        "clauseValue",
	UnlockValue:        "unlockValue",
}

// allowed number of names between the namespace and the first type tag
var namespaceArity = map[Namespace][2]int{
	ContractParameters: {1, 1}, // parameter name
	ContractValue:      {0, 1}, // optional value name
	ClauseParameters:   {2, 2}, // clause, parameter
	ClauseValue:        {2, 2}, // clause, value
	UnlockValue:        {0, 0},
}

func (n Namespace) String() string {
	if s, ok := namespaceNames[n]; ok {
		return s
	}
	return "unknown"
}

func parseNamespace(s string) Namespace {
	for ns, name := range namespaceNames {
		if name == s {
			return ns
		}
	}
	return NamespaceUnknown
}

// Path identifies one input. Build paths with ParsePath or the helper
// constructors; the zero value is not a valid path.
type Path struct {
	Namespace Namespace
	Names     []string
	Types     []Type
}

// Leaf returns the innermost input type tag.
func (p Path) Leaf() Type {
	if len(p.Types) == 0 {
		return ""
	}
	return p.Types[len(p.Types)-1]
}

// String returns the canonical dotted form.
func (p Path) String() string {
	parts := make([]string, 0, 1+len(p.Names)+len(p.Types))
	parts = append(parts, p.Namespace.String())
	parts = append(parts, p.Names...)
	for _, t := range p.Types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ".")
}

// Validate checks the path layout.
func (p Path) Validate() error {
	arity, ok := namespaceArity[p.Namespace]
	if !ok {
		return fmt.Errorf("%w: unknown namespace", ErrInvalidPath)
	}
	if len(p.Names) < arity[0] || len(p.Names) > arity[1] {
		return fmt.Errorf("%w: %s expects %d-%d names, got %d", ErrInvalidPath, p.Namespace, arity[0], arity[1], len(p.Names))
	}
	for _, name := range p.Names {
		if !isIdentifier(name) {
			return fmt.Errorf("%w: bad name %q", ErrInvalidPath, name)
		}
		if IsKnownType(name) {
			return fmt.Errorf("%w: type tag %q in name position", ErrInvalidPath, name)
		}
	}
	if len(p.Types) == 0 {
		return fmt.Errorf("%w: %s has no input type", ErrInvalidPath, p.String())
	}
	for _, t := range p.Types {
		if !IsKnownType(string(t)) {
			return fmt.Errorf("%w: unknown input type %q", ErrInvalidPath, t)
		}
	}
	return nil
}

// ParsePath parses and validates a dotted path string.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(s, ".")
	ns := parseNamespace(parts[0])
	if ns == NamespaceUnknown {
		return Path{}, fmt.Errorf("%w: unknown namespace in %q", ErrInvalidPath, s)
	}

	p := Path{Namespace: ns}
	i := 1
	for ; i < len(parts) && !IsKnownType(parts[i]); i++ {
		p.Names = append(p.Names, parts[i])
	}
	for ; i < len(parts); i++ {
		p.Types = append(p.Types, Type(parts[i]))
	}

	if err := p.Validate(); err != nil {
		return Path{}, fmt.Errorf("%q: %w", s, err)
	}
	return p, nil
}

// MustParsePath is ParsePath for literals known to be valid.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// UnlockPath returns unlockValue.<types...>.
func UnlockPath(types ...Type) Path {
	return Path{Namespace: UnlockValue, Types: types}
}

// ClauseValuePath returns clauseValue.<clause>.<value>.<types...>.
func ClauseValuePath(clause, value string, types ...Type) Path {
	return Path{Namespace: ClauseValue, Names: []string{clause, value}, Types: types}
}

// ClauseParameterPath returns clauseParameters.<clause>.<param>.<types...>.
func ClauseParameterPath(clause, param string, types ...Type) Path {
	return Path{Namespace: ClauseParameters, Names: []string{clause, param}, Types: types}
}

// ContractParameterPath returns contractParameters.<param>.<types...>.
func ContractParameterPath(param string, types ...Type) Path {
	return Path{Namespace: ContractParameters, Names: []string{param}, Types: types}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
