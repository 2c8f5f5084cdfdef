// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

// Contract catalog and selection commands

import (
	"fmt"
	"strings"

	"github.com/aplane-algo/equity/internal/command"
	"github.com/aplane-algo/equity/internal/contracts"
	"github.com/aplane-algo/equity/internal/template"
	"github.com/aplane-algo/equity/internal/util"
)

func (r *REPLState) cmdContracts(args []string, ctx *command.Context) error {
	w := ctx.Writer()
	if len(args) == 0 {
		rows := make([][]string, 0, len(contracts.Names()))
		for _, c := range contracts.All() {
			rows = append(rows, []string{c.Name, strings.Join(c.ClauseNames(), ", "), c.Description})
		}
		renderTable(w, []string{"Contract", "Clauses", "Description"}, rows)
		return nil
	}

	c, err := contracts.Get(args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n%s\n\n", util.Styled(util.TitleStyle, c.Name), c.Description)
	_, _ = fmt.Fprintln(w, "Parameters (spend arguments, in order):")
	for i, p := range c.Params {
		_, _ = fmt.Fprintf(w, "  %d. %-16s %s\n", i+1, p.Name, p.Type)
	}
	_, _ = fmt.Fprintln(w, "\nClauses:")
	for _, cl := range c.Clauses {
		var params []string
		for _, p := range cl.Params {
			params = append(params, p.Name+" "+string(p.Type))
		}
		var values []string
		for _, v := range cl.Values {
			s := v.Kind.String() + " " + v.Name
			if v.Program != "" {
				s += " -> " + v.Program
			}
			values = append(values, s)
		}
		_, _ = fmt.Fprintf(w, "  %s(%s): %s\n", cl.Name, strings.Join(params, ", "), strings.Join(values, "; "))
	}
	return nil
}

func (r *REPLState) cmdTemplates(_ []string, ctx *command.Context) error {
	var rows [][]string
	for _, key := range template.Keys() {
		sel, err := template.Select(key)
		if err != nil {
			return err
		}
		program := "-"
		if sel.ArgIndex >= 0 {
			program = fmt.Sprintf("args[%d]", sel.ArgIndex)
		}
		rows = append(rows, []string{key, sel.Kind.String(), program})
	}
	renderTable(ctx.Writer(), []string{"Clause", "Template", "Program"}, rows)
	return nil
}

func (r *REPLState) cmdSpend(args []string, ctx *command.Context) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: spend <outputID> <assetID> <amount> <Contract> [args...]")
	}
	if err := r.Session.SetSpend(args[0], args[1], args[2], args[3], args[4:]); err != nil {
		return err
	}
	c := r.Session.Contract
	_, _ = fmt.Fprintf(ctx.Writer(), "Spending %s output %s (clauses: %s)\n",
		c.Name, util.ShortHex(args[0]), strings.Join(c.ClauseNames(), ", "))
	return nil
}

func (r *REPLState) cmdClause(args []string, ctx *command.Context) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: clause <name>")
	}
	if err := r.Session.SetClause(args[0]); err != nil {
		return err
	}
	key := r.Session.ClauseKey()
	sel, err := template.Select(key)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ctx.Writer(), "Clause %s uses the %s template\n", key, sel.Kind)
	return r.showRequired(ctx)
}

func (r *REPLState) cmdStatus(_ []string, ctx *command.Context) error {
	w := ctx.Writer()
	s := r.Session
	if s.Contract == nil {
		_, _ = fmt.Fprintln(w, "No contract selected (use 'spend')")
		return nil
	}
	_, _ = fmt.Fprintf(w, "Contract: %s\n", s.Contract.Name)
	_, _ = fmt.Fprintf(w, "Output:   %s\n", s.Spend.OutputID)
	_, _ = fmt.Fprintf(w, "Value:    %d of %s\n", s.Spend.Amount, s.Spend.AssetID)
	for i, p := range s.Contract.Params {
		_, _ = fmt.Fprintf(w, "  %-16s %s\n", p.Name, util.ShortHex(s.Spend.Args[i]))
	}
	if s.Clause == "" {
		_, _ = fmt.Fprintln(w, "Clause:   none (use 'clause')")
		return nil
	}
	_, _ = fmt.Fprintf(w, "Clause:   %s\n", s.Clause)
	return r.showRequired(ctx)
}
