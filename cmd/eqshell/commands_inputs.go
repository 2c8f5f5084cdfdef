// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

// Input map commands

import (
	"fmt"

	"github.com/aplane-algo/equity/internal/command"
	"github.com/aplane-algo/equity/internal/inputs"
	"github.com/aplane-algo/equity/internal/util"
)

func (r *REPLState) cmdSet(args []string, ctx *command.Context) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <path> <value>")
	}
	p, err := inputs.ParsePath(args[0])
	if err != nil {
		return err
	}
	in := &inputs.Input{Path: p, Value: args[1]}
	if err := in.Validate(); err != nil {
		return err
	}
	if err := r.Session.Inputs.Set(p, args[1]); err != nil {
		return err
	}
	util.Debug("input set", "path", p.String())
	_, _ = fmt.Fprintf(ctx.Writer(), "%s = %s\n", p, args[1])
	return nil
}

func (r *REPLState) cmdUnset(args []string, ctx *command.Context) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: unset <path>")
	}
	p, err := inputs.ParsePath(args[0])
	if err != nil {
		return err
	}
	if !r.Session.Inputs.Has(p) {
		return fmt.Errorf("%w: %s", inputs.ErrMissingInput, p)
	}
	r.Session.Inputs.Delete(p)
	_, _ = fmt.Fprintf(ctx.Writer(), "%s removed\n", p)
	return nil
}

func (r *REPLState) cmdInputs(args []string, ctx *command.Context) error {
	if len(args) > 0 && args[0] == "all" {
		all := r.Session.Inputs.Inputs()
		if len(all) == 0 {
			_, _ = fmt.Fprintln(ctx.Writer(), "No inputs set")
			return nil
		}
		rows := make([][]string, len(all))
		for i, in := range all {
			rows[i] = []string{in.Path.String(), in.Value}
		}
		renderTable(ctx.Writer(), []string{"Path", "Value"}, rows)
		return nil
	}
	return r.showRequired(ctx)
}

// showRequired prints the selected clause's inputs and which are still missing.
func (r *REPLState) showRequired(ctx *command.Context) error {
	required, err := r.Session.Required()
	if err != nil {
		return err
	}
	rows := make([][]string, len(required))
	for i, st := range required {
		value := util.Styled(util.WarningStyle, "missing")
		if st.Set {
			value = st.Value
		} else if st.Path.Leaf() == inputs.GasInput && r.Engine.DefaultGas != "" {
			value = util.Styled(util.DimStyle, "default "+r.Engine.DefaultGas+" "+r.Engine.DefaultGasUnit)
		}
		rows[i] = []string{st.Path.String(), value}
	}
	renderTable(ctx.Writer(), []string{"Input", "Value"}, rows)
	return nil
}

func (r *REPLState) cmdHash(args []string, ctx *command.Context) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: hash <preimage-hex>")
	}
	h, err := inputs.ComputeHash(args[0])
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(ctx.Writer(), h)
	return nil
}
