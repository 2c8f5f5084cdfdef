// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package jsapi

import (
	"github.com/dop251/goja"

	"github.com/aplane-algo/equity/internal/contracts"
	"github.com/aplane-algo/equity/internal/template"
)

// jsContracts lists the catalog.
// contracts() -> [{name, params: [{name, type}], clauses: [name]}]
func (a *API) jsContracts(call goja.FunctionCall) goja.Value {
	all := contracts.All()
	out := make([]map[string]interface{}, 0, len(all))
	for _, c := range all {
		params := make([]map[string]interface{}, 0, len(c.Params))
		for _, p := range c.Params {
			params = append(params, map[string]interface{}{"name": p.Name, "type": string(p.Type)})
		}
		out = append(out, map[string]interface{}{
			"name":    c.Name,
			"params":  params,
			"clauses": c.ClauseNames(),
		})
	}
	return a.runtime.ToValue(out)
}

// jsTemplates returns every registered clause key, sorted.
func (a *API) jsTemplates(call goja.FunctionCall) goja.Value {
	return a.runtime.ToValue(template.Keys())
}

// jsSelectTemplate looks up one clause key.
// selectTemplate("TradeOffer.trade") -> {key, kind, argIndex}
func (a *API) jsSelectTemplate(call goja.FunctionCall) goja.Value {
	a.requireArgs(call, 1, "selectTemplate() requires a clause key")
	sel, err := template.Select(call.Arguments[0].String())
	if err != nil {
		a.throw(err)
	}
	return a.runtime.ToValue(map[string]interface{}{
		"key":      sel.Key,
		"kind":     sel.Kind.String(),
		"argIndex": sel.ArgIndex,
	})
}

// jsUnlockInputs lists the input paths a clause reads.
// unlockInputs("Escrow", "approve") -> ["unlockValue.accountInput", ...]
func (a *API) jsUnlockInputs(call goja.FunctionCall) goja.Value {
	a.requireArgs(call, 2, "unlockInputs() requires contract and clause names")
	c, err := contracts.Get(call.Arguments[0].String())
	if err != nil {
		a.throw(err)
	}
	paths, err := c.UnlockInputs(call.Arguments[1].String())
	if err != nil {
		a.throw(err)
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return a.runtime.ToValue(out)
}
