// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package jsapi

// JavaScript API functions that talk to the chain core:
// - buildActions: clause key + contract spend + inputs -> action list
// - unlock / sign: multi-party unlocking
// - lock: single-signer locking
// - parseError: user-facing message for a thrown core error

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dop251/goja"

	"github.com/aplane-algo/equity/internal/action"
	"github.com/aplane-algo/equity/internal/chaincore"
	"github.com/aplane-algo/equity/internal/engine"
	"github.com/aplane-algo/equity/internal/template"
)

// unlockRequest reads {clause, spend: {outputId, assetId, amount, args}, inputs, passwords}.
func (a *API) unlockRequest(fn string, v goja.Value) engine.UnlockRequest {
	opts := a.requireObject(fn, v)

	spend := a.requireObject(fn+" spend", a.runtime.ToValue(opts["spend"]))
	amount, err := optUint(spend, "amount")
	if err != nil {
		a.throw(fmt.Errorf("%s: spend.amount: %w", fn, err))
	}
	args, err := optStrings(spend, "args")
	if err != nil {
		a.throw(fmt.Errorf("%s: spend.args: %w", fn, err))
	}

	inputMap, err := toInputMap(opts["inputs"])
	if err != nil {
		a.throw(fmt.Errorf("%s: %w", fn, err))
	}
	passwords, err := optStrings(opts, "passwords")
	if err != nil {
		a.throw(fmt.Errorf("%s: passwords: %w", fn, err))
	}

	return engine.UnlockRequest{
		ClauseKey: optString(opts, "clause"),
		Contract: template.ContractSpend{
			OutputID: optString(spend, "outputId"),
			AssetID:  optString(spend, "assetId"),
			Amount:   amount,
			Args:     args,
		},
		Inputs:    inputMap,
		Passwords: passwords,
	}
}

// jsBuildActions assembles the action list for a clause without signing.
// The core is still called once for the receiver program when the clause needs one.
func (a *API) jsBuildActions(call goja.FunctionCall) goja.Value {
	a.requireArgs(call, 1, "buildActions() requires an options object")
	req := a.unlockRequest("buildActions()", call.Arguments[0])

	actions, err := a.engine.BuildUnlockActions(a.ctx, req)
	if err != nil {
		a.throw(err)
	}
	return a.actionsValue(actions)
}

// jsUnlock builds, signs and submits an unlocking transaction.
// unlock({...}) -> {status: "submitted", txId} | {status: "sign", hex}
func (a *API) jsUnlock(call goja.FunctionCall) goja.Value {
	a.requireArgs(call, 1, "unlock() requires an options object")
	req := a.unlockRequest("unlock()", call.Arguments[0])

	res, err := a.engine.Unlock(a.ctx, req)
	if err != nil {
		a.throw(err)
	}
	a.logf("unlock %s: %s", req.ClauseKey, res.Status)
	return a.unlockValue(res)
}

// jsSign continues a partially signed template.
// sign(hex, [passwords]) -> same shape as unlock()
func (a *API) jsSign(call goja.FunctionCall) goja.Value {
	a.requireArgs(call, 2, "sign() requires a template hex and a password list")
	res, err := a.engine.ContinueSigning(a.ctx, call.Arguments[0].String(), toStringArray(call.Arguments[1]))
	if err != nil {
		a.throw(err)
	}
	return a.unlockValue(res)
}

// jsLock locks value under a contract program.
// lock({accountId, assetId, amount, program, password, gas?, gasUnit?}) -> {txId}
func (a *API) jsLock(call goja.FunctionCall) goja.Value {
	a.requireArgs(call, 1, "lock() requires an options object")
	opts := a.requireObject("lock()", call.Arguments[0])

	amount, err := optUint(opts, "amount")
	if err != nil {
		a.throw(fmt.Errorf("lock(): amount: %w", err))
	}
	req := engine.LockRequest{
		Value: template.LockValue{
			AccountID: optString(opts, "accountId"),
			AssetID:   optString(opts, "assetId"),
			Amount:    amount,
		},
		Program:  optString(opts, "program"),
		Gas:      optScalar(opts, "gas"),
		GasUnit:  optString(opts, "gasUnit"),
		Password: optString(opts, "password"),
	}

	res, err := a.engine.Lock(a.ctx, req)
	if err != nil {
		a.throw(err)
	}
	return a.runtime.ToValue(map[string]interface{}{"txId": res.TransactionID})
}

// jsParseError turns a caught exception into the message a user should see.
func (a *API) jsParseError(call goja.FunctionCall) goja.Value {
	a.requireArgs(call, 1, "parseError() requires an error")
	v := call.Arguments[0]
	if obj, ok := v.(*goja.Object); ok {
		if inner := obj.Get("value"); inner != nil {
			if err, ok := inner.Export().(error); ok {
				return a.runtime.ToValue(chaincore.ParseError(err))
			}
		}
		if msg := obj.Get("message"); msg != nil && !goja.IsUndefined(msg) {
			return a.runtime.ToValue(msg.String())
		}
	}
	return a.runtime.ToValue(chaincore.ParseError(errors.New(v.String())))
}

func (a *API) unlockValue(res *engine.UnlockResult) goja.Value {
	out := map[string]interface{}{"status": string(res.Status)}
	if res.Status == engine.StatusSubmitted {
		out["txId"] = res.TxID
	} else {
		out["hex"] = res.Hex
	}
	return a.runtime.ToValue(out)
}

// actionsValue converts actions to plain objects in their wire shape.
func (a *API) actionsValue(actions []action.Action) goja.Value {
	data, err := json.Marshal(actions)
	if err != nil {
		a.throw(err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		a.throw(err)
	}
	return a.runtime.ToValue(out)
}

func (a *API) logf(format string, args ...interface{}) {
	if a.verbose {
		a.outputMsg("[debug] " + fmt.Sprintf(format, args...))
	}
}
