// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package scripting

import (
	"context"
	"errors"

	"github.com/dop251/goja"

	"github.com/aplane-algo/equity/internal/engine"
	"github.com/aplane-algo/equity/internal/jsapi"
)

// GojaRunner implements Runner using the Goja JavaScript interpreter.
type GojaRunner struct {
	vm     *goja.Runtime
	api    *jsapi.API
	output func(string)
}

// NewGojaRunner creates a runner whose globals are bound to eng.
func NewGojaRunner(eng *engine.Engine, verbose bool) *GojaRunner {
	r := &GojaRunner{
		output: func(s string) {}, // Default: discard output
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	// Wrap output so SetOutput works after creation
	api := jsapi.NewAPI(eng, verbose, func(msg string) {
		r.output(msg)
	})
	if err := api.RegisterAll(vm); err != nil {
		// Registration errors are programming bugs, not runtime errors
		panic("failed to register JS API: " + err.Error())
	}

	r.vm = vm
	r.api = api
	return r
}

// Run executes JavaScript code and returns the result.
func (r *GojaRunner) Run(code string) (Result, error) {
	result, err := r.vm.RunString(code)
	if err != nil {
		var jsErr *goja.Exception
		if errors.As(err, &jsErr) {
			// An uncaught Go error keeps its identity so callers can classify it.
			if inner := goError(jsErr); inner != nil {
				return Result{}, inner
			}
			return Result{}, &ScriptError{Message: jsErr.String()}
		}
		return Result{}, err
	}

	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return Result{IsEmpty: true}, nil
	}
	return Result{Value: result.Export()}, nil
}

// goError returns the Go error carried by an exception raised with NewGoError.
func goError(ex *goja.Exception) error {
	obj, ok := ex.Value().(*goja.Object)
	if !ok {
		return nil
	}
	v := obj.Get("value")
	if v == nil {
		return nil
	}
	err, _ := v.Export().(error)
	return err
}

// SetOutput sets the function used for print() and log() output.
func (r *GojaRunner) SetOutput(fn func(string)) {
	if fn == nil {
		r.output = func(s string) {}
	} else {
		r.output = fn
	}
}

// SetContext bounds core calls made by subsequent scripts.
func (r *GojaRunner) SetContext(ctx context.Context) {
	r.api.SetContext(ctx)
}

// Interrupt stops the currently running script.
// Safe to call from another goroutine (e.g., for timeout enforcement).
func (r *GojaRunner) Interrupt() {
	r.vm.Interrupt("script interrupted")
}

// Compile-time interface check
var _ Runner = (*GojaRunner)(nil)
