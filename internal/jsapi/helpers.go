// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package jsapi

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dop251/goja"

	"github.com/aplane-algo/equity/internal/inputs"
)

// makeUnitFunc creates a gas helper bound to a runtime.
// btm(0.4) -> 40000000, mbtm(400) -> 40000000
func makeUnitFunc(vm *goja.Runtime, unit string) func(call goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(vm.ToValue(unit + "() requires a number argument"))
		}
		neu, err := inputs.GasNeu(call.Arguments[0].String(), unit)
		if err != nil {
			panic(vm.ToValue(fmt.Sprintf("%s(): %v", unit, err)))
		}
		return vm.ToValue(neu)
	}
}

// requireArgs panics with a JS exception if the call has fewer than n arguments.
func (a *API) requireArgs(call goja.FunctionCall, n int, msg string) {
	if len(call.Arguments) < n {
		panic(a.runtime.ToValue(msg))
	}
}

// requireObject exports v as a plain object or throws.
func (a *API) requireObject(fn string, v goja.Value) map[string]interface{} {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		panic(a.runtime.ToValue(fn + " requires an object"))
	}
	m, ok := v.Export().(map[string]interface{})
	if !ok {
		panic(a.runtime.ToValue(fn + " requires an object"))
	}
	return m
}

// errNegativeValue is returned when a negative value is passed where uint64 is expected.
var errNegativeValue = fmt.Errorf("value cannot be negative")

// toUint64Interface converts an exported JS number to uint64.
func toUint64Interface(v interface{}) (uint64, error) {
	switch val := v.(type) {
	case int64:
		if val < 0 {
			return 0, errNegativeValue
		}
		return uint64(val), nil
	case float64:
		if val < 0 {
			return 0, errNegativeValue
		}
		if val != math.Trunc(val) {
			return 0, fmt.Errorf("%v is not an integer", val)
		}
		return uint64(val), nil
	case int:
		if val < 0 {
			return 0, errNegativeValue
		}
		return uint64(val), nil
	case uint64:
		return val, nil
	case string:
		return strconv.ParseUint(val, 10, 64)
	default:
		return 0, fmt.Errorf("unsupported type for uint64 conversion: %T", v)
	}
}

// toScalarString renders an exported JS string or number the way a user would type it.
func toScalarString(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case int:
		return strconv.Itoa(val), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// toStringArray converts a Goja value to []string.
func toStringArray(v goja.Value) []string {
	exported := v.Export()
	switch arr := exported.(type) {
	case []interface{}:
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case []string:
		return arr
	default:
		return nil
	}
}

func optString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

// optScalar is optString that also accepts numbers.
func optScalar(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	s, _ := toScalarString(v)
	return s
}

func optUint(m map[string]interface{}, key string) (uint64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	return toUint64Interface(v)
}

func optStrings(m map[string]interface{}, key string) ([]string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an array, got %T", v)
	}
	out := make([]string, len(arr))
	for i, item := range arr {
		s, err := toScalarString(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// toInputMap builds an input map from {"<path>": value}.
func toInputMap(v interface{}) (*inputs.Map, error) {
	if v == nil {
		return inputs.NewMap(nil)
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("inputs must be an object, got %T", v)
	}

	entries := make(map[string]string, len(obj))
	for k, raw := range obj {
		s, err := toScalarString(raw)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", k, err)
		}
		entries[k] = s
	}
	return inputs.NewMap(entries)
}
