// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aplane-algo/equity/internal/chaincore"
	"github.com/aplane-algo/equity/internal/testutil"
)

// completeOnCall makes the mock core report sign_complete on call n (1-based)
// and return "raw-signed-<k>" from call k.
func completeOnCall(core *testutil.MockCoreServer, n int) {
	calls := 0
	core.SignHandler = func(testutil.SignCall) testutil.CoreResponse {
		calls++
		return testutil.OK(map[string]any{
			"sign_complete": calls >= n,
			"transaction":   testutil.MockTemplate{RawTransaction: fmt.Sprintf("raw-signed-%d", calls)},
		})
	}
}

func rawOf(t *testing.T, call testutil.SignCall) string {
	t.Helper()
	var tpl chaincore.Template
	if err := json.Unmarshal(call.Transaction, &tpl); err != nil {
		t.Fatalf("bad sign request transaction: %v", err)
	}
	return tpl.RawTransaction
}

func TestMultiSign_ReverseOrderUntilComplete(t *testing.T) {
	eng, core := newTestEngine(t)
	completeOnCall(core, 3)

	passwords := []string{"p1", "p2", "p3"}
	out, err := eng.MultiSign(context.Background(), &chaincore.Template{RawTransaction: "raw-unsigned"}, passwords)
	if err != nil {
		t.Fatalf("MultiSign() error = %v", err)
	}

	if _, ok := out.(Complete); !ok {
		t.Fatalf("MultiSign() = %T, want Complete", out)
	}
	if got := out.Template().RawTransaction; got != "raw-signed-3" {
		t.Errorf("template = %q, want raw-signed-3", got)
	}

	got := core.SignPasswords()
	want := []string{"p3", "p2", "p1"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("sign order = %v, want %v", got, want)
	}

	// Each call signs what the previous call returned.
	signs := core.Signs()
	wantRaw := []string{"raw-unsigned", "raw-signed-1", "raw-signed-2"}
	for i, s := range signs {
		if r := rawOf(t, s); r != wantRaw[i] {
			t.Errorf("call %d signed %q, want %q", i, r, wantRaw[i])
		}
	}

	if fmt.Sprint(passwords) != "[p1 p2 p3]" {
		t.Errorf("passwords mutated: %v", passwords)
	}
}

func TestMultiSign_StopsEarlyOnComplete(t *testing.T) {
	eng, core := newTestEngine(t)
	completeOnCall(core, 1)

	out, err := eng.MultiSign(context.Background(), &chaincore.Template{}, []string{"p1", "p2", "p3"})
	if err != nil {
		t.Fatalf("MultiSign() error = %v", err)
	}
	if !out.Complete() {
		t.Error("expected Complete")
	}
	if got := core.SignPasswords(); len(got) != 1 || got[0] != "p3" {
		t.Errorf("sign calls = %v, want [p3]", got)
	}
}

func TestMultiSign_EmptyPasswords(t *testing.T) {
	eng, core := newTestEngine(t)

	tpl := &chaincore.Template{RawTransaction: "raw-unsigned"}
	out, err := eng.MultiSign(context.Background(), tpl, nil)
	if err != nil {
		t.Fatalf("MultiSign() error = %v", err)
	}
	p, ok := out.(Partial)
	if !ok {
		t.Fatalf("MultiSign() = %T, want Partial", out)
	}
	if p.Template() != tpl {
		t.Error("Partial should carry the unsigned template")
	}
	if n := len(core.Signs()); n != 0 {
		t.Errorf("sign called %d times, want 0", n)
	}
}

func TestMultiSign_Exhausted(t *testing.T) {
	eng, core := newTestEngine(t)
	completeOnCall(core, 5)

	out, err := eng.MultiSign(context.Background(), &chaincore.Template{}, []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("MultiSign() error = %v", err)
	}
	if out.Complete() {
		t.Fatal("expected Partial")
	}
	if got := out.Template().RawTransaction; got != "raw-signed-2" {
		t.Errorf("partial template = %q, want latest raw-signed-2", got)
	}
}

func TestMultiSign_FailStatusStops(t *testing.T) {
	eng, core := newTestEngine(t)
	core.SignHandler = func(testutil.SignCall) testutil.CoreResponse {
		return testutil.Fail("CH000", "wrong password", nil)
	}

	_, err := eng.MultiSign(context.Background(), &chaincore.Template{}, []string{"p1", "p2"})
	if err == nil || err.Error() != "wrong password" {
		t.Fatalf("MultiSign() error = %v, want wrong password", err)
	}
	if n := len(core.Signs()); n != 1 {
		t.Errorf("sign called %d times after failure, want 1", n)
	}
}

func TestMultiSign_PassesReturnedTemplateThrough(t *testing.T) {
	eng, core := newTestEngine(t)
	core.SignHandler = func(testutil.SignCall) testutil.CoreResponse {
		return testutil.OK(map[string]any{
			"sign_complete": false,
			"transaction":   json.RawMessage(`{"raw_transaction":"raw","fee":123,"signing_instructions":[]}`),
		})
	}

	out, err := eng.MultiSign(context.Background(), &chaincore.Template{RawTransaction: "raw-unsigned"}, []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("MultiSign() error = %v", err)
	}

	signs := core.Signs()
	if len(signs) != 2 {
		t.Fatalf("sign called %d times, want 2", len(signs))
	}
	var second map[string]json.RawMessage
	if err := json.Unmarshal(signs[1].Transaction, &second); err != nil {
		t.Fatal(err)
	}
	if string(second["fee"]) != "123" || string(second["raw_transaction"]) != `"raw"` {
		t.Errorf("second sign request transaction = %s", signs[1].Transaction)
	}

	s, err := EncodeTemplate(out.Template())
	if err != nil {
		t.Fatalf("EncodeTemplate() error = %v", err)
	}
	decoded, err := DecodeTemplate(s)
	if err != nil {
		t.Fatalf("DecodeTemplate() error = %v", err)
	}
	if fee, ok := decoded.Field("fee"); !ok || string(fee) != "123" {
		t.Errorf("decoded partial template fee = %s, %v", fee, ok)
	}
}
