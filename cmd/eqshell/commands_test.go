// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aplane-algo/equity/internal/action"
	"github.com/aplane-algo/equity/internal/engine"
	"github.com/aplane-algo/equity/internal/testutil"
	"github.com/aplane-algo/equity/internal/util"
)

var testSig = strings.Repeat("ab", 64)

func newTestState(t *testing.T) (*REPLState, *testutil.MockCoreServer, *bytes.Buffer) {
	t.Helper()
	core := testutil.NewMockCoreServer(t)

	cfg := util.DefaultConfig()
	cfg.CoreURL = core.URL()

	state, err := NewREPLState(t.TempDir(), cfg)
	if err != nil {
		t.Fatalf("NewREPLState() error = %v", err)
	}
	var out bytes.Buffer
	state.Out = &out
	state.Password = func(label string) (string, error) { return "pw-" + label, nil }
	return state, core, &out
}

// exec runs lines in order and returns the output of the last one.
func exec(t *testing.T, state *REPLState, out *bytes.Buffer, lines ...string) string {
	t.Helper()
	for _, line := range lines {
		out.Reset()
		if err := state.executeLine(context.Background(), line); err != nil {
			t.Fatalf("executeLine(%q) error = %v", line, err)
		}
	}
	return out.String()
}

func selectEscrow(t *testing.T, state *REPLState, out *bytes.Buffer) {
	t.Helper()
	pub := testutil.GenerateTestPublicKey(t)
	got := exec(t, state, out,
		"spend "+testutil.OutputID(1)+" "+testutil.AssetID(1)+" 100 Escrow "+pub+" 0014aa 0014bb",
		"clause approve",
		"set unlockValue.accountInput acc1",
		"set clauseParameters.approve.sig.signatureInput "+testSig,
	)
	if strings.Contains(got, "Error") {
		t.Fatalf("setup failed: %s", got)
	}
}

func TestCommands_Registered(t *testing.T) {
	state, _, _ := newTestState(t)
	for _, name := range []string{"contracts", "templates", "spend", "clause", "status", "set", "unset",
		"inputs", "hash", "actions", "unlock", "sign", "lock", "js", "config", "help", "version", "quit", "exit"} {
		if _, ok := state.CommandRegistry.Lookup(name); !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestCommands_Catalog(t *testing.T) {
	state, _, out := newTestState(t)

	got := exec(t, state, out, "contracts")
	for _, name := range []string{"Escrow", "LoanCollateral", "TradeOffer", "CallOption"} {
		if !strings.Contains(got, name) {
			t.Errorf("contracts output missing %s", name)
		}
	}

	got = exec(t, state, out, "contracts LoanCollateral")
	if !strings.Contains(got, "repaymentDue") || !strings.Contains(got, "payment payment -> lender") {
		t.Errorf("contracts LoanCollateral output:\n%s", got)
	}

	got = exec(t, state, out, "templates")
	if !strings.Contains(got, "LoanCollateral.repay") || !strings.Contains(got, "LockPaymentLockValue") || !strings.Contains(got, "args[3]") {
		t.Errorf("templates output:\n%s", got)
	}
}

func TestCommands_UnlockSubmitted(t *testing.T) {
	state, core, out := newTestState(t)
	selectEscrow(t, state, out)

	got := exec(t, state, out, "actions")
	if !strings.Contains(got, action.TypeSpendUnspentOutput) || !strings.Contains(got, "0.4 btm") {
		t.Errorf("actions output:\n%s", got)
	}
	if n := len(core.Builds()); n != 0 {
		t.Errorf("actions called build %d times", n)
	}

	got = exec(t, state, out, "unlock")
	if !strings.Contains(got, "Submitted: tx-1") {
		t.Errorf("unlock output:\n%s", got)
	}
	if pw := core.SignPasswords(); len(pw) != 1 || pw[0] != "pw-key-1" {
		t.Errorf("sign passwords = %v", pw)
	}

	want := []action.Action{
		action.SpendUnspentOutput{OutputID: testutil.OutputID(1)},
		action.ControlWithProgram{AssetID: testutil.AssetID(1), Amount: 100, ControlProgram: "0014bb"},
		action.SpendFromAccount{AssetID: engine.BTMAssetID, Amount: 40000000, AccountID: "acc1"},
	}
	builds := core.Builds()
	if len(builds) != 1 || len(builds[0]) != len(want) {
		t.Fatalf("builds = %+v", builds)
	}
	for i := range want {
		if builds[0][i] != want[i] {
			t.Errorf("action %d = %+v, want %+v", i, builds[0][i], want[i])
		}
	}
}

func TestCommands_UnlockPartialThenSign(t *testing.T) {
	state, core, out := newTestState(t)
	selectEscrow(t, state, out)

	calls := 0
	core.SignHandler = func(testutil.SignCall) testutil.CoreResponse {
		calls++
		return testutil.OK(map[string]any{
			"sign_complete": calls >= 3,
			"transaction":   testutil.MockTemplate{RawTransaction: "raw-signed"},
		})
	}

	got := exec(t, state, out, "unlock 2")
	if !strings.Contains(got, "More signatures needed") {
		t.Fatalf("unlock output:\n%s", got)
	}
	if pw := core.SignPasswords(); len(pw) != 2 || pw[0] != "pw-key-2" || pw[1] != "pw-key-1" {
		t.Errorf("sign order = %v, want last password first", pw)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	hex := lines[len(lines)-1]
	if _, err := engine.DecodeTemplate(hex); err != nil {
		t.Fatalf("printed template does not decode: %v", err)
	}
	if n := len(core.Submits()); n != 0 {
		t.Errorf("partial unlock submitted %d times", n)
	}

	got = exec(t, state, out, "sign "+hex)
	if !strings.Contains(got, "Submitted: tx-1") {
		t.Errorf("sign output:\n%s", got)
	}
}

func TestCommands_Lock(t *testing.T) {
	state, core, out := newTestState(t)

	got := exec(t, state, out, "lock 00aa "+testutil.AssetID(1)+" 7 acc9 200 mbtm")
	if !strings.Contains(got, "Locked: tx-1") {
		t.Errorf("lock output:\n%s", got)
	}
	if pw := core.SignPasswords(); len(pw) != 1 || pw[0] != "pw-acc9" {
		t.Errorf("sign passwords = %v", pw)
	}
	gas := core.Builds()[0][2].(action.SpendFromAccount)
	if gas.Amount != 20000000 || gas.AccountID != "acc9" {
		t.Errorf("gas action = %+v", gas)
	}
}

func TestCommands_ErrorsArePrinted(t *testing.T) {
	state, core, out := newTestState(t)

	tests := []struct {
		name  string
		line  string
		setup func()
		want  string
	}{
		{name: "unknown command", line: "frobnicate", want: "unknown command"},
		{name: "no spend", line: "actions", want: "no contract selected"},
		{name: "bad input value", line: "set unlockValue.gasInput lots", want: "invalid"},
		{name: "bad path", line: "set nowhere.accountInput x", want: "Error:"},
		{name: "unset missing", line: "unset unlockValue.accountInput", want: "missing"},
		{name: "bad hex", line: "sign zz", want: "invalid template hex"},
		{
			name: "core action error",
			line: "lock 00aa " + testutil.AssetID(1) + " 7 acc9 1",
			setup: func() {
				core.BuildHandler = func([]action.Action) testutil.CoreResponse {
					return testutil.Fail("CH706", "Errors occurred in one or more actions",
						map[string]any{"actions": []map[string]string{{"message": "insufficient funds"}}})
				}
			},
			want: "Error: insufficient funds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			if got := exec(t, state, out, tt.line); !strings.Contains(got, tt.want) {
				t.Errorf("%q output = %q, want it to contain %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestCommands_InputsAndHash(t *testing.T) {
	state, _, out := newTestState(t)
	selectEscrow(t, state, out)

	got := exec(t, state, out, "inputs")
	if !strings.Contains(got, "acc1") || !strings.Contains(got, "default 0.4 btm") {
		t.Errorf("inputs output:\n%s", got)
	}

	got = exec(t, state, out, "unset unlockValue.accountInput", "inputs")
	if !strings.Contains(got, "missing") {
		t.Errorf("inputs after unset:\n%s", got)
	}

	got = exec(t, state, out, "hash 68656c6c6f")
	if strings.TrimSpace(got) != "3338be694f50c5f338814986cdf0686453a888b84f424d792af4b9202398f392" {
		t.Errorf("hash output = %q", got)
	}
}

func TestCommands_JS(t *testing.T) {
	state, _, out := newTestState(t)

	if got := exec(t, state, out, "js var n = 20"); got != "" {
		t.Errorf("js declaration printed %q", got)
	}
	if got := exec(t, state, out, "js n + 1"); strings.TrimSpace(got) != "21" {
		t.Errorf("js n + 1 = %q", got)
	}
	got := exec(t, state, out, `js { ({key: selectTemplate("Escrow.reject").kind}) }`)
	if !strings.Contains(got, `"key": "LockValueWithProgram"`) {
		t.Errorf("js object output = %q", got)
	}

	path := filepath.Join(t.TempDir(), "s.js")
	if err := os.WriteFile(path, []byte(`print("from file")`), 0600); err != nil {
		t.Fatal(err)
	}
	if got := exec(t, state, out, "js "+path); strings.TrimSpace(got) != "from file" {
		t.Errorf("js file output = %q", got)
	}
}

func TestCommands_HelpAndQuit(t *testing.T) {
	state, _, out := newTestState(t)

	got := exec(t, state, out, "help")
	if !strings.Contains(got, "Contract Commands") || !strings.Contains(got, state.Config.CoreURL) {
		t.Errorf("help output:\n%s", got)
	}
	got = exec(t, state, out, "help unlock")
	if !strings.Contains(got, "key-1..key-N") {
		t.Errorf("help unlock output:\n%s", got)
	}

	for _, line := range []string{"quit", "exit", "q"} {
		if err := state.executeLine(context.Background(), line); !errors.Is(err, errExit) {
			t.Errorf("executeLine(%q) = %v, want errExit", line, err)
		}
	}
}

func TestReloadConfig(t *testing.T) {
	state, _, out := newTestState(t)
	oldGas := state.Config.DefaultGas

	content := "core_url: http://other.example:9888\ndefault_gas: \"9\"\n"
	if err := os.WriteFile(filepath.Join(state.DataDir, util.ConfigFileName), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	got := exec(t, state, out, "config reload")
	if !strings.Contains(got, "http://other.example:9888") {
		t.Errorf("config reload output = %q", got)
	}
	if state.Config.DefaultGas != oldGas {
		t.Errorf("DefaultGas = %q, want restart-only %q", state.Config.DefaultGas, oldGas)
	}

	state.CoreOverride = "http://flag.example:1"
	if err := state.reloadConfig(); err != nil {
		t.Fatal(err)
	}
	if state.Config.CoreURL != "http://flag.example:1" {
		t.Errorf("CoreURL = %q, want -core override", state.Config.CoreURL)
	}
}
