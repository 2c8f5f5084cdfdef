// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package testutil

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aplane-algo/equity/internal/action"
)

// CoreResponse is what a mock handler answers with. It is wrapped in the
// core's {status, code, msg, data} envelope.
type CoreResponse struct {
	Status string
	Code   string
	Msg    string
	Data   any
}

// OK returns a success response carrying data.
func OK(data any) CoreResponse {
	return CoreResponse{Status: "success", Data: data}
}

// Fail returns a failure response.
func Fail(code, msg string, data any) CoreResponse {
	return CoreResponse{Status: "fail", Code: code, Msg: msg, Data: data}
}

// SignCall records one sign-transaction request.
type SignCall struct {
	Password    string
	Transaction json.RawMessage
}

// MockTemplate is the template shape the mock core hands out.
type MockTemplate struct {
	RawTransaction      string          `json:"raw_transaction"`
	SigningInstructions json.RawMessage `json:"signing_instructions,omitempty"`
	AllowAdditional     bool            `json:"allow_additional_actions"`
	Local               bool            `json:"local"`
}

// ReceiverProgram is the control program the default receiver handler mints for an account.
func ReceiverProgram(accountID string) string {
	return "0014" + hex.EncodeToString([]byte(accountID))
}

// MockCoreServer is an httptest chain core. Replace any handler to script
// responses; every request is recorded.
type MockCoreServer struct {
	Server *httptest.Server

	BuildHandler    func(actions []action.Action) CoreResponse
	SignHandler     func(call SignCall) CoreResponse
	SubmitHandler   func(rawTransaction string) CoreResponse
	ReceiverHandler func(accountID string) CoreResponse

	mu        sync.Mutex
	builds    [][]action.Action
	signs     []SignCall
	submits   []string
	receivers []string
}

// NewMockCoreServer starts a mock core that builds "raw-unsigned", completes
// signing on the first sign call and accepts every submit as "tx-1".
func NewMockCoreServer(t *testing.T) *MockCoreServer {
	t.Helper()

	m := &MockCoreServer{}

	m.BuildHandler = func([]action.Action) CoreResponse {
		return OK(MockTemplate{RawTransaction: "raw-unsigned", SigningInstructions: json.RawMessage(`[]`)})
	}
	m.SignHandler = func(call SignCall) CoreResponse {
		return OK(map[string]any{
			"sign_complete": true,
			"transaction":   MockTemplate{RawTransaction: "raw-signed"},
		})
	}
	m.SubmitHandler = func(string) CoreResponse {
		return OK(map[string]string{"tx_id": "tx-1"})
	}
	m.ReceiverHandler = func(accountID string) CoreResponse {
		return OK(map[string]string{"control_program": ReceiverProgram(accountID), "address": "bm1q" + accountID})
	}

	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/build-transaction":
			m.handleBuild(w, r)
		case "/sign-transaction":
			m.handleSign(w, r)
		case "/submit-transaction":
			m.handleSubmit(w, r)
		case "/create-account-receiver":
			m.handleReceiver(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(m.Server.Close)

	return m
}

func (m *MockCoreServer) handleBuild(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Actions json.RawMessage `json:"actions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	actions, err := action.DecodeList(req.Actions)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.builds = append(m.builds, actions)
	m.mu.Unlock()

	writeEnvelope(w, m.BuildHandler(actions))
}

func (m *MockCoreServer) handleSign(w http.ResponseWriter, r *http.Request) {
	var call SignCall
	var req struct {
		Password    string          `json:"password"`
		Transaction json.RawMessage `json:"transaction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	call.Password, call.Transaction = req.Password, req.Transaction

	m.mu.Lock()
	m.signs = append(m.signs, call)
	m.mu.Unlock()

	writeEnvelope(w, m.SignHandler(call))
}

func (m *MockCoreServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RawTransaction string `json:"raw_transaction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.submits = append(m.submits, req.RawTransaction)
	m.mu.Unlock()

	writeEnvelope(w, m.SubmitHandler(req.RawTransaction))
}

func (m *MockCoreServer) handleReceiver(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID string `json:"account_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.receivers = append(m.receivers, req.AccountID)
	m.mu.Unlock()

	writeEnvelope(w, m.ReceiverHandler(req.AccountID))
}

func writeEnvelope(w http.ResponseWriter, resp CoreResponse) {
	env := map[string]any{"status": resp.Status}
	if resp.Code != "" {
		env["code"] = resp.Code
	}
	if resp.Msg != "" {
		env["msg"] = resp.Msg
	}
	if resp.Data != nil {
		env["data"] = resp.Data
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(env)
}

// URL returns the server URL
func (m *MockCoreServer) URL() string {
	return m.Server.URL
}

// Builds returns the action lists received by build-transaction.
func (m *MockCoreServer) Builds() [][]action.Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]action.Action(nil), m.builds...)
}

// Signs returns the sign-transaction requests in arrival order.
func (m *MockCoreServer) Signs() []SignCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SignCall(nil), m.signs...)
}

// SignPasswords returns the password of each sign request in arrival order.
func (m *MockCoreServer) SignPasswords() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.signs))
	for i, s := range m.signs {
		out[i] = s.Password
	}
	return out
}

// Submits returns the raw transactions received by submit-transaction.
func (m *MockCoreServer) Submits() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.submits...)
}

// Receivers returns the account ids passed to create-account-receiver.
func (m *MockCoreServer) Receivers() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.receivers...)
}
