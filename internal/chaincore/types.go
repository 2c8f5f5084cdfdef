// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package chaincore

import (
	"encoding/json"

	"github.com/aplane-algo/equity/internal/action"
)

// Response status values in the core's envelope.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Template is a transaction template as returned by build and sign.
// SigningInstructions are passed through unmodified, and so is every field
// the core sends that is not declared here.
type Template struct {
	RawTransaction      string          `json:"raw_transaction"`
	SigningInstructions json.RawMessage `json:"signing_instructions,omitempty"`
	AllowAdditional     bool            `json:"allow_additional_actions"`
	Local               bool            `json:"local"`

	extra map[string]json.RawMessage
}

// templateFields has Template's layout without its JSON methods.
type templateFields Template

var declaredTemplateFields = []string{"raw_transaction", "signing_instructions", "allow_additional_actions", "local"}

// UnmarshalJSON decodes the declared fields and keeps the rest verbatim.
func (t *Template) UnmarshalJSON(data []byte) error {
	var fields templateFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, name := range declaredTemplateFields {
		delete(all, name)
	}
	*t = Template(fields)
	t.extra = nil
	if len(all) > 0 {
		t.extra = all
	}
	return nil
}

// MarshalJSON emits the declared fields merged over the undeclared ones.
func (t Template) MarshalJSON() ([]byte, error) {
	declared, err := json.Marshal(templateFields(t))
	if err != nil || len(t.extra) == 0 {
		return declared, err
	}
	merged := make(map[string]json.RawMessage, len(t.extra)+len(declaredTemplateFields))
	for name, v := range t.extra {
		merged[name] = v
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(declared, &fields); err != nil {
		return nil, err
	}
	for name, v := range fields {
		merged[name] = v
	}
	return json.Marshal(merged)
}

// Field returns an undeclared field exactly as the core sent it.
func (t *Template) Field(name string) (json.RawMessage, bool) {
	v, ok := t.extra[name]
	return v, ok
}

// SignResult is the outcome of one sign call.
type SignResult struct {
	SignComplete bool      `json:"sign_complete"`
	Transaction  *Template `json:"transaction"`
}

// Receiver is a freshly minted control program for an account.
type Receiver struct {
	ControlProgram string `json:"control_program"`
	Address        string `json:"address,omitempty"`
}

// envelope wraps every core response.
type envelope struct {
	Status      string          `json:"status"`
	Code        string          `json:"code,omitempty"`
	Msg         string          `json:"msg,omitempty"`
	ErrorDetail string          `json:"error_detail,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

type buildRequest struct {
	Actions []action.Action `json:"actions"`
	TTL     uint64          `json:"ttl,omitempty"`
}

type signRequest struct {
	Password    string    `json:"password"`
	Transaction *Template `json:"transaction"`
}

type submitRequest struct {
	RawTransaction string `json:"raw_transaction"`
}

type submitResponse struct {
	TxID string `json:"tx_id"`
}

type receiverRequest struct {
	AccountID string `json:"account_id"`
}
