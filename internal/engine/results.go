// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package engine

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/aplane-algo/equity/internal/chaincore"
)

// LockResult holds the outcome of a locking transaction
type LockResult struct {
	TransactionID string
}

// UnlockStatus says whether an unlocking transaction reached the network
type UnlockStatus string

const (
	// StatusSubmitted means the transaction was fully signed and submitted
	StatusSubmitted UnlockStatus = "submitted"
	// StatusSign means more signatures are needed; Hex carries the partial template
	StatusSign UnlockStatus = "sign"
)

// UnlockResult holds the outcome of an unlocking transaction.
// Exactly one of TxID (submitted) or Hex/Template (sign) is set.
type UnlockResult struct {
	Status UnlockStatus
	TxID   string

	// Hex is the partially signed template, JSON encoded then hex encoded,
	// for passing to the next signer.
	Hex      string
	Template *chaincore.Template
}

// EncodeTemplate serializes a template for out-of-band signing.
func EncodeTemplate(tpl *chaincore.Template) (string, error) {
	data, err := json.Marshal(tpl)
	if err != nil {
		return "", fmt.Errorf("failed to encode template: %w", err)
	}
	return hex.EncodeToString(data), nil
}

// DecodeTemplate reverses EncodeTemplate.
func DecodeTemplate(s string) (*chaincore.Template, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid template hex: %w", err)
	}
	var tpl chaincore.Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return &tpl, nil
}
