// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package chaincore

import (
	"encoding/json"
	"errors"
)

var (
	// ErrUnavailable indicates the core could not be reached or returned an unreadable response.
	ErrUnavailable = errors.New("chain core unavailable")

	// ErrAuthentication indicates the access token was rejected (HTTP 401).
	ErrAuthentication = errors.New("authentication failed: invalid or missing access token")
)

// Error codes with dedicated user-facing messages.
const (
	CodeActionError   = "CH706"
	CodeTimeRange     = "CH707"
	CodeTxRejected    = "CH735"
	msgTimeRange      = "The current time fails contract validation. Check arguments to before() and after() function calls."
	msgTxRejected     = "The transaction failed validation."
	fallbackRemoteMsg = "chain core request failed"
)

// RemoteError is a response the core answered with status "fail".
// It is distinct from transport failures, which wrap ErrUnavailable.
type RemoteError struct {
	Code    string
	Message string
	Detail  string
	// Data is the raw "data" member of the failing response.
	Data json.RawMessage
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return fallbackRemoteMsg
}

// ParseError turns an error from this package into a message for the user.
// Known core codes get a fixed or extracted message; anything else is
// returned as err.Error().
func ParseError(err error) string {
	if err == nil {
		return ""
	}

	var re *RemoteError
	if !errors.As(err, &re) {
		return err.Error()
	}

	switch re.Code {
	case CodeActionError:
		if msg := firstActionMessage(re.Data); msg != "" {
			return msg
		}
		return err.Error()
	case CodeTimeRange:
		return msgTimeRange
	case CodeTxRejected:
		return msgTxRejected
	default:
		return err.Error()
	}
}

// firstActionMessage extracts data.actions[0].message, or "" when any level is absent.
func firstActionMessage(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var body struct {
		Actions []struct {
			Message string `json:"message"`
		} `json:"actions"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Actions) == 0 {
		return ""
	}
	return body.Actions[0].Message
}
