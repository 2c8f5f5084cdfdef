// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package chaincore is a JSON-over-HTTP client for the chain core's
// transaction endpoints: build, sign, submit and receiver creation.
//
// Every response is wrapped in an envelope with a status field. A "fail"
// status is returned as *RemoteError; failures to reach or read from the
// core wrap ErrUnavailable.
package chaincore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aplane-algo/equity/internal/action"
	"github.com/aplane-algo/equity/internal/util"
)

const (
	// DefaultURL is where a local core listens.
	DefaultURL = "http://localhost:9888"

	// DefaultTimeout bounds each request.
	DefaultTimeout = 30 * time.Second
)

// Options configures a Client. The zero value is usable.
type Options struct {
	// AccessToken is "user:secret", sent as HTTP basic auth. Empty disables auth.
	AccessToken string
	Timeout     time.Duration
	// TTL is how long a built template stays valid on the core. Zero uses the core default.
	TTL time.Duration
	// HTTPClient overrides the transport (tests).
	HTTPClient *http.Client
}

// Client talks to one chain core.
type Client struct {
	baseURL string
	token   string
	ttl     time.Duration
	client  *http.Client
}

// New creates a client for the core at baseURL (DefaultURL when empty).
func New(baseURL string, opts *Options) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	if opts != nil {
		c.token = opts.AccessToken
		c.ttl = opts.TTL
		if opts.Timeout > 0 {
			c.client = &http.Client{Timeout: opts.Timeout}
		}
		if opts.HTTPClient != nil {
			c.client = opts.HTTPClient
		}
	}
	return c
}

// BaseURL returns the core URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BuildTransaction asks the core to balance actions into an unsigned template.
func (c *Client) BuildTransaction(ctx context.Context, actions []action.Action) (*Template, error) {
	util.Debug("build-transaction", "actions", len(actions))
	req := buildRequest{Actions: actions, TTL: uint64(c.ttl / time.Millisecond)}

	var tpl Template
	if err := c.call(ctx, "/build-transaction", req, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// SignTransaction signs tpl with the keys unlocked by password. The returned
// template carries every signature added so far.
func (c *Client) SignTransaction(ctx context.Context, password string, tpl *Template) (*SignResult, error) {
	util.Debug("sign-transaction")
	var res SignResult
	if err := c.call(ctx, "/sign-transaction", signRequest{Password: password, Transaction: tpl}, &res); err != nil {
		return nil, err
	}
	if res.Transaction == nil {
		return nil, fmt.Errorf("%w: sign response has no transaction", ErrUnavailable)
	}
	util.Debug("sign-transaction done", "complete", res.SignComplete)
	return &res, nil
}

// SubmitTransaction broadcasts a fully signed raw transaction and returns its id.
func (c *Client) SubmitTransaction(ctx context.Context, rawTransaction string) (string, error) {
	util.Debug("submit-transaction")
	var res submitResponse
	if err := c.call(ctx, "/submit-transaction", submitRequest{RawTransaction: rawTransaction}, &res); err != nil {
		return "", err
	}
	util.Debug("submit-transaction done", "tx_id", res.TxID)
	return res.TxID, nil
}

// CreateReceiver mints a new control program for accountID.
func (c *Client) CreateReceiver(ctx context.Context, accountID string) (*Receiver, error) {
	util.Debug("create-account-receiver", "account", accountID)
	var r Receiver
	if err := c.call(ctx, "/create-account-receiver", receiverRequest{AccountID: accountID}, &r); err != nil {
		return nil, err
	}
	if r.ControlProgram == "" {
		return nil, fmt.Errorf("%w: receiver response has no control program", ErrUnavailable)
	}
	return &r, nil
}

// call POSTs body to path and decodes the envelope's data into out.
func (c *Client) call(ctx context.Context, path string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		user, secret, _ := strings.Cut(c.token, ":")
		req.SetBasicAuth(user, secret)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuthentication
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading %s response: %w", ErrUnavailable, path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: %s returned %d: %s", ErrUnavailable, path, resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return fmt.Errorf("%w: failed to decode %s response: %w", ErrUnavailable, path, err)
	}

	if env.Status == StatusFail {
		util.Debug("core request failed", "path", path, "code", env.Code, "msg", env.Msg)
		return &RemoteError{Code: env.Code, Message: env.Msg, Detail: env.ErrorDetail, Data: env.Data}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrUnavailable, path, resp.StatusCode)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s data: %w", ErrUnavailable, path, err)
	}
	return nil
}
