// Package adminapi is the admin application's client factory. The admin
// surface in this repository is deliberately a stub: one configured client
// against the /admin base path with the same bearer behavior as the
// storefront client.
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bookstorefront/internal/api"
)

// Client calls the admin API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     api.TokenSource
}

// NewClient constructs an admin client rooted at /admin.
func NewClient(baseURL string, tokens api.TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/admin",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokens:     tokens,
	}
}

// Do issues one request against the admin API and decodes the envelope's
// data into out. Failures map onto the same taxonomy as the storefront
// client.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &api.TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return api.ErrUnauthorized
	}

	var env struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data,omitempty"`
		Error  string          `json:"error,omitempty"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &api.DomainError{}
		}
		return &api.TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if env.Status == api.StatusError || resp.StatusCode >= 400 {
		return &api.DomainError{Message: env.Error}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &api.TransportError{Err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}
