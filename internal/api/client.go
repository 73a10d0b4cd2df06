// Package api is the storefront's binding to the backend REST API. One
// configured client serves every view module; the bearer credential is read
// from persistent storage at send time, so a login or logout in one module
// is visible to every request that follows.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bookstorefront/internal/storage"
	"bookstorefront/internal/util"
)

// Envelope status values used by the backend.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// TokenSource supplies the bearer credential for outbound requests. An empty
// string means no credential is attached.
type TokenSource interface {
	Token() string
}

// StorageTokenSource reads the credential from the key/value store on every
// request, mirroring how the session layer writes it.
type StorageTokenSource struct {
	kv storage.KV
}

func NewStorageTokenSource(kv storage.KV) *StorageTokenSource {
	return &StorageTokenSource{kv: kv}
}

func (s *StorageTokenSource) Token() string {
	v, ok, err := s.kv.Get(storage.KeyToken)
	if err != nil || !ok {
		return ""
	}
	return v
}

// Client calls the storefront backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient constructs a backend client. The API lives under /api on the
// configured base URL.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokens:     tokens,
	}
}

// envelope is the uniform response wrapper. Auth endpoints additionally
// carry the credential at the top level.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
}

// do issues one request and maps the outcome onto the error taxonomy:
// network/decoding failures become *TransportError, 401/403 becomes
// ErrUnauthorized, and an "error" envelope (or any other non-2xx) becomes
// *DomainError.
func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", util.NewRequestID())
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			// Non-2xx without a readable envelope: an error with no message.
			return nil, &DomainError{}
		}
		return nil, &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if env.Status == StatusError || resp.StatusCode >= 400 {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return nil, &DomainError{Message: msg}
	}
	return &env, nil
}

// doJSON issues a request and unmarshals the envelope's data into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	env, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &TransportError{Err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}
