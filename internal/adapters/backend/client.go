package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Doer issues one request against the backend API.
// Both *Client and *TimedClient satisfy this interface.
type Doer interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

type tokenKey struct{}

// WithToken returns a context carrying the bearer token for backend calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the bearer token set by WithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client talks JSON to the gym backend API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Compile-time check that *Client satisfies Doer.
var _ Doer = (*Client)(nil)

// NewClient builds a Client for the given base URL.
// PRE: baseURL is a valid absolute URL
// POST: Returns a Client with the given request timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Do issues a request and decodes the response into out (when non-nil).
// The backend wraps some payloads in a {"data": ...} envelope; Do unwraps
// it when present. Non-2xx responses come back as *ValidationError or
// *APIError, transport failures as *NetworkError.
// PRE: method is a valid HTTP method, path starts with '/'
// POST: out is populated on success, a tagged error is returned otherwise
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, payload)
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	return decodeBody(payload, out)
}

// decodeBody unwraps the {"data": ...} envelope when present and decodes
// the payload into out.
func decodeBody(payload []byte, out any) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			return json.Unmarshal(envelope.Data, out)
		}
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError maps a non-2xx body onto the tagged error types.
func decodeError(status int, payload []byte) error {
	var body struct {
		Errors  map[string]string `json:"errors"`
		Message string            `json:"message"`
		Err     string            `json:"err"`
		Error   string            `json:"error"`
	}
	_ = json.Unmarshal(payload, &body)

	if len(body.Errors) > 0 {
		return &ValidationError{Status: status, Fields: body.Errors}
	}
	message := body.Message
	if message == "" {
		message = body.Err
	}
	if message == "" {
		message = body.Error
	}
	return &APIError{Status: status, Message: message}
}
