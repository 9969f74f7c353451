package docanalysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"docanalysis/sdk/go/types"
)

// Client is a JSON client for the document analysis API. Every operation is
// a POST of its input to {BaseURL}/{Operation}. A Client is safe for
// concurrent use once configured.
type Client struct {
	BaseURL     string
	APIKey      string
	BearerToken string
	HTTPClient  *http.Client
	Timeout     time.Duration
	UserAgent   string
}

// Option configures a Client built by New.
type Option func(*Client)

// WithAPIKey authenticates requests with the X-Api-Key header.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.APIKey = key }
}

// WithBearerToken authenticates requests with an Authorization bearer token.
// It takes precedence over an API key.
func WithBearerToken(token string) Option {
	return func(c *Client) { c.BearerToken = token }
}

// WithHTTPClient replaces the HTTP client. Its own timeout applies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.Timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

// New creates a client for baseURL with a 30 second timeout.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:   baseURL,
		Timeout:   30 * time.Second,
		UserAgent: "docanalysis-sdk-go",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return c
}

// OperationError wraps a failure with the operation that produced it. The
// underlying error is a types.APIError for service and validation failures.
type OperationError struct {
	Operation string
	Err       error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation %s: %v", e.Operation, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// errorEnvelope is the body of a non-2xx response.
type errorEnvelope struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
	Upper   string `json:"Message"`
}

func (c *Client) invoke(ctx context.Context, operation string, params validator, out any) error {
	if err := params.Validate(); err != nil {
		return &OperationError{Operation: operation, Err: err}
	}
	if err := c.do(ctx, operation, params, out); err != nil {
		return &OperationError{Operation: operation, Err: err}
	}
	return nil
}

func (c *Client) do(ctx context.Context, operation string, body any, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return err
	}
	endpoint := c.base() + "/" + operation
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	switch {
	case c.BearerToken != "":
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	case c.APIKey != "":
		req.Header.Set("X-Api-Key", c.APIKey)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return decodeError(resp.StatusCode, b)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

// decodeError maps an error response to its typed error. Codes may carry a
// namespace prefix such as "docanalysis#ThrottlingException".
func decodeError(status int, body []byte) error {
	var env errorEnvelope
	_ = json.Unmarshal(body, &env)
	msg := env.Message
	if msg == "" {
		msg = env.Upper
	}
	code := env.Type
	if i := strings.LastIndexByte(code, '#'); i >= 0 {
		code = code[i+1:]
	}
	if code == "" {
		fault := types.FaultClient
		if status >= 500 {
			fault = types.FaultServer
		}
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return &types.GenericAPIError{Code: http.StatusText(status), Message: msg, Fault: fault}
	}
	return types.NewAPIError(code, msg)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: c.Timeout}
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}
