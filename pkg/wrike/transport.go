package wrike

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Transport issues authenticated requests against the API root and returns
// decoded response envelopes. HTTPTransport is the production
// implementation; pkg/wrike/mock provides a scripted one for tests.
type Transport interface {
	// Get fetches path (relative to the API root) with optional query
	// parameters.
	Get(ctx context.Context, path string, params map[string]string) (*Response, error)

	// Post submits body as JSON to path.
	Post(ctx context.Context, path string, body any) (*Response, error)
}

// Response is the API's response envelope. List endpoints return
// {"kind": "...", "data": [...]}; Raw keeps the undecoded body for callers
// that need fields outside the envelope.
type Response struct {
	Kind string          `json:"kind"`
	Data []Record        `json:"data"`
	Raw  json.RawMessage `json:"-"`
}

// HTTPTransport implements Transport over HTTPS. It performs no retries:
// every failure is returned to the caller as a *TransportError.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
	logger  hclog.Logger
}

var _ Transport = (*HTTPTransport)(nil)

// TransportOption customizes an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithLogger sets the logger used for per-request debug output.
func WithLogger(logger hclog.Logger) TransportOption {
	return func(t *HTTPTransport) {
		t.logger = logger
	}
}

// WithHTTPClient replaces the client built by Config.NewHTTPClient. The
// replacement is responsible for authentication.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		t.client = client
	}
}

// NewHTTPTransport creates a transport from cfg. Zero-valued fields in cfg
// are filled with defaults before validation.
func NewHTTPTransport(cfg *Config, opts ...TransportOption) (*HTTPTransport, error) {
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wrike client config: %w", err)
	}

	t := &HTTPTransport{
		baseURL: cfg.normalizedBaseURL(),
		client:  cfg.NewHTTPClient(),
		logger:  hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.Named("wrike-transport")

	return t, nil
}

// Get implements Transport.
func (t *HTTPTransport) Get(ctx context.Context, path string, params map[string]string) (*Response, error) {
	return t.doRequest(ctx, http.MethodGet, path, params, nil)
}

// Post implements Transport.
func (t *HTTPTransport) Post(ctx context.Context, path string, body any) (*Response, error) {
	return t.doRequest(ctx, http.MethodPost, path, nil, body)
}

// buildURL constructs a URL with query parameters
func (t *HTTPTransport) buildURL(path string, params map[string]string) (*url.URL, error) {
	u, err := url.Parse(t.baseURL + strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, err
	}

	if len(params) > 0 {
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	return u, nil
}

// doRequest executes a single HTTP request and decodes the envelope.
func (t *HTTPTransport) doRequest(ctx context.Context, method, path string, params map[string]string, body any) (*Response, error) {
	fail := func(status int, respBody string, err error) error {
		return &TransportError{
			Method:     method,
			Path:       path,
			StatusCode: status,
			Body:       respBody,
			Err:        err,
		}
	}

	u, err := t.buildURL(path, params)
	if err != nil {
		return nil, fail(0, "", fmt.Errorf("invalid request path: %w", err))
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fail(0, "", fmt.Errorf("failed to marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fail(0, "", fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	t.logger.Debug("sending request",
		"request_id", requestID,
		"method", method,
		"url", unescapedURL(u),
	)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fail(0, "", fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(resp.StatusCode, "", fmt.Errorf("failed to read response: %w", err))
	}

	t.logger.Debug("received response",
		"request_id", requestID,
		"status", resp.StatusCode,
		"bytes", len(respBody),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fail(resp.StatusCode, string(respBody), nil)
	}

	result := &Response{Raw: respBody}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return nil, fail(resp.StatusCode, "", fmt.Errorf("failed to decode response: %w", err))
	}

	return result, nil
}

// unescapedURL renders u for logs with query escaping undone, so filter
// parameters read the way they were built.
func unescapedURL(u *url.URL) string {
	s := u.String()
	if unescaped, err := url.QueryUnescape(s); err == nil {
		return unescaped
	}
	return s
}
