package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Response is a wire-level HTTP reply. Status is surfaced untransformed
// so callers can inspect it, 401 in particular.
type Response struct {
	Status int
	Body   []byte
}

// Transport issues HTTP calls against the service. Implementations must
// report non-2xx statuses through Response, not as errors; an error
// means the call itself failed (connection refused, timeout).
type Transport interface {
	Post(ctx context.Context, path string, body any, headers map[string]string) (*Response, error)
	Put(ctx context.Context, path string, body any, headers map[string]string) (*Response, error)
	Get(ctx context.Context, path string, headers map[string]string) (*Response, error)
}

// HTTPTransport is the net/http backed Transport.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPTransport creates a transport for the service at baseURL.
func NewHTTPTransport(baseURL string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (t *HTTPTransport) Post(ctx context.Context, path string, body any, headers map[string]string) (*Response, error) {
	return t.send(ctx, http.MethodPost, path, body, headers)
}

func (t *HTTPTransport) Put(ctx context.Context, path string, body any, headers map[string]string) (*Response, error) {
	return t.send(ctx, http.MethodPut, path, body, headers)
}

func (t *HTTPTransport) Get(ctx context.Context, path string, headers map[string]string) (*Response, error) {
	return t.send(ctx, http.MethodGet, path, nil, headers)
}

func (t *HTTPTransport) send(ctx context.Context, method, path string, body any, headers map[string]string) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{Status: resp.StatusCode, Body: data}, nil
}
