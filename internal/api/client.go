// Package api is the REST client core. Every remote-backed operation issues
// its calls through here and gets back a result envelope; nothing above this
// layer ever catches a raw transport error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"tienda/pkg/result"
)

// Display messages for the generic failure classes. Operations with
// endpoint-specific texts pass them via WithStatusMessages.
const (
	MsgConnectivity = "No se pudo conectar con el servidor. Verifica tu conexión a internet."
	MsgEmptyBody    = "No se recibieron datos del servidor."
	MsgGeneric      = result.FallbackMessage
)

// Empty is the payload for operations whose success carries no body.
type Empty struct{}

// StatusError is the cause attached to failures from non-2xx responses.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// Client issues JSON calls against the storefront backend through the shared
// pipeline client.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

type callConfig struct {
	headers        map[string]string
	statusMessages map[int]string
}

// CallOption tweaks a single call.
type CallOption func(*callConfig)

// WithHeader adds a request header.
func WithHeader(key, value string) CallOption {
	return func(c *callConfig) {
		if c.headers == nil {
			c.headers = make(map[string]string)
		}
		c.headers[key] = value
	}
}

// WithStatusMessages installs per-status fallback texts used when a non-2xx
// response carries no message of its own.
func WithStatusMessages(m map[int]string) CallOption {
	return func(c *callConfig) { c.statusMessages = m }
}

// Call issues exactly one request and maps the response into the envelope:
// transport failures become a connectivity failure, non-2xx becomes a
// failure with a body- or status-derived message, and a 2xx with a missing
// body becomes a "no data" failure so success always carries a payload.
func Call[T any](ctx context.Context, c *Client, method, path string, body any, opts ...CallOption) result.Result[T] {
	raw, fail := c.exchange(ctx, method, path, body, false, opts)
	if fail != nil {
		return result.Forward[Empty, T](*fail)
	}

	var dto T
	if err := json.Unmarshal(raw, &dto); err != nil {
		c.log.Debug("response decode failed", "path", path, "error", err)
		return result.Fail[T](err, MsgConnectivity)
	}
	return result.Ok(dto)
}

// CallEmpty is Call for endpoints whose success has no body (deletes,
// clears). A 2xx with an empty body is a success here.
func CallEmpty(ctx context.Context, c *Client, method, path string, body any, opts ...CallOption) result.Result[Empty] {
	if _, fail := c.exchange(ctx, method, path, body, true, opts); fail != nil {
		return *fail
	}
	return result.Ok(Empty{})
}

// exchange runs the shared request/response handling. It returns the raw
// body on success, or the failure to propagate.
func (c *Client) exchange(ctx context.Context, method, path string, body any, allowEmpty bool, opts []CallOption) ([]byte, *result.Result[Empty]) {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, failp(err, MsgConnectivity)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, failp(err, MsgConnectivity)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range cfg.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", path, "error", err)
		return nil, failp(err, MsgConnectivity)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failp(err, MsgConnectivity)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		cause := &StatusError{Status: resp.StatusCode, Body: string(raw)}
		return nil, failp(cause, errorMessage(raw, resp.StatusCode, cfg.statusMessages))
	}

	if !allowEmpty && emptyBody(raw) {
		return nil, failp(&StatusError{Status: resp.StatusCode}, MsgEmptyBody)
	}
	return raw, nil
}

func failp(cause error, msg string) *result.Result[Empty] {
	r := result.Fail[Empty](cause, msg)
	return &r
}

func emptyBody(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// errorMessage prefers the backend's own message, then the operation's
// per-status text, then the generic fallback.
func errorMessage(raw []byte, status int, perStatus map[int]string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	if msg, ok := perStatus[status]; ok {
		return msg
	}
	return MsgGeneric
}
