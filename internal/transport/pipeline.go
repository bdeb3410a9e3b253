// Package transport assembles the outbound request pipeline: every call
// carries stored credentials, runs under fixed timeouts, and is watched for
// session rejection. The pipeline never retries; one call, one attempt.
package transport

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"tienda/internal/platform/metrics"
)

// SessionInvalidator is the one session mutation the pipeline performs: a
// 401 response authoritatively means the stored session is no longer valid.
type SessionInvalidator interface {
	Clear() error
}

// Config carries the pipeline's transport-level settings.
type Config struct {
	// ConnectTimeout bounds dialing and TLS handshake.
	ConnectTimeout time.Duration

	// CallTimeout bounds the whole exchange; a timeout surfaces to the
	// caller as an ordinary transport failure.
	CallTimeout time.Duration
}

// Options are the pipeline's optional collaborators. Any nil field is
// replaced with a no-op so wiring stays explicit without boilerplate.
type Options struct {
	Metrics *metrics.Metrics
	Tracer  trace.Tracer
	Logger  *slog.Logger
}

// NewClient builds the shared HTTP client: credential jar, request-id +
// tracing + watchdog round-tripper chain, and uniform timeouts. Every
// remote-backed operation goes through the client returned here.
func NewClient(cfg Config, jar http.CookieJar, sessions SessionInvalidator, opts Options) *http.Client {
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("tienda/transport")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	base := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
	}

	var rt http.RoundTripper = base
	rt = &watchdog{next: rt, sessions: sessions, metrics: opts.Metrics, log: opts.Logger}
	rt = &tracing{next: rt, tracer: opts.Tracer}
	rt = &requestID{next: rt}

	return &http.Client{
		Jar:       jar,
		Transport: rt,
		Timeout:   cfg.CallTimeout,
	}
}

// requestID tags each outbound request so backend logs can be correlated
// with client-side failures.
type requestID struct {
	next http.RoundTripper
}

func (t *requestID) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-ID", uuid.NewString())
	return t.next.RoundTrip(req)
}

// tracing opens one span per request and records the HTTP status on it.
type tracing struct {
	next   http.RoundTripper
	tracer trace.Tracer
}

func (t *tracing) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := t.tracer.Start(req.Context(), "http."+req.Method, trace.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("url.path", req.URL.Path),
	))
	defer span.End()

	resp, err := t.next.RoundTrip(req.WithContext(ctx))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, resp.Status)
	}
	return resp, nil
}

// watchdog inspects every response for session rejection. On a 401 it clears
// the session store and nothing else: it does not throw or redirect, the
// caller observes the cleared state and routes to re-authentication on its
// own schedule. The response is returned unchanged either way.
type watchdog struct {
	next     http.RoundTripper
	sessions SessionInvalidator
	metrics  *metrics.Metrics
	log      *slog.Logger
}

func (t *watchdog) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.metrics != nil {
		t.metrics.RequestsTotal.WithLabelValues(req.Method).Inc()
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		if t.metrics != nil {
			t.metrics.FailuresTotal.Inc()
		}
		return nil, err
	}

	t.log.Debug("request completed", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		if t.metrics != nil {
			t.metrics.UnauthorizedTotal.Inc()
		}
		if err := t.sessions.Clear(); err != nil {
			t.log.Warn("session invalidation failed", "error", err)
		} else {
			t.log.Warn("session rejected by server, local state cleared", "path", req.URL.Path)
		}
	}
	return resp, nil
}
