package testutil

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"tienda/internal/api"
	"tienda/internal/platform/metrics"
	"tienda/internal/platform/storage"
	"tienda/internal/session"
	"tienda/internal/session/cookiejar"
	"tienda/internal/transport"
)

// ClientStack is a fully wired client: in-memory storage, real session
// store and jar, the real pipeline, and an API client pointed at a base URL
// (usually a Backend).
type ClientStack struct {
	KV       *storage.Memory
	Sessions *session.Store
	Jar      *cookiejar.Jar
	API      *api.Client
}

// NewClientStack wires the full client against baseURL.
func NewClientStack(t *testing.T, baseURL string) *ClientStack {
	t.Helper()

	kv := storage.NewMemory()
	sessions := session.NewStore(kv)
	jar := cookiejar.New(kv, nil)
	httpClient := transport.NewClient(
		transport.Config{ConnectTimeout: 5 * time.Second, CallTimeout: 5 * time.Second},
		jar, sessions,
		transport.Options{Metrics: metrics.New(prometheus.NewRegistry())},
	)
	return &ClientStack{
		KV:       kv,
		Sessions: sessions,
		Jar:      jar,
		API:      api.New(baseURL, httpClient, nil),
	}
}
