// Package app is the composition root. The session store and credential
// jar are process-wide singletons, but they are constructed and injected
// explicitly here so every mutation site stays auditable.
package app

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"tienda/internal/api"
	"tienda/internal/auth"
	"tienda/internal/cart"
	"tienda/internal/catalog"
	"tienda/internal/checkout"
	"tienda/internal/orders"
	"tienda/internal/platform/config"
	"tienda/internal/platform/logger"
	"tienda/internal/platform/metrics"
	"tienda/internal/platform/storage"
	"tienda/internal/profile"
	"tienda/internal/session"
	"tienda/internal/session/cookiejar"
	"tienda/internal/transport"
)

// App wires every service over one shared pipeline client.
type App struct {
	Config   config.Config
	Log      *slog.Logger
	Sessions *session.Store
	Jar      *cookiejar.Jar

	Auth     *auth.Service
	Catalog  *catalog.Service
	Cart     *cart.Service
	Checkout *checkout.Service
	Orders   *orders.Service
	Profile  *profile.Service

	kv storage.KV
}

// New opens durable storage and wires the full client. The broker is
// injected by the caller since federated sign-in is platform-specific.
func New(cfg config.Config, broker auth.CredentialBroker) (*App, error) {
	log := logger.New(cfg.Debug)

	kv, err := storage.OpenSQLite(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("app: open storage: %w", err)
	}

	sessions := session.NewStore(kv)
	jar := cookiejar.New(kv, log)

	httpClient := transport.NewClient(
		transport.Config{ConnectTimeout: cfg.ConnectTimeout, CallTimeout: cfg.CallTimeout},
		jar, sessions,
		transport.Options{
			Metrics: metrics.New(prometheus.DefaultRegisterer),
			Tracer:  otel.Tracer("tienda/transport"),
			Logger:  log,
		},
	)
	client := api.New(cfg.BaseURL, httpClient, log)

	profiles := profile.NewService(client)
	return &App{
		Config:   cfg,
		Log:      log,
		Sessions: sessions,
		Jar:      jar,
		Auth:     auth.NewService(client, sessions, jar, profiles, broker, log),
		Catalog:  catalog.NewService(client),
		Cart:     cart.NewService(client),
		Checkout: checkout.NewService(client),
		Orders:   orders.NewService(client),
		Profile:  profiles,
		kv:       kv,
	}, nil
}

func (a *App) Close() error {
	return a.kv.Close()
}
