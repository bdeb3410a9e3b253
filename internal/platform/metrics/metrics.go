package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for outbound traffic.
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec
	FailuresTotal     prometheus.Counter
	UnauthorizedTotal prometheus.Counter
}

// New creates and registers all metrics against the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tienda_requests_total",
			Help: "Total outbound requests, by HTTP method",
		}, []string{"method"}),
		FailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tienda_request_failures_total",
			Help: "Total outbound requests that failed at the transport level",
		}),
		UnauthorizedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tienda_unauthorized_responses_total",
			Help: "Total 401 responses that invalidated the local session",
		}),
	}
}
