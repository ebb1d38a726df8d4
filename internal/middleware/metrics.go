package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the RPC collectors. Register them once per registry.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge

	// ShoppingItems observes the size of generated shopping lists.
	ShoppingItems prometheus.Histogram
	// UnresolvedRefs counts planned recipe references that could not be resolved.
	UnresolvedRefs prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smartchef",
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "smartchef",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "smartchef",
			Name:      "rpc_in_flight",
			Help:      "RPCs currently being handled.",
		}),
		ShoppingItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "smartchef",
			Name:      "shopping_list_items",
			Help:      "Number of entries in generated shopping lists.",
			Buckets:   prometheus.LinearBuckets(0, 10, 8),
		}),
		UnresolvedRefs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smartchef",
			Name:      "shopping_unresolved_refs_total",
			Help:      "Planned recipe references skipped during aggregation.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.inFlight, m.ShoppingItems, m.UnresolvedRefs)
	return m
}

// Interceptor records request counts, latency and in-flight calls.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			m.inFlight.Inc()
			start := time.Now()

			resp, err := next(ctx, req)

			m.inFlight.Dec()
			m.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.requests.WithLabelValues(procedure, code).Inc()
			return resp, err
		}
	}
}
