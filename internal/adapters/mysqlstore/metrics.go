package mysqlstore

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type storeMetrics struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// newStoreMetrics builds the store collectors and registers them on reg.
// A nil reg leaves them unregistered. Collectors already registered by an
// earlier store are reused.
func newStoreMetrics(reg prometheus.Registerer) *storeMetrics {
	m := &storeMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quotes",
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Duration of quote store queries.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"op"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotes",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Quote store queries that returned an error.",
		}, []string{"op"}),
	}

	if reg == nil {
		return m
	}

	m.duration = register(reg, m.duration)
	m.errors = register(reg, m.errors)

	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}

	return c
}
