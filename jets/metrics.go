// SPDX-License-Identifier: MIT

package jets

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of an Engine.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	groups     prometheus.Counter
}

// NewMetrics creates the lvjet collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice with the same
// registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvjet",
			Name:      "operations_total",
			Help:      "Engine operations by name and outcome",
		}, []string{"operation", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvjet",
			Name:      "operation_duration_seconds",
			Help:      "Engine operation latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"operation"}),
		groups: f.NewCounter(prometheus.CounterOpts{
			Namespace: "lvjet",
			Name:      "groups_clustered_total",
			Help:      "Groups handed to the clustering service",
		}),
	}
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.operations.WithLabelValues(op, status).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) clustered(groups int) {
	if m == nil {
		return
	}
	m.groups.Add(float64(groups))
}
