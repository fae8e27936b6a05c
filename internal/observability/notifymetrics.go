package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NotifierMetrics counts downstream webhook delivery attempts by outcome.
type NotifierMetrics struct {
	deliveriesTotal *prometheus.CounterVec
}

func NewNotifierMetrics() *NotifierMetrics {
	return &NotifierMetrics{
		deliveriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ozonrelay",
			Subsystem: "notifier",
			Name:      "deliveries_total",
			Help:      "Total number of downstream notification attempts.",
		}, []string{"outcome"}),
	}
}

// Observe records one delivery attempt. Safe to call on a nil receiver so
// the notifier can run without metrics in tests.
func (m *NotifierMetrics) Observe(outcome string) {
	if m == nil {
		return
	}
	m.deliveriesTotal.WithLabelValues(outcome).Inc()
}
