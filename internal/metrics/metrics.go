package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter
	AdminAlerts         prometheus.Counter
	SendLatency         prometheus.Histogram
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NotificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "registrations_forwarded_total",
			Help: "Total number of registration requests forwarded to the group chat.",
		}),
		NotificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "registrations_failed_total",
			Help: "Total number of registration requests that failed to reach Telegram.",
		}),
		AdminAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "admin_alerts_total",
			Help: "Total number of error alerts delivered to the admin chat.",
		}),
		SendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "telegram_send_seconds",
			Help:    "End-to-end latency of the outbound Telegram sequence per request.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.NotificationsSent,
		m.NotificationsFailed,
		m.AdminAlerts,
		m.SendLatency,
	)

	return m
}

// NotifierHooks returns the metric callbacks expected by notifier.MetricHooks.
// Centralises the prometheus observation calls so the notifier stays import-free.
func (m *Metrics) NotifierHooks() (
	onSent func(time.Duration),
	onFailed func(),
	onAdminAlert func(),
) {
	onSent = func(latency time.Duration) {
		m.NotificationsSent.Inc()
		m.SendLatency.Observe(latency.Seconds())
	}
	onFailed = func() {
		m.NotificationsFailed.Inc()
	}
	onAdminAlert = func() {
		m.AdminAlerts.Inc()
	}
	return
}
