// Package metrics holds the prometheus collectors of the webhook bridge.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Count of HTTP requests."},
		[]string{"route", "method", "code"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms..~10s
		},
		[]string{"route", "method"},
	)

	// Webhook
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "webhook_events_total", Help: "Inbound webhook outcomes."},
		[]string{"outcome"}, // message | status | invalid_event | unauthorized | bad_json | structure_error | dispatch_failed
	)
	Verifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "webhook_verifications_total", Help: "Webhook handshake outcomes."},
		[]string{"result"}, // verified | forbidden | missing_params
	)

	// Outbound
	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "whatsapp_send_total", Help: "Outbound send outcomes."},
		[]string{"outcome"}, // sent | timeout | connection_failed | remote_error | transport_failure
	)
	DispatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "whatsapp_send_duration_seconds",
			Help:    "Outbound send latency.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms..~40s
		},
	)
)

var registerOnce sync.Once

// MustRegister registers our collectors with the default registry. Safe to
// call more than once.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequests, HTTPDuration,
			WebhookEvents, Verifications,
			DispatchTotal, DispatchDuration,
		)
	})
}
