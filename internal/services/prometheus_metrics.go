package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	recurringDetections  *prometheus.CounterVec
	expenseWrites        *prometheus.CounterVec
	analyticsRequests    *prometheus.CounterVec
	analyticsDuration    prometheus.Histogram
	budgetAlertsComputed *prometheus.CounterVec
	activeUsersTotal     prometheus.Gauge
	authEventsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		recurringDetections: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recurring_detections_total",
				Help: "Total number of positive recurring-pattern detections",
			},
			[]string{"frequency", "keyword_match"},
		),
		expenseWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_writes_total",
				Help: "Total number of expense create/update/delete operations",
			},
			[]string{"operation"},
		),
		analyticsRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of analytics view requests",
			},
			[]string{"view", "status"},
		),
		analyticsDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_request_duration_milliseconds",
				Help:    "Analytics aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		budgetAlertsComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_alerts_computed_total",
				Help: "Total number of budget alert computations by worst status",
			},
			[]string{"status"},
		),
		activeUsersTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_users_total",
				Help: "Current number of registered users",
			},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "recurring_detections":
		m.recurringDetections.WithLabelValues(tags["frequency"], tags["keyword_match"]).Inc()
	case "expense_write":
		if op := tags["operation"]; op != "" {
			m.expenseWrites.WithLabelValues(op).Inc()
		}
	case "analytics_request":
		m.analyticsRequests.WithLabelValues(tags["view"], tags["status"]).Inc()
	case "budget_alerts_computed":
		if status := tags["status"]; status != "" {
			m.budgetAlertsComputed.WithLabelValues(status).Inc()
		}
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "analytics_request":
		m.analyticsDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "active_users":
		m.activeUsersTotal.Set(value)
	}
}
