package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScheduleBuilds counts builder runs by result: ok or invalid.
	ScheduleBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_builds_total",
			Help: "Total number of schedule builds",
		},
		[]string{"result"},
	)

	ScheduleValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_validation_errors_total",
			Help: "Total number of schedule validation errors by field",
		},
		[]string{"field"},
	)

	// ScheduleEditFallbacks counts stored fields that were defaulted on load.
	ScheduleEditFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_edit_fallbacks_total",
			Help: "Total number of stored schedule fields replaced by defaults",
		},
		[]string{"field"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route", "status"},
	)
)

const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
)
