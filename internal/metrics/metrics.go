package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Wheel Metrics
var (
	WheelSpins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWheelSpins,
			Help: HelpTextWheelSpins,
		},
		[]string{LabelRewardType},
	)

	WheelSpinRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWheelSpinRejections,
			Help: HelpTextWheelSpinRejections,
		},
		[]string{LabelReason},
	)

	WheelPointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWheelPointsAwarded,
			Help: HelpTextWheelPointsAwarded,
		},
	)

	WheelConfigUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWheelConfigUpdates,
			Help: HelpTextWheelConfigUpdates,
		},
		[]string{LabelChange},
	)
)
