package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Wheel metric names
const (
	MetricNameWheelSpins          = "wheel_spins_total"
	MetricNameWheelSpinRejections = "wheel_spin_rejections_total"
	MetricNameWheelPointsAwarded  = "wheel_points_awarded_total"
	MetricNameWheelConfigUpdates  = "wheel_config_updates_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Wheel metric help text
const (
	HelpTextWheelSpins          = "Total number of completed wheel spins by reward type"
	HelpTextWheelSpinRejections = "Total number of rejected wheel spins by reason"
	HelpTextWheelPointsAwarded  = "Total bonus points credited by wheel spins"
	HelpTextWheelConfigUpdates  = "Total number of wheel configuration changes by kind"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelRewardType = "reward_type"
	LabelReason     = "reason"
	LabelChange     = "change"
)

// UnmatchedRoute labels requests that no route matched, keeping path cardinality bounded
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
