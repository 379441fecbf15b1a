package metrics

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

// Business metric names
const (
	MetricNameRegistrations  = "users_registered_total"
	MetricNamePurchases      = "items_purchased_total"
	MetricNameUpgrades       = "rank_upgrades_total"
	MetricNameEmbersSpent    = "embers_spent_total"
	MetricNameEmbersMinted   = "embers_minted_total"
	MetricNameGasDistributed = "gas_distributed_total"
	MetricNameGasDeposited   = "gas_deposited_total"
)

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

// Business metric help text
const (
	HelpTextRegistrations  = "Total number of users registered"
	HelpTextPurchases      = "Total number of equipment purchases"
	HelpTextUpgrades       = "Total number of rank upgrades"
	HelpTextEmbersSpent    = "Total scaled embers spent on purchases"
	HelpTextEmbersMinted   = "Total scaled embers minted as rewards"
	HelpTextGasDistributed = "Total native gas paid out of the engine reserve"
	HelpTextGasDeposited   = "Total native gas deposited into the engine reserve"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelTier   = "tier"
	LabelRank   = "rank"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
