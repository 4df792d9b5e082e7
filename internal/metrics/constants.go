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

// Inventory metric names
const (
	MetricNameItemMoves          = "inventory_item_moves_total"
	MetricNameTUSpent            = "inventory_tu_spent_total"
	MetricNameLoadoutsGenerated  = "loadouts_generated_total"
	MetricNameLoadoutItemsPacked = "loadout_items_packed"
	MetricNameNodesReleased      = "inventory_nodes_released_total"
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

// Inventory metric help text
const (
	HelpTextItemMoves          = "Total number of item move attempts by outcome"
	HelpTextTUSpent            = "Total time units charged for inventory actions"
	HelpTextLoadoutsGenerated  = "Total number of generated loadouts"
	HelpTextLoadoutItemsPacked = "Number of items packed per generated loadout"
	HelpTextNodesReleased      = "Total number of item nodes released by destroyed inventories"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelTeam    = "team"
	LabelArmed   = "armed"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LoadoutSizeBuckets covers an empty actor up to a full backpack.
var LoadoutSizeBuckets = []float64{0, 1, 2, 4, 6, 8, 12, 16, 24}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
