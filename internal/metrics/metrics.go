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

// Inventory Metrics
var (
	ItemMoves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemMoves,
			Help: HelpTextItemMoves,
		},
		[]string{LabelOutcome},
	)

	TUSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTUSpent,
			Help: HelpTextTUSpent,
		},
	)

	LoadoutsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoadoutsGenerated,
			Help: HelpTextLoadoutsGenerated,
		},
		[]string{LabelTeam, LabelArmed},
	)

	LoadoutItemsPacked = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameLoadoutItemsPacked,
			Help:    HelpTextLoadoutItemsPacked,
			Buckets: LoadoutSizeBuckets,
		},
	)

	NodesReleased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNodesReleased,
			Help: HelpTextNodesReleased,
		},
	)
)
