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

// Business Metrics
var (
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRegistrations,
			Help: HelpTextRegistrations,
		},
	)

	ItemsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelItem, LabelTier},
	)

	RankUpgrades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgrades,
			Help: HelpTextUpgrades,
		},
		[]string{LabelRank},
	)

	EmbersSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEmbersSpent,
			Help: HelpTextEmbersSpent,
		},
	)

	EmbersMinted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEmbersMinted,
			Help: HelpTextEmbersMinted,
		},
	)

	GasDistributed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGasDistributed,
			Help: HelpTextGasDistributed,
		},
	)

	GasDeposited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGasDeposited,
			Help: HelpTextGasDeposited,
		},
	)
)
