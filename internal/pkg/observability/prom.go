package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "mergington"
)

const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeFailed   = "failed"
)

var (
	RosterMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "roster", "mutations_total"),
		Help: "Roster mutations by operation and outcome",
	}, []string{"operation", "outcome"})
	StoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "store", "operation_duration_seconds"),
		Help:    "Duration of activity store operations in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"driver", "operation"})
	RosterEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "roster", "events_published_total"),
		Help: "Roster change events handed to JetStream by result",
	}, []string{"subject", "result"})
	SeededActivities = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "seed", "inserted_activities"),
		Help: "Number of activities inserted by the last seed run",
	})
)
