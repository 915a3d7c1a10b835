// Package metrics provides Prometheus metrics for taskdeck.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestDuration tracks HTTP request duration in seconds.
var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "taskdeck",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request duration in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})

// TasksCreated tracks created tasks.
var TasksCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "taskdeck",
	Name:      "tasks_created_total",
	Help:      "Total tasks created.",
})

// TasksUpdated tracks updated tasks.
var TasksUpdated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "taskdeck",
	Name:      "tasks_updated_total",
	Help:      "Total tasks updated.",
})

// TasksDeleted tracks deleted tasks.
var TasksDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "taskdeck",
	Name:      "tasks_deleted_total",
	Help:      "Total tasks deleted.",
})

// StoreErrors tracks store operation failures by operation.
var StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "taskdeck",
	Name:      "store_errors_total",
	Help:      "Total store operation failures.",
}, []string{"op"})
