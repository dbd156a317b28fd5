package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for a processing run.
type Metrics struct {
	RecordsProcessed  prometheus.Counter
	RecordsRejected   *prometheus.CounterVec
	OperationsApplied *prometheus.CounterVec
	AccountsCreated   prometheus.Counter
	AccountsLocked    prometheus.Counter
	RunDuration       prometheus.Histogram
}

// New creates and registers all Prometheus metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_records_processed_total",
			Help: "Total number of input records processed",
		}),
		RecordsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payengine_records_rejected_total",
				Help: "Total number of rejected records by reason",
			},
			[]string{"reason"},
		),
		OperationsApplied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payengine_operations_applied_total",
				Help: "Total number of applied account operations by type",
			},
			[]string{"operation"},
		),
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_accounts_created_total",
			Help: "Total number of accounts created",
		}),
		AccountsLocked: factory.NewCounter(prometheus.CounterOpts{
			Name: "payengine_accounts_locked_total",
			Help: "Total number of accounts locked by chargebacks",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "payengine_run_duration_seconds",
			Help:    "Duration of full processing runs",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
