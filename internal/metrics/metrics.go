package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barberhub_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "barberhub_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	storeMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barberhub_store_mutations_total",
		Help: "Count of entity store mutations by entity and operation",
	}, []string{"entity", "op"})

	storeRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "barberhub_store_records",
		Help: "Number of records currently held per entity",
	}, []string{"entity"})

	auditDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barberhub_audit_dropped_total",
		Help: "Audit events discarded because the queue was full or closed",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordStoreMutation matches store.MutationHook.
func RecordStoreMutation(entity, op string, records int) {
	storeMutations.WithLabelValues(entity, op).Inc()
	SetStoreRecords(entity, records)
}

func SetStoreRecords(entity string, records int) {
	if records < 0 {
		records = 0
	}
	storeRecords.WithLabelValues(entity).Set(float64(records))
}

func IncAuditDropped() {
	auditDropped.Inc()
}
