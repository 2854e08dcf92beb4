// Package observability exposes the application's Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptvault_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// StoreOperations counts store mutations by operation and outcome.
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptvault_store_operations_total",
		Help: "Total number of store operations by operation and outcome",
	}, []string{"operation", "outcome"})

	// CacheHits counts cache-aside lookups by key family and result.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptvault_cache_lookups_total",
		Help: "Total number of cache lookups by key family and result",
	}, []string{"family", "result"})
)

// RecordStoreOp records one store operation outcome. err may be nil.
func RecordStoreOp(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	StoreOperations.WithLabelValues(operation, outcome).Inc()
}
