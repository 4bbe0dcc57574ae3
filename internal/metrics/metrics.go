package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	storeReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfarer",
			Name:      "store_reads_total",
			Help:      "Collection reads by storage key.",
		},
		[]string{"key"},
	)

	storeWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfarer",
			Name:      "store_writes_total",
			Help:      "Collection writes by storage key.",
		},
		[]string{"key"},
	)

	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wayfarer",
			Name:      "store_errors_total",
			Help:      "Storage failures by storage key.",
		},
		[]string{"key"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(storeReads, storeWrites, storeErrors)
	})
}

// IncRead increments the read counter for a storage key.
func IncRead(key string) {
	storeReads.WithLabelValues(key).Inc()
}

// IncWrite increments the write counter for a storage key.
func IncWrite(key string) {
	storeWrites.WithLabelValues(key).Inc()
}

// IncError increments the failure counter for a storage key.
func IncError(key string) {
	storeErrors.WithLabelValues(key).Inc()
}
