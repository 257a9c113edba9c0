package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	activityMutationsTotal *prometheus.CounterVec
	auditEntriesTotal      prometheus.Counter
	authAttemptsTotal      *prometheus.CounterVec
	listingLatencySeconds  prometheus.Histogram
)

// RegisterMetrics initialises the Prometheus collectors for the activity core.
func RegisterMetrics() {
	registerOnce.Do(func() {
		activityMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activity_mutations_total",
			Help: "Total number of activity create/update/delete operations.",
		}, []string{"action", "status"})

		auditEntriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "audit_entries_total",
			Help: "Total number of audit trail entries written.",
		})

		authAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of login attempts by outcome.",
		}, []string{"status"})

		listingLatencySeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "activity_listing_latency_seconds",
			Help:    "Latency distribution for activity listing reads.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		})

		prometheus.MustRegister(activityMutationsTotal, auditEntriesTotal, authAttemptsTotal, listingLatencySeconds)
	})
}

// ActivityMutations exposes the counter for activity mutations.
func ActivityMutations() *prometheus.CounterVec {
	RegisterMetrics()
	return activityMutationsTotal
}

// AuditEntries exposes the counter for written audit entries.
func AuditEntries() prometheus.Counter {
	RegisterMetrics()
	return auditEntriesTotal
}

// AuthAttempts exposes the counter for login attempts.
func AuthAttempts() *prometheus.CounterVec {
	RegisterMetrics()
	return authAttemptsTotal
}

// ListingLatency exposes the latency histogram for listing reads.
func ListingLatency() prometheus.Histogram {
	RegisterMetrics()
	return listingLatencySeconds
}
