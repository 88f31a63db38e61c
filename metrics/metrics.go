// Package metrics exposes prometheus counters for the synchronization
// protocol: how often each access mode is invoked, how often Sync runs,
// and which error kinds callers hit. Grounded on aistore's use of
// github.com/prometheus/client_golang for target-side stats; the core
// itself never reads these, so recording can never change behavior.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	accessTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tensor",
		Name:      "access_total",
		Help:      "Number of SharedTensor accesses by mode and device.",
	}, []string{"mode", "device"})

	syncAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tensor",
		Name:      "sync_attempts_total",
		Help:      "Number of cross-device synchronizations attempted.",
	}, []string{"from", "to"})

	errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tensor",
		Name:      "errors_total",
		Help:      "Number of errors returned by core operations, by op and kind.",
	}, []string{"op", "kind"})
)

func init() {
	prometheus.MustRegister(accessTotal, syncAttemptsTotal, errorsTotal)
}

// RecordAccess increments the per-mode, per-device access counter.
func RecordAccess(mode, device string) {
	accessTotal.WithLabelValues(mode, device).Inc()
}

// RecordSyncAttempt increments the per-route sync counter.
func RecordSyncAttempt(from, to string) {
	syncAttemptsTotal.WithLabelValues(from, to).Inc()
}

// RecordError increments the per-op, per-error-kind counter. kind is
// derived from err's dynamic type so dashboards can break down, e.g.,
// "read" failures into uninitialized vs. capacity-exceeded vs. no-route.
func RecordError(op string, err error) {
	errorsTotal.WithLabelValues(op, errorKind(err)).Inc()
}
